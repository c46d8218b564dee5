package snapshot_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/homesite/pkg/snapshot"
)

func TestHeaderSet(t *testing.T) {
	t.Parallel()

	t.Run("single values render as strings", func(t *testing.T) {
		t.Parallel()

		s := snapshot.NewHeaderSet(
			snapshot.HeaderEntry{Name: "Accept", Value: "*/*"},
			snapshot.HeaderEntry{Name: "User-Agent", Value: "curl/8.0"},
		)

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.JSONEq(t, `{"accept":"*/*","user-agent":"curl/8.0"}`, string(b))
	})

	t.Run("repeated names merge into arrays in arrival order", func(t *testing.T) {
		t.Parallel()

		s := snapshot.NewHeaderSet(
			snapshot.HeaderEntry{Name: "X-Custom", Value: "first"},
			snapshot.HeaderEntry{Name: "unique", Value: "value"},
			snapshot.HeaderEntry{Name: "x-custom", Value: "second"},
			snapshot.HeaderEntry{Name: "X-CUSTOM", Value: "third"},
		)

		assert.Equal(t, []string{"first", "second", "third"}, s.Values("x-custom"))
		assert.Equal(t, "first", s.Get("X-Custom"))
		assert.Equal(t, 2, s.Len())

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `{"x-custom":["first","second","third"],"unique":"value"}`, string(b))
	})

	t.Run("key order follows insertion", func(t *testing.T) {
		t.Parallel()

		s := snapshot.NewHeaderSet(
			snapshot.HeaderEntry{Name: "zeta", Value: "1"},
			snapshot.HeaderEntry{Name: "alpha", Value: "2"},
			snapshot.HeaderEntry{Name: "mid", Value: "3"},
		)

		assert.Equal(t, []string{"zeta", "alpha", "mid"}, s.Keys())

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `{"zeta":"1","alpha":"2","mid":"3"}`, string(b))
	})

	t.Run("non-text values are dropped", func(t *testing.T) {
		t.Parallel()

		s := snapshot.NewHeaderSet()
		assert.True(t, s.Add("x-ok", "plain\ttext"))
		assert.False(t, s.Add("x-utf8", "café"))
		assert.False(t, s.Add("x-ctrl", "a\x01b"))
		assert.False(t, s.Add("x-del", "a\x7fb"))
		assert.False(t, s.Add("", "no name"))

		assert.Equal(t, []string{"x-ok"}, s.Keys())
		assert.Empty(t, s.Values("x-utf8"))
	})

	t.Run("dropped value keeps earlier values of the same name", func(t *testing.T) {
		t.Parallel()

		s := snapshot.NewHeaderSet(
			snapshot.HeaderEntry{Name: "x-a", Value: "one"},
			snapshot.HeaderEntry{Name: "x-a", Value: "\xff"},
		)

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `{"x-a":"one"}`, string(b))
	})

	t.Run("empty and nil sets render as empty objects", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(snapshot.NewHeaderSet())
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(b))

		var nilSet *snapshot.HeaderSet
		b, err = nilSet.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `{}`, string(b))
		assert.Zero(t, nilSet.Len())
		assert.Empty(t, nilSet.Get("x"))
	})

	t.Run("values are escaped", func(t *testing.T) {
		t.Parallel()

		s := snapshot.NewHeaderSet(snapshot.HeaderEntry{Name: "x-quote", Value: `say "hi"`})

		b, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, `{"x-quote":"say \"hi\""}`, string(b))
	})
}

func TestEntriesFromHeader(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Add("X-Forwarded-For", "203.0.113.7")
	h.Add("Accept", "text/html")
	h.Add("X-Custom", "first")
	h.Add("X-Custom", "second")

	got := snapshot.EntriesFromHeader(h)

	assert.Equal(t, []snapshot.HeaderEntry{
		{Name: "accept", Value: "text/html"},
		{Name: "x-custom", Value: "first"},
		{Name: "x-custom", Value: "second"},
		{Name: "x-forwarded-for", Value: "203.0.113.7"},
	}, got)

	assert.Empty(t, snapshot.EntriesFromHeader(nil))
}
