package web

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/homesite/handler"
)

// write renders a sequence of raw HTML fragments and components.
func write(ctx context.Context, w io.Writer, parts ...any) error {
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			if _, err := io.WriteString(w, v); err != nil {
				return err
			}
		case templ.Component:
			if err := v.Render(ctx, w); err != nil {
				return err
			}
		}
	}
	return nil
}

func layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(ctx, w,
			`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`,
			`<meta name="viewport" content="width=device-width, initial-scale=1">`,
			`<title>`, templ.EscapeString(title), `</title>`,
			`<link rel="stylesheet" href="/style.css">`,
			`</head><body><main>`,
			content,
			`</main></body></html>`,
		)
	})
}

func fragment(html ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, s := range html {
			if _, err := io.WriteString(w, s); err != nil {
				return err
			}
		}
		return nil
	})
}

func indexPage(hostname string) templ.Component {
	return layout(hostname, fragment(
		`<h1>`, templ.EscapeString(hostname), `</h1>`,
		`<ul>`,
		`<li><a href="/echo">/echo</a> request snapshot</li>`,
		`<li><a href="/icloud-private-relay">/icloud-private-relay</a> relay check</li>`,
		`<li><a href="/uuid">/uuid</a> random UUID</li>`,
		`<li><a href="/sha">/sha</a> build commit</li>`,
		`<li><a href="/slot">/slot</a> deployment slot</li>`,
		`</ul>`,
	))
}

func uuidPage(id string) templ.Component {
	return layout("UUID", fragment(
		`<h1>UUID</h1>`,
		`<p><code id="uuid">`, templ.EscapeString(id), `</code></p>`,
		`<p><a href="/uuid">Generate another</a></p>`,
	))
}

func echoPage(snapshotJSON, body string) templ.Component {
	parts := []string{
		`<h1>Echo</h1>`,
		`<h2>Request</h2>`,
		`<pre id="snapshot">`, templ.EscapeString(snapshotJSON), `</pre>`,
	}
	if body != "" {
		parts = append(parts,
			`<h2>Body</h2>`,
			`<pre id="body">`, templ.EscapeString(body), `</pre>`,
		)
	}
	return layout("Echo", fragment(parts...))
}

func notFoundPage() templ.Component {
	return layout("Not Found", fragment(`<h1>404 - Not Found</h1>`))
}

func errorPage(p handler.ErrorPageParams) templ.Component {
	parts := []string{
		`<h1>`, strconv.Itoa(p.StatusCode), ` - `, templ.EscapeString(p.Error), `</h1>`,
	}
	if p.RequestID != "" {
		parts = append(parts, `<p>Request ID: <code>`, templ.EscapeString(p.RequestID), `</code></p>`)
	}
	return layout(p.Error, fragment(parts...))
}
