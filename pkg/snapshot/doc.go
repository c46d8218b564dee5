// Package snapshot normalizes an incoming HTTP request into a canonical,
// JSON-serializable diagnostic record.
//
// A Snapshot carries connection details (peer, resolved client IP and scheme),
// the request line split into its parts, the headers, the body and a
// classified user agent. Builder.Build is pure: the same Input always yields
// the same Snapshot.
//
// Headers are kept in a HeaderSet: names are lower-cased, values that are not
// visible ASCII are dropped, and a name seen once renders as a string while a
// repeated name renders as an array. Key order in the JSON output follows the
// order entries were added.
//
// Bodies that are not valid UTF-8 are replaced by "<binary N bytes>".
//
//	b := snapshot.NewBuilder(snapshot.WithAppHost("example.com"))
//	body, err := snapshot.ReadBody(r.Body)
//	if err != nil {
//	    // errors.Is(err, snapshot.ErrReadBody)
//	}
//	snap := b.Build(snapshot.Input{Method: r.Method, Body: body, ...})
package snapshot
