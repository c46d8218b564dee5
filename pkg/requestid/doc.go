// Package requestid assigns a correlation id to every HTTP request.
//
// Middleware reuses a well-formed X-Request-ID header (letters, digits, "-"
// and "_", at most 128 bytes) or generates a uuid v4. WithTrustedSource makes
// reuse conditional, for example on the request coming through a trusted
// reverse proxy. The id is stored in the request context, echoed in the
// response header and added to log records by LoggerExtractor.
//
//	r.Use(requestid.Middleware(requestid.WithTrustedSource(fromProxy)))
//	id := requestid.FromContext(r.Context())
package requestid
