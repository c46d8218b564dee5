// Package useragent classifies HTTP User-Agent strings into a fixed set of
// fields: browser name, category (pc, smartphone, crawler, appliance), operating
// system and its version, browser type (browser or crawler), browser version
// and vendor.
//
// Parsing uses plain substring look-ups and a few pre-compiled regular
// expressions; there is no external UA database. Every field that cannot be
// determined holds the sentinel Unknown ("UNKNOWN"), so callers can always
// serialize the result as-is.
//
// # Usage
//
//	ua := useragent.Classify(r.UserAgent())
//	log.Printf("%s %s on %s", ua.Name, ua.Version, ua.OS)
//
//	if ua.IsBot() {
//	    // skip heavy rendering
//	}
//
// # Error Handling
//
// Parse returns ErrEmptyUserAgent, ErrUnknownDevice or ErrMalformedUserAgent
// alongside a populated result. Classify drops the error.
package useragent
