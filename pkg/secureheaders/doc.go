// Package secureheaders sets browser security headers on HTTP responses:
// Content-Security-Policy, Permissions-Policy, Referrer-Policy,
// Strict-Transport-Security, X-Content-Type-Options, X-Frame-Options and
// X-XSS-Protection.
//
// A header is only added when the handler has not set it, so individual
// routes can relax a policy by setting their own value.
package secureheaders
