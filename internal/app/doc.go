// Package app wires configuration, logging, metrics and the relay range lookup
// into a single App value that the HTTP layer receives explicitly.
package app
