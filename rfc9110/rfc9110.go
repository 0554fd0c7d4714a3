// Package rfc9110 implements the conditional request evaluation rules of
// RFC 9110 (HTTP Semantics) that a cache needs in order to decide between
// responding with 304 (Not Modified) and serving the full response.
//
// The package is a single deterministic decision procedure over header
// field values. It performs no I/O, keeps no state between calls, and is
// safe for concurrent use.
package rfc9110

// Header is a read-only lookup of lower-case header field name to field
// value. A missing key means the field is not present on the message,
// which is distinct from a field that is present with an empty value.
type Header map[string]string

// Fresh reports whether the client's cached representation is still fresh
// for the given conditional request, i.e. whether the request
// preconditions allow responding with 304 (Not Modified) instead of the
// full representation.
//
// The request header is consulted for "if-none-match",
// "if-modified-since" and "cache-control"; the response header for "etag"
// and "last-modified".
//
// Fresh never fails: whenever the preconditions cannot be evaluated with
// confidence (missing validators, unparseable dates, malformed entity-tag
// lists), the representation is reported stale so that the full resource
// is served again.
func Fresh(reqHeader, resHeader Header) bool {
	return fresh(reqHeader, resHeader)
}
