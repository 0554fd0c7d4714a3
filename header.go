package freshness

import (
	"net/http"
	"strings"

	"github.com/ericselin/freshness/rfc9110"
)

// The only fields the freshness evaluation reads.
var (
	conditionalRequestFields = []string{"If-Modified-Since", "If-None-Match", "Cache-Control"}
	responseValidatorFields  = []string{"ETag", "Last-Modified"}
)

// requestConditionals extracts the conditional request fields into a
// lower-case lookup. A field present with an empty value keeps its key in
// the lookup; an absent field has no key. Repeated fields are joined with
// ", " per their list semantics (a repeated date field then fails date
// parsing, which degrades to stale).
func requestConditionals(h http.Header) rfc9110.Header {
	return extract(h, conditionalRequestFields)
}

// responseValidators extracts the validator fields of a response.
func responseValidators(h http.Header) rfc9110.Header {
	return extract(h, responseValidatorFields)
}

// conditional reports whether the request carries a precondition to
// evaluate at all.
func conditional(reqHeader rfc9110.Header) bool {
	_, hasNoneMatch := reqHeader["if-none-match"]
	_, hasModifiedSince := reqHeader["if-modified-since"]
	return hasNoneMatch || hasModifiedSince
}

func extract(h http.Header, fields []string) rfc9110.Header {
	header := make(rfc9110.Header, len(fields))
	for _, field := range fields {
		if values := h.Values(field); len(values) > 0 {
			header[strings.ToLower(field)] = strings.Join(values, ", ")
		}
	}
	return header
}
