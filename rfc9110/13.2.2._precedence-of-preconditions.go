package rfc9110

import "regexp"

// §  13.2.2.  Precedence of Preconditions
// §
// §     [...] a recipient cache or origin server MUST evaluate received
// §     request preconditions after it has successfully performed its
// §     normal request checks and just before it would process the request
// §     content (if any) or perform the action associated with the request
// §     method.  A server MUST ignore all received preconditions if its
// §     response to the same request without those conditions, prior to
// §     processing the request content, would have been a status code other
// §     than a 2xx (Successful) or 412 (Precondition Failed).
// §
// §     [...] a recipient MUST consider the following list order:
// §
// §     [...]
// §
// §     3.  When If-None-Match is present, evaluate the If-None-Match
// §         precondition:
// §
// §         *  if true, continue to step 5
// §
// §         *  if false for GET/HEAD, respond 304 (Not Modified)
// §
// §     4.  When the method is GET or HEAD, If-None-Match is not present,
// §         and If-Modified-Since is present, evaluate the
// §         If-Modified-Since precondition:
// §
// §         *  if true, continue to step 5
// §
// §         *  if false, respond 304 (Not Modified)

// This directive is from the cache specification (RFC 9111, Section
// 5.2.1.1), not the HTTP specification. An end-to-end reload overrides any
// validator match.
//
// §  5.2.1.1.  no-cache
// §
// §     The no-cache request directive indicates that the client prefers a
// §     stored response not be used to satisfy the request without
// §     successful validation on the origin server.
// §
// §     This directive does not allow an argument.
//
// The pattern is compiled once at process start and only ever read.
var noCacheRegexp = regexp.MustCompile(`(?:^|,)\s*no-cache\s*(?:,|$)`)

// fresh evaluates the preconditions of a conditional request against the
// validators of the stored response, in precedence order. A request
// without conditional fields has nothing to validate against and is never
// fresh. An If-None-Match condition, when one is carried, is decided
// exclusively on entity tags; the modification date is only consulted in
// its absence. Conditional fields that are present but empty carry no
// condition to fail, so such a request defaults to fresh.
func fresh(reqHeader, resHeader Header) bool {
	modifiedSince, hasModifiedSince := reqHeader["if-modified-since"]
	noneMatch, hasNoneMatch := reqHeader["if-none-match"]

	// unconditional request
	if !hasModifiedSince && !hasNoneMatch {
		return false
	}

	// end-to-end reload
	if cacheControl, ok := reqHeader["cache-control"]; ok && noCacheRegexp.MatchString(cacheControl) {
		return false
	}

	// If-None-Match takes precedence over If-Modified-Since
	if noneMatch != "" {
		return ifNoneMatch(noneMatch, resHeader["etag"])
	}

	if modifiedSince != "" {
		lastModified, ok := resHeader["last-modified"]
		if !ok {
			return false
		}
		return ifModifiedSince(modifiedSince, lastModified)
	}

	return true
}
