package rfc9110

import "strings"

// §  13.1.2.  If-None-Match
// §
// §     The "If-None-Match" header field makes the request method
// §     conditional on a recipient cache or origin server either not having
// §     any current representation of the target resource, when the field
// §     value is "*", or having a selected representation with an entity
// §     tag that does not match any of those listed in the field value.
// §
// §       If-None-Match = "*" / #entity-tag
// §
// §     An origin server MUST use the weak comparison function when
// §     comparing entity tags for If-None-Match (Section 8.8.3.2), since
// §     weak entity tags can be used for cache validation even if there
// §     have been changes to the representation data.
// §
// §     [...]
// §
// §     1.  If the field value is "*", the condition is false if the origin
// §         server has a current representation for the target resource.
// §
// §     2.  If the field value is a list of entity tags, the condition is
// §         false if one of the listed tags matches the entity tag of the
// §         selected representation.
// §
// §     3.  Otherwise, the condition is true.

// ifNoneMatch reports whether the If-None-Match field value matches the
// entity tag of the stored response, i.e. whether the condition for
// responding 304 holds. A wildcard matches any representation without
// consulting the entity tag; in every other case a missing entity tag
// means no match.
//
// The whole field value is compared first to short-circuit the common
// single-tag case. A value without a comma holds at most one tag, so when
// it also carries no surrounding spaces the failed whole-value comparison
// is conclusive; both shortcuts return exactly what scanning the parsed
// list would.
func ifNoneMatch(fieldValue, etag string) bool {
	if fieldValue == "*" {
		return true
	}
	if etag == "" {
		return false
	}
	if entityTagMatch(fieldValue, etag) {
		return true
	}
	if !strings.Contains(fieldValue, ",") && strings.Trim(fieldValue, " ") == fieldValue {
		return false
	}
	for _, tag := range parseTokenList(fieldValue) {
		if entityTagMatch(tag, etag) {
			return true
		}
	}
	return false
}
