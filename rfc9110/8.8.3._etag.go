package rfc9110

// §  8.8.3.  ETag
// §
// §     The "ETag" field in a response provides the current entity tag for
// §     the selected representation, as determined at the conclusion of
// §     handling the request.
// §
// §       ETag       = entity-tag
// §
// §       entity-tag = [ weak ] opaque-tag
// §       weak       = %s"W/"
// §       opaque-tag = DQUOTE *etagc DQUOTE
// §       etagc      = %x21 / %x23-7E / obs-text
// §                  ; VCHAR except double quotes, plus obs-text
// §
// §  8.8.3.2.  Comparison
// §
// §     There are two entity tag comparison functions, depending on whether
// §     or not the comparison context allows the use of weak validators:
// §
// §     Strong comparison:  two entity tags are equivalent if both are not
// §        weak and their opaque-tags match character-by-character.
// §
// §     Weak comparison:  two entity tags are equivalent if their
// §        opaque-tags match character-by-character, regardless of either
// §        or both being tagged as "weak".

// entityTagMatch implements weak comparison: the tags are equivalent when
// equal after stripping at most one W/ prefix from either side. The tags
// are otherwise opaque; no syntax is enforced.
func entityTagMatch(a, b string) bool {
	return a == b || a == "W/"+b || "W/"+a == b
}
