package rfc9110

// §  5.6.1.  Lists (#rule ABNF Extension)
// §
// §     A #rule extension to the ABNF rules of [RFC5234] is used to improve
// §     readability in the definitions of some header field values.
// §
// §     A construct "#" is defined, similar to "*", for defining
// §     comma-delimited lists of elements.  The full form is
// §     "<n>#<m>element" indicating at least <n> and at most <m> elements,
// §     each separated by a single comma (",") and optional whitespace
// §     (OWS, defined in Section 5.6.3).
// §
// §  5.6.1.2.  Recipient Requirements
// §
// §     Empty elements do not contribute to the count of elements present.
// §     A recipient MUST parse and ignore a reasonable number of empty list
// §     elements: enough to handle common mistakes by senders that merge
// §     values, but not so much that they could be used as a denial-of-
// §     service mechanism.

// parseTokenList splits a #rule field value into its non-empty elements in
// order, keeping duplicates. Elements are trimmed of surrounding spaces
// (0x20 only); elements that are empty after trimming are dropped. A value
// without a comma yields the single trimmed element, exactly as scanning
// it as a one-element list would.
func parseTokenList(fieldValue string) []string {
	var (
		list       []string
		start, end int
	)
	for i := 0; i < len(fieldValue); i++ {
		switch fieldValue[i] {
		case ' ':
			if start == end {
				start, end = i+1, i+1
			}
		case ',':
			if start != end {
				list = append(list, fieldValue[start:end])
			}
			start, end = i+1, i+1
		default:
			end = i + 1
		}
	}
	if start != end {
		list = append(list, fieldValue[start:end])
	}
	return list
}
