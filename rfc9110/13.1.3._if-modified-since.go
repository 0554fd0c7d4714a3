package rfc9110

// §  13.1.3.  If-Modified-Since
// §
// §     The "If-Modified-Since" header field makes a GET or HEAD request
// §     method conditional on the selected representation's modification
// §     date being more recent than the date provided in the field value.
// §     Transfer of the selected representation's data is avoided if that
// §     data has not changed.
// §
// §       If-Modified-Since = HTTP-date
// §
// §     An example of the field is:
// §
// §       If-Modified-Since: Sat, 29 Oct 1994 19:43:31 GMT
// §
// §     A recipient MUST ignore the If-Modified-Since header field [...] if
// §     the field value is not a valid HTTP-date [...]
// §
// §     [...]
// §
// §     1.  If the selected representation's last modification date is
// §         earlier or equal to the date provided in the field value, the
// §         condition is false.
// §
// §     2.  Otherwise, the condition is true.

// ifModifiedSince reports whether the stored response is unmodified since
// the instant the client provided, i.e. whether the condition for
// responding 304 holds. A date that does not parse on either side makes
// the response stale.
func ifModifiedSince(modifiedSince, lastModified string) bool {
	lm, err := httpDate(lastModified)
	if err != nil {
		return false
	}
	ims, err := httpDate(modifiedSince)
	if err != nil {
		return false
	}
	return !lm.After(ims)
}
