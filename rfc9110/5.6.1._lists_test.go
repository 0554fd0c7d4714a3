package rfc9110

import "testing"

func TestParseTokenList(t *testing.T) {
	assertList := func(fieldValue string, want ...string) {
		t.Helper()
		got := parseTokenList(fieldValue)
		if len(got) != len(want) {
			t.Fatalf("parseTokenList(%q) = %q, want %q", fieldValue, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("parseTokenList(%q) = %q, want %q", fieldValue, got, want)
			}
		}
	}

	assertList("a, b,c", "a", "b", "c")
	assertList("a,,b", "a", "b")
	assertList("")
	assertList("  a  ", "a")
	assertList("a", "a")
	assertList(" , , ")
	assertList(",a,", "a")
	assertList(`"foo", "bar"`, `"foo"`, `"bar"`)
	assertList(`W/"foo",W/"foo"`, `W/"foo"`, `W/"foo"`)
	// inner spaces belong to the element
	assertList("a b", "a b")
}
