package rfc9110

import "testing"

func TestEntityTagWeakComparison(t *testing.T) {
	// weak comparison ignores the weak/strong distinction on both sides
	matching := [][2]string{
		{`"foo"`, `"foo"`},
		{`"foo"`, `W/"foo"`},
		{`W/"foo"`, `"foo"`},
		{`W/"foo"`, `W/"foo"`},
	}
	for _, tags := range matching {
		if !entityTagMatch(tags[0], tags[1]) {
			t.Fatalf("%s should match %s", tags[0], tags[1])
		}
	}

	notMatching := [][2]string{
		{`"foo"`, `"bar"`},
		{`W/"foo"`, `"bar"`},
		{`W/"foo"`, `W/"bar"`},
		{`"foo"`, ""},
	}
	for _, tags := range notMatching {
		if entityTagMatch(tags[0], tags[1]) {
			t.Fatalf("%s should not match %s", tags[0], tags[1])
		}
	}
}

func TestIfNoneMatchList(t *testing.T) {
	if !ifNoneMatch(`"foo", "bar", "fizz", "buzz"`, `"buzz"`) {
		t.Fatal("Tag in list should match")
	}
	if !ifNoneMatch(`W/"foo", "bar"`, `"foo"`) {
		t.Fatal("Weak tag in list should match")
	}
	if ifNoneMatch(`"foo", "bar"`, `"baz"`) {
		t.Fatal("Tag not in list should not match")
	}
	if ifNoneMatch(`"foo", "bar"`, "") {
		t.Fatal("Missing entity tag should never match")
	}
}

// ifNoneMatchList is the general evaluation without the whole-value
// shortcuts, used to check that the shortcuts never change the result.
func ifNoneMatchList(fieldValue, etag string) bool {
	if fieldValue == "*" {
		return true
	}
	if etag == "" {
		return false
	}
	for _, tag := range parseTokenList(fieldValue) {
		if entityTagMatch(tag, etag) {
			return true
		}
	}
	return false
}

func TestIfNoneMatchShortcutEquivalence(t *testing.T) {
	fieldValues := []string{
		"",
		"*",
		" * ",
		`"foo"`,
		`W/"foo"`,
		`"bar"`,
		` "foo" `,
		`  "foo"`,
		`"foo"  `,
		`"foo",`,
		`,"foo"`,
		`"foo", "bar"`,
		`"foo" "bar"`,
		`"fo o"`,
		`"`,
		`foo`,
		"   ",
		",",
		" , , ",
	}
	etags := []string{"", `"foo"`, `W/"foo"`, `"bar"`, `"fo o"`, "*"}

	for _, fieldValue := range fieldValues {
		for _, etag := range etags {
			want := ifNoneMatchList(fieldValue, etag)
			if got := ifNoneMatch(fieldValue, etag); got != want {
				t.Errorf("ifNoneMatch(%q, %q) = %v, list scan says %v", fieldValue, etag, got, want)
			}
		}
	}
}
