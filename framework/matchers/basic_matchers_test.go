package matchers

import "testing"

func TestEqual(t *testing.T) {
	assertPasses(t, 3, Equal(3))
	assertFails(t, 4, Equal(3), "expected: equal to 3\nactual value was: 4")

	assertPasses(t, map[string]interface{}{"a": []int{1, 2}},
		Equal(map[string]interface{}{"a": []int{1, 2}}))
}

func TestStringNonEmpty(t *testing.T) {
	assertPasses(t, "OK", StringNonEmpty())
	assertFails(t, "", StringNonEmpty(), "expected: non-empty string\nactual value was: ")
	assertFails(t, 3, StringNonEmpty(), "expected: value of type string, was int\nactual value was: 3")
}

func TestStringHasPrefix(t *testing.T) {
	assertPasses(t, "OK hello-world", StringHasPrefix("OK "))
	assertFails(t, "ERR nope", StringHasPrefix("OK "),
		"expected: string with prefix \"OK \"\nactual value was: ERR nope")
}

func TestStringContainsFold(t *testing.T) {
	assertPasses(t, "ERR Authentication Required", StringContainsFold("authentication required"))
	assertPasses(t, "err invalid api key", StringContainsFold("INVALID"))
	assertFails(t, "OK", StringContainsFold("invalid"),
		"expected: string containing \"invalid\" (case-insensitive)\nactual value was: OK")
}
