package matchers

import (
	"fmt"
	"reflect"
	"strings"
)

// Equal is a matcher that tests whether the input value matches the expected value according
// to reflect.DeepEqual.
func Equal(expectedValue interface{}) Matcher {
	return New(
		func(value interface{}) bool {
			return reflect.DeepEqual(value, expectedValue)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("equal to %s", desc(expectedValue))
		},
	)
}

// StringNonEmpty is a matcher for string values that tests that the string is not empty.
func StringNonEmpty() Matcher {
	return New(
		func(value interface{}) bool {
			return value.(string) != ""
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return "non-empty string"
		},
	).EnsureType("")
}

// StringHasPrefix is a matcher for string values that tests that the string starts with the
// specified prefix.
func StringHasPrefix(prefix string) Matcher {
	return New(
		func(value interface{}) bool {
			return strings.HasPrefix(value.(string), prefix)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("string with prefix %q", prefix)
		},
	).EnsureType("")
}

// StringContainsFold is a matcher for string values that tests that the string contains the
// specified substring, ignoring case.
func StringContainsFold(substr string) Matcher {
	lowered := strings.ToLower(substr)
	return New(
		func(value interface{}) bool {
			return strings.Contains(strings.ToLower(value.(string)), lowered)
		},
		func(value interface{}, desc DescribeValueFunc) string {
			return fmt.Sprintf("string containing %q (case-insensitive)", substr)
		},
	).EnsureType("")
}
