package entry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_FormatManualIP(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		raw       string
		formatted string
	}{
		"empty": {},
		"valid_ipv4": {
			raw:       "1.2.3.4",
			formatted: "1.2.3.4",
		},
		"letters_and_extra_group": {
			raw:       "12a.3.4.5.6",
			formatted: "12.3.4.5",
		},
		"long_groups": {
			raw:       "1234.5678.9999.12345",
			formatted: "123.567.999.123",
		},
		"incomplete": {
			raw:       "192.168.",
			formatted: "192.168.",
		},
		"spaces_and_symbols": {
			raw:       " 10 . 0-0 . 1/ ",
			formatted: "10.00.1",
		},
		"only_dots": {
			raw:       ".....",
			formatted: "...",
		},
		"not_numerically_valid": {
			raw:       "999.999.999.999",
			formatted: "999.999.999.999",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			formatted := FormatManualIP(testCase.raw)

			assert.Equal(t, testCase.formatted, formatted)
			assert.LessOrEqual(t, len(formatted), maxManualIPChars)
			// formatting is idempotent
			assert.Equal(t, formatted, FormatManualIP(formatted))
		})
	}
}
