package impl

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOTPCode(t *testing.T) {
	seen := make(map[string]struct{})

	for range 200 {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)

		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 190, "codes should be distinct with overwhelming probability")
}

func TestIsValidEmail(t *testing.T) {
	tests := map[string]bool{
		"a@b.com":          true,
		"first.last@x.io":  true,
		"no-at-sign.com":   false,
		"a@b":              false,
		"a b@c.com":        false,
		"@b.com":           false,
		"a@b.":             false,
		"":                 false,
		"user@sub.dom.org": true,
	}

	for email, want := range tests {
		assert.Equal(t, want, isValidEmail(email), email)
	}
}
