package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// base32 test secret (any valid base32 string works)
const testSecret = "JBSWY3DPEHPK3PXP"

func TestValidate_AcceptsCurrentToken(t *testing.T) {
	now := time.Now()
	token, err := GenerateAt(testSecret, now)
	require.NoError(t, err)
	require.Len(t, token, 6)

	require.True(t, ValidateAt(testSecret, token, now))
}

func TestValidate_RejectsMutatedToken(t *testing.T) {
	now := time.Now()
	token, err := GenerateAt(testSecret, now)
	require.NoError(t, err)

	// flip each digit in turn; every mutation must fail
	for i := 0; i < len(token); i++ {
		mutated := []byte(token)
		if mutated[i] == '9' {
			mutated[i] = '0'
		} else {
			mutated[i]++
		}
		require.False(t, ValidateAt(testSecret, string(mutated), now), "mutation at %d accepted", i)
	}
}

func TestValidate_RejectsMalformedInput(t *testing.T) {
	now := time.Now()
	require.False(t, ValidateAt(testSecret, "", now))
	require.False(t, ValidateAt(testSecret, "12345", now))
	require.False(t, ValidateAt(testSecret, "1234567", now))
	require.False(t, ValidateAt(testSecret, "abcdef", now))
	require.False(t, ValidateAt("", "123456", now))
}

func TestValidate_ForwardSkewWindow(t *testing.T) {
	// a token computed for the step containing now+30s must validate at now,
	// and must stop validating two steps later
	now := time.Now()
	token, err := GenerateAt(testSecret, now)
	require.NoError(t, err)

	require.True(t, ValidateAt(testSecret, token, now))
	require.False(t, ValidateAt(testSecret, token, now.Add(2*Period*time.Second)))
}

func TestValidate_TokenReusableWithinWindow(t *testing.T) {
	// no replay tracking: the same token validates repeatedly within its step
	now := time.Now()
	token, err := GenerateAt(testSecret, now)
	require.NoError(t, err)

	require.True(t, ValidateAt(testSecret, token, now))
	require.True(t, ValidateAt(testSecret, token, now))
}
