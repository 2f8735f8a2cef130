package otp

import (
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

// TOTP parameters shared by validation and the keygen tool.
const (
	Period = 30 // seconds per time step

	// ForwardSkew shifts validation one full step into the future. Callers
	// generate a token and then issue a key-creation request; validating at
	// now+30s keeps those tokens acceptable for the whole step in which the
	// request lands. Existing clients depend on this, do not remove.
	ForwardSkew = 30 * time.Second
)

func opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    Period,
		Skew:      0,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// Validate reports whether token is the 6-digit TOTP for secret (base32)
// at the forward-skewed instant. Malformed or absent tokens simply yield
// false; this function never fails.
func Validate(secret, token string) bool {
	return ValidateAt(secret, token, time.Now())
}

// ValidateAt is Validate with an explicit clock, for tests.
func ValidateAt(secret, token string, now time.Time) bool {
	ok, err := totp.ValidateCustom(token, secret, now.Add(ForwardSkew), opts())
	return err == nil && ok
}

// GenerateAt computes the token Validate would accept at the given instant.
// Used by the keygen tool and tests.
func GenerateAt(secret string, now time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, now.Add(ForwardSkew), opts())
}
