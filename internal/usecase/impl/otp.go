package impl

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"regexp"

	"github.com/pkg/errors"
)

const (
	otpMin   = 100000
	otpRange = 900000 // codes span [100000, 999999]
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// GenerateOTPCode returns a uniformly random six digit code.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpRange))
	if err != nil {
		return "", errors.Wrap(err, "failed to generate verification code")
	}

	return fmt.Sprintf("%06d", n.Int64()+otpMin), nil
}

func isValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
