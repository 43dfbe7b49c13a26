// Package password hashes and checks the stub backend's seeded account password.
package password

import (
	"seva-console/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errs.New("password is empty")
	ErrMismatch      = errs.New("password does not match")
)

// Cost is bcrypt's minimum; the stub only ever holds throwaway credentials.
const Cost = bcrypt.MinCost

func HashPassword(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "hash password")
	}
	return string(hashed), nil
}

// ComparePassword returns nil on a match and an error marked ErrMismatch otherwise.
func ComparePassword(hashed, plain string) error {
	if hashed == "" || plain == "" {
		return errs.Mark(ErrEmptyPassword, ErrMismatch)
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	switch {
	case err == nil:
		return nil
	case errs.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return errs.Mark(err, ErrMismatch)
	default:
		return errs.Wrap(err, "compare password")
	}
}
