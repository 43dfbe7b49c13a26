package memstore

import (
	"strings"
	"sync"

	"seva-console/internal/dto/response"
	"seva-console/internal/pkg/errs"
	"seva-console/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrNoPendingLogin     = errs.New("no pending login for email")
	ErrInvalidOTP         = errs.New("invalid verification code")
)

type user struct {
	profile      response.User
	passwordHash string
}

// UserStore holds the seeded accounts and the logins waiting for a code.
type UserStore struct {
	mu      sync.Mutex
	users   map[string]user
	pending map[string]bool
	otpCode string
}

func NewUserStore(otpCode string) *UserStore {
	return &UserStore{
		users:   make(map[string]user),
		pending: make(map[string]bool),
		otpCode: otpCode,
	}
}

func (s *UserStore) Add(email, name, plainPassword string) error {
	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return errs.Wrap(err, "hash seed password")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalize(email)
	s.users[key] = user{
		profile:      response.User{Email: key, Name: name},
		passwordHash: hash,
	}
	return nil
}

// BeginLogin checks the password and leaves the account waiting for a code.
func (s *UserStore) BeginLogin(email, plainPassword string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[normalize(email)]
	if !ok {
		return ErrInvalidCredentials
	}
	if err := password.ComparePassword(u.passwordHash, plainPassword); err != nil {
		return errs.Wrap(ErrInvalidCredentials, "password mismatch")
	}
	s.pending[u.profile.Email] = true
	return nil
}

// CompleteLogin consumes the pending login when the code matches.
func (s *UserStore) CompleteLogin(email, code string) (response.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := normalize(email)
	if !s.pending[key] {
		return response.User{}, ErrNoPendingLogin
	}
	if code != s.otpCode {
		return response.User{}, ErrInvalidOTP
	}
	delete(s.pending, key)
	return s.users[key].profile, nil
}

func (s *UserStore) Find(email string) (response.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[normalize(email)]
	if !ok {
		return response.User{}, errs.Wrapf(ErrNotFound, "user %s", email)
	}
	return u.profile, nil
}

func normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
