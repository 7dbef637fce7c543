package services

import (
	"errors"

	"stockroom/internal/domain"
	"stockroom/internal/repos"
)

// ErrBadCreds covers both an unknown email and a wrong password so the
// response never reveals which one it was.
var ErrBadCreds = errors.New("invalid email or password")

var ErrEmailTaken = errors.New("email already registered")

type AuthService struct {
	Accounts *repos.AccountRepo
}

// Register looks the email up first, then inserts. Two concurrent
// registrations can both pass the lookup; the accounts UNIQUE index makes
// the second insert fail and that failure maps to ErrEmailTaken too.
func (s *AuthService) Register(name, email, password string) (int64, error) {
	existing, err := s.Accounts.ByEmail(email)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.Accounts.Create(name, email, hash)
	if errors.Is(err, repos.ErrDuplicateEmail) {
		return 0, ErrEmailTaken
	}
	return id, err
}

func (s *AuthService) Login(email, password string) (*domain.Account, error) {
	a, err := s.Accounts.ByEmail(email)
	if err != nil {
		return nil, err
	}
	if a == nil || !CheckPassword(password, a.Hash) {
		return nil, ErrBadCreds
	}
	return a, nil
}
