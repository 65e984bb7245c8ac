// Package users owns the registered accounts: the in-memory collection loaded
// at startup and the append-only file behind it.
package users

import (
	"context"
	"crypto/subtle"
	"fmt"

	"golang.org/x/text/cases"

	"github.com/dmitrijs2005/tutorbook/internal/common"
	"github.com/dmitrijs2005/tutorbook/internal/logging"
	"github.com/dmitrijs2005/tutorbook/internal/validation"
)

// Store is the credential store. It is not safe for concurrent use; the
// application drives it from a single interactive session.
type Store struct {
	repo   Repository
	logger logging.Logger
	fold   cases.Caser

	users []User
	index map[string]int
}

// NewStore loads every user from repo. The error is returned together with an
// empty, usable store so the caller may carry on without persisted users.
func NewStore(ctx context.Context, repo Repository, logger logging.Logger) (*Store, error) {
	s := &Store{
		repo:   repo,
		logger: logger,
		fold:   cases.Fold(),
		index:  make(map[string]int),
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		return s, err
	}

	for _, u := range loaded {
		s.add(u)
	}

	return s, nil
}

func (s *Store) key(email string) string {
	return s.fold.String(email)
}

func (s *Store) add(u User) {
	s.users = append(s.users, u)
	if _, ok := s.index[s.key(u.Email)]; !ok {
		s.index[s.key(u.Email)] = len(s.users) - 1
	}
}

// Len returns the number of users in memory.
func (s *Store) Len() int {
	return len(s.users)
}

// Exists reports whether email is registered, ignoring case.
func (s *Store) Exists(email string) bool {
	_, ok := s.index[s.key(email)]
	return ok
}

// Register validates and adds a new user, then appends it to the repository.
//
// If the append fails the user stays registered in memory for the rest of the
// run; the returned error wraps common.ErrPersistence and the user is
// returned as well.
func (s *Store) Register(ctx context.Context, email, password string) (*User, error) {
	if !validation.IsValidEmail(email) {
		return nil, common.ErrInvalidEmail
	}
	if s.Exists(email) {
		return nil, common.ErrDuplicateEmail
	}
	if !validation.IsValidPassword(password) {
		return nil, common.ErrWeakPassword
	}

	u := User{Email: email, Password: password}
	s.add(u)

	log := logging.FromContext(ctx, s.logger)
	if err := s.repo.Append(ctx, u); err != nil {
		log.Error(ctx, "user kept in memory only", "email", email, "error", err)
		return &u, fmt.Errorf("%w: %v", common.ErrPersistence, err)
	}

	log.Info(ctx, "user registered", "email", email)
	return &u, nil
}

// Authenticate returns the user whose email matches (ignoring case) and whose
// password matches exactly.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*User, error) {
	k := s.key(email)
	for i := range s.users {
		u := s.users[i]
		if s.key(u.Email) != k {
			continue
		}
		if subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 1 {
			return &u, nil
		}
	}

	logging.FromContext(ctx, s.logger).Warn(ctx, "authentication failed", "email", email)
	return nil, common.ErrInvalidCredentials
}
