// Package user owns the demo accounts: login, sign-up and session tokens.
package user

import (
	"bookstore/internal/logger"
	"bookstore/internal/model"
	"bookstore/internal/seed"
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type account struct {
	hash string
	user model.User
}

// Directory is the process-wide account list shared by every session.
type Directory struct {
	mu       sync.RWMutex
	accounts map[string]account
	cost     int
}

type DirectoryOption func(*Directory)

// WithCost sets the bcrypt cost; tests use bcrypt.MinCost.
func WithCost(cost int) DirectoryOption {
	return func(d *Directory) { d.cost = cost }
}

// NewDirectory hashes the seeded demo passwords once.
func NewDirectory(creds []seed.Credential, opts ...DirectoryOption) (*Directory, error) {
	d := &Directory{
		accounts: make(map[string]account, len(creds)),
		cost:     bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(d)
	}

	for _, c := range creds {
		hash, err := HashPassword(c.Password, d.cost)
		if err != nil {
			return nil, err
		}
		d.accounts[c.Email] = account{hash: hash, user: seed.CopyUser(c.User)}
	}
	return d, nil
}

// Authenticate returns a copy of the user registered under email.
func (d *Directory) Authenticate(ctx context.Context, email, password string) (model.User, error) {
	log := logger.FromCtx(ctx).With(zap.String("service", "user"))

	d.mu.RLock()
	acc, ok := d.accounts[email]
	d.mu.RUnlock()

	if !ok || !CheckPasswordHash(password, acc.hash) {
		log.Info("login rejected", zap.String("email", email))
		return model.User{}, ErrInvalidCredentials
	}

	log.Info("login accepted", zap.String("user_id", acc.user.ID), zap.String("role", string(acc.user.Role)))
	return seed.CopyUser(acc.user), nil
}

func (d *Directory) add(email, password string, u model.User) error {
	hash, err := HashPassword(password, d.cost)
	if err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.accounts[email]; exists {
		return ErrEmailExists
	}
	d.accounts[email] = account{hash: hash, user: seed.CopyUser(u)}
	return nil
}
