package repository

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/timeclock/internal/models"
	"github.com/timeclock/internal/store"
)

// accountRepo is the concrete implementation of AccountRepository.
// Every mutation is a read-modify-write of the whole accounts document;
// the store keeps that write atomic per document.
type accountRepo struct {
	store store.Store
	log   zerolog.Logger
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(s store.Store, log zerolog.Logger) AccountRepository {
	return &accountRepo{store: s, log: log}
}

// All returns every account; a missing or corrupt document reads as empty
func (r *accountRepo) All(ctx context.Context) ([]models.Account, error) {
	return store.Load(ctx, r.store, r.log, store.KeyAccounts, []models.Account{}), nil
}

// Get returns the account with the given username, or ErrAccountNotFound
func (r *accountRepo) Get(ctx context.Context, username string) (*models.Account, error) {
	accounts, err := r.All(ctx)
	if err != nil {
		return nil, err
	}
	for i := range accounts {
		if accounts[i].Username == username {
			return &accounts[i], nil
		}
	}
	return nil, models.ErrAccountNotFound
}

// Add appends a new account; usernames are unique
func (r *accountRepo) Add(ctx context.Context, account models.Account) error {
	accounts, err := r.All(ctx)
	if err != nil {
		return err
	}
	for i := range accounts {
		if accounts[i].Username == account.Username {
			return models.ErrDuplicateUsername
		}
	}
	accounts = append(accounts, account)
	return store.Save(ctx, r.store, store.KeyAccounts, accounts)
}

// Delete removes the account with the given username
func (r *accountRepo) Delete(ctx context.Context, username string) error {
	accounts, err := r.All(ctx)
	if err != nil {
		return err
	}

	kept := accounts[:0]
	found := false
	for _, a := range accounts {
		if a.Username == username {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return models.ErrAccountNotFound
	}
	return store.Save(ctx, r.store, store.KeyAccounts, kept)
}
