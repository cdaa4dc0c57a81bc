package service

import (
	"context"

	"github.com/deppfellow/ladder-stats/internal/model"
)

// UserStore is the data-access contract for users. Lookups report absence
// through found=false; err is reserved for store failures.
type UserStore interface {
	GetAll(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, id int) (user model.User, found bool, err error)
	// GetByUniqueKey searches by the json field name of a User field.
	GetByUniqueKey(ctx context.Context, field, value string) (user model.User, found bool, err error)
	GetByCredentials(ctx context.Context, username, password string) (user model.User, found bool, err error)
	// Save persists a new user and returns it with its assigned id.
	Save(ctx context.Context, user model.User) (model.User, error)
	// Update changes password and account name. Username is immutable.
	Update(ctx context.Context, user model.User) (bool, error)
	DeleteByID(ctx context.Context, id int) (bool, error)
}

// CharacterStore is the data-access contract for characters.
type CharacterStore interface {
	GetAll(ctx context.Context) ([]model.Character, error)
	// GetByID returns every character owned by the user with ownerID.
	GetByID(ctx context.Context, ownerID int) ([]model.Character, error)
	// GetByUniqueKey searches by the json field name of a Character field.
	// An accountName lookup finds the account even before it owns any
	// character; the returned Character then only has AccountName set.
	GetByUniqueKey(ctx context.Context, field, value string) (character model.Character, found bool, err error)
	// Save resolves the owning account from AccountName.
	Save(ctx context.Context, character model.Character) (model.Character, error)
	// Update changes rank and level of the character with the given id.
	Update(ctx context.Context, character model.Character) (bool, error)
	// DeleteByID removes every character owned by ownerID.
	DeleteByID(ctx context.Context, ownerID int) (bool, error)
}

// StatStore is the data-access contract for stat rollups. Owner lookups
// search users, since a stat is always reached through its owner.
type StatStore interface {
	GetAll(ctx context.Context) ([]model.Stat, error)
	GetByID(ctx context.Context, ownerID int) ([]model.Stat, error)
	GetOwnerByUniqueKey(ctx context.Context, field, value string) (owner model.User, found bool, err error)
	// Save appends a rollup for owner. Improved and CreatedOn are set by
	// the store.
	Save(ctx context.Context, owner model.User, avgRank, avgCharLevel float64) (model.Stat, error)
}
