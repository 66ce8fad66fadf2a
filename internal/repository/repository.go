package repository

import (
	"context"
	"errors"
	"gamehub-server/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrNotFound = errors.New("document not found")

// UserRepository is the users collection. Users are looked up by email,
// compared case-sensitively.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// CreateUser assigns user.ID when it is zero.
	CreateUser(ctx context.Context, user *entity.User) error
	// UpdateName and UpdateImage return the number of documents actually
	// modified; setting a field to its current value modifies nothing.
	UpdateName(ctx context.Context, email, name string) (int64, error)
	UpdateImage(ctx context.Context, email, image string) (int64, error)
}

// GameRepository is the games collection.
type GameRepository interface {
	GetGames(ctx context.Context) ([]entity.Game, error)
	// GetGamesByOwner matches games without an owner when email is nil.
	GetGamesByOwner(ctx context.Context, email *string) ([]entity.Game, error)
	GetGameByID(ctx context.Context, id primitive.ObjectID) (*entity.Game, error)
	// GetLatestGames returns at most limit games, newest createdAt first.
	GetLatestGames(ctx context.Context, limit int64) ([]entity.Game, error)
	// CreateGame assigns game.ID when it is zero.
	CreateGame(ctx context.Context, game *entity.Game) error
	DeleteGame(ctx context.Context, id primitive.ObjectID) (int64, error)
}

// Unavailable stands in for a datastore that could not be reached at
// startup. Every call fails with Err.
type Unavailable struct {
	Err error
}

func (u Unavailable) FindByEmail(context.Context, string) (*entity.User, error) { return nil, u.Err }
func (u Unavailable) CreateUser(context.Context, *entity.User) error             { return u.Err }
func (u Unavailable) UpdateName(context.Context, string, string) (int64, error)  { return 0, u.Err }
func (u Unavailable) UpdateImage(context.Context, string, string) (int64, error) { return 0, u.Err }
func (u Unavailable) GetGames(context.Context) ([]entity.Game, error)            { return nil, u.Err }
func (u Unavailable) GetGamesByOwner(context.Context, *string) ([]entity.Game, error) {
	return nil, u.Err
}
func (u Unavailable) GetGameByID(context.Context, primitive.ObjectID) (*entity.Game, error) {
	return nil, u.Err
}
func (u Unavailable) GetLatestGames(context.Context, int64) ([]entity.Game, error) {
	return nil, u.Err
}
func (u Unavailable) CreateGame(context.Context, *entity.Game) error { return u.Err }
func (u Unavailable) DeleteGame(context.Context, primitive.ObjectID) (int64, error) {
	return 0, u.Err
}
