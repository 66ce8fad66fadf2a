package repository

import (
	"context"
	"gamehub-server/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"sort"
	"sync"
)

// MemoryUserRepository keeps users in process memory. It backs tests and
// STORE_DRIVER=memory.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

func (r *MemoryUserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) CreateUser(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.users = append(r.users, *user)
	return nil
}

func (r *MemoryUserRepository) UpdateName(_ context.Context, email, name string) (int64, error) {
	return r.update(email, func(u *entity.User) bool {
		if u.Name == name {
			return false
		}
		u.Name = name
		return true
	}), nil
}

func (r *MemoryUserRepository) UpdateImage(_ context.Context, email, image string) (int64, error) {
	return r.update(email, func(u *entity.User) bool {
		if u.Image == image {
			return false
		}
		u.Image = image
		return true
	}), nil
}

// update applies fn to the first user with email, like a single-document
// update, and returns the modified count.
func (r *MemoryUserRepository) update(email string, fn func(*entity.User) bool) int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.users {
		if r.users[i].Email == email {
			if fn(&r.users[i]) {
				return 1
			}
			return 0
		}
	}
	return 0
}

type MemoryGameRepository struct {
	mu    sync.RWMutex
	games []entity.Game
}

func NewMemoryGameRepository() *MemoryGameRepository {
	return &MemoryGameRepository{}
}

func (r *MemoryGameRepository) GetGames(_ context.Context) ([]entity.Game, error) {
	return r.filter(func(entity.Game) bool { return true }), nil
}

func (r *MemoryGameRepository) GetGamesByOwner(_ context.Context, email *string) ([]entity.Game, error) {
	return r.filter(func(g entity.Game) bool {
		if email == nil {
			return g.UserEmail == nil
		}
		return g.UserEmail != nil && *g.UserEmail == *email
	}), nil
}

func (r *MemoryGameRepository) GetGameByID(_ context.Context, id primitive.ObjectID) (*entity.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, g := range r.games {
		if g.ID == id {
			game := g
			return &game, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryGameRepository) GetLatestGames(_ context.Context, limit int64) ([]entity.Game, error) {
	games := r.filter(func(entity.Game) bool { return true })
	sort.SliceStable(games, func(i, j int) bool {
		return games[i].CreatedAt.After(games[j].CreatedAt)
	})
	if int64(len(games)) > limit {
		games = games[:limit]
	}
	return games, nil
}

func (r *MemoryGameRepository) CreateGame(_ context.Context, game *entity.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if game.ID.IsZero() {
		game.ID = primitive.NewObjectID()
	}
	r.games = append(r.games, *game)
	return nil
}

func (r *MemoryGameRepository) DeleteGame(_ context.Context, id primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, g := range r.games {
		if g.ID == id {
			r.games = append(r.games[:i], r.games[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *MemoryGameRepository) filter(keep func(entity.Game) bool) []entity.Game {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := []entity.Game{}
	for _, g := range r.games {
		if keep(g) {
			games = append(games, g)
		}
	}
	return games
}
