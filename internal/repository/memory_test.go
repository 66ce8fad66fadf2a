package repository

import (
	"context"
	"errors"
	"gamehub-server/internal/entity"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"testing"
	"time"
)

func strPtr(s string) *string { return &s }

func TestMemoryUserUpdateReportsModifiedCount(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryUserRepository()

	user := &entity.User{Name: "Ana", Email: "ana@example.com"}
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatal(err)
	}
	if user.ID.IsZero() {
		t.Fatal("CreateUser should assign an id")
	}

	n, _ := repo.UpdateName(ctx, "ana@example.com", "Ana Maria")
	if n != 1 {
		t.Errorf("changed name: modified = %d, want 1", n)
	}
	n, _ = repo.UpdateName(ctx, "ana@example.com", "Ana Maria")
	if n != 0 {
		t.Errorf("same name: modified = %d, want 0", n)
	}
	n, _ = repo.UpdateImage(ctx, "nobody@example.com", "x.png")
	if n != 0 {
		t.Errorf("unknown email: modified = %d, want 0", n)
	}

	got, err := repo.FindByEmail(ctx, "ana@example.com")
	if err != nil || got.Name != "Ana Maria" {
		t.Fatalf("FindByEmail = %+v, %v", got, err)
	}
	if _, err := repo.FindByEmail(ctx, "ANA@example.com"); !errors.Is(err, ErrNotFound) {
		t.Errorf("email lookup must be case-sensitive, got %v", err)
	}
}

func TestMemoryGamesByOwner(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()
	_ = repo.CreateGame(ctx, &entity.Game{Title: "Celeste", UserEmail: strPtr("ana@example.com")})
	_ = repo.CreateGame(ctx, &entity.Game{Title: "Hades", UserEmail: strPtr("bo@example.com")})
	_ = repo.CreateGame(ctx, &entity.Game{Title: "Tetris"})

	owned, _ := repo.GetGamesByOwner(ctx, strPtr("ana@example.com"))
	if len(owned) != 1 || owned[0].Title != "Celeste" {
		t.Errorf("owned = %+v", owned)
	}
	ownerless, _ := repo.GetGamesByOwner(ctx, nil)
	if len(ownerless) != 1 || ownerless[0].Title != "Tetris" {
		t.Errorf("ownerless = %+v", ownerless)
	}
	none, _ := repo.GetGamesByOwner(ctx, strPtr(""))
	if none == nil || len(none) != 0 {
		t.Errorf("empty email should give an empty, non-nil list, got %#v", none)
	}
}

func TestMemoryLatestGames(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 8; i++ {
		_ = repo.CreateGame(ctx, &entity.Game{Title: string(rune('A' + i)), CreatedAt: base.Add(time.Duration(i) * time.Hour)})
	}

	latest, err := repo.GetLatestGames(ctx, 6)
	if err != nil {
		t.Fatal(err)
	}
	if len(latest) != 6 {
		t.Fatalf("len = %d, want 6", len(latest))
	}
	if latest[0].Title != "H" || latest[5].Title != "C" {
		t.Errorf("order = %s..%s, want H..C", latest[0].Title, latest[5].Title)
	}
}

func TestMemoryDeleteGame(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryGameRepository()
	game := &entity.Game{Title: "Hades"}
	_ = repo.CreateGame(ctx, game)

	if n, _ := repo.DeleteGame(ctx, game.ID); n != 1 {
		t.Errorf("first delete = %d, want 1", n)
	}
	if n, _ := repo.DeleteGame(ctx, game.ID); n != 0 {
		t.Errorf("second delete = %d, want 0", n)
	}
	if _, err := repo.GetGameByID(ctx, primitive.NewObjectID()); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetGameByID unknown id = %v, want ErrNotFound", err)
	}
}
