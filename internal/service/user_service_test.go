package service

import (
	"context"
	"errors"
	"fmt"
	"gamehub-server/internal/entity"
	"gamehub-server/internal/events"
	"gamehub-server/internal/events/mock_events"
	"gamehub-server/internal/repository"
	"github.com/golang/mock/gomock"
	"testing"
)

// eventOfType matches an events.Event by its Type.
type eventOfType string

func (m eventOfType) Matches(x interface{}) bool {
	e, ok := x.(events.Event)
	return ok && e.Type == string(m)
}

func (m eventOfType) String() string { return fmt.Sprintf("event of type %s", string(m)) }

func newUserService(t *testing.T) (*UserService, *repository.MemoryUserRepository, *mock_events.MockPublisher) {
	ctrl := gomock.NewController(t)

	repo := repository.NewMemoryUserRepository()
	pub := mock_events.NewMockPublisher(ctrl)
	return NewUserService(repo, pub, PlainPasswords{}), repo, pub
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, pub := newUserService(t)
	ctx := context.Background()
	pub.EXPECT().Publish(gomock.Any(), eventOfType(events.UserRegistered)).Return(nil).Times(1)

	req := entity.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "hunter2"}
	user, err := svc.Register(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	if user.ID.IsZero() || user.Image != "" || user.CreatedAt.IsZero() {
		t.Errorf("user = %+v", user)
	}
	if user.Password != "hunter2" {
		t.Errorf("plain passwords should be stored as sent, got %q", user.Password)
	}

	if _, err := svc.Register(ctx, req); !errors.Is(err, ErrUserExists) {
		t.Errorf("second register err = %v, want ErrUserExists", err)
	}
}

func TestRegisterEventIsKeyedByUserID(t *testing.T) {
	svc, _, pub := newUserService(t)

	var published events.Event
	pub.EXPECT().Publish(gomock.Any(), eventOfType(events.UserRegistered)).
		DoAndReturn(func(_ context.Context, e events.Event) error {
			published = e
			return nil
		})

	user, err := svc.Register(context.Background(), entity.RegisterRequest{Name: "Ana", Email: "ana@example.com"})
	if err != nil {
		t.Fatal(err)
	}
	if want := "user.registered." + user.ID.Hex(); published.Key() != want {
		t.Errorf("key = %q, want %q", published.Key(), want)
	}
}

func TestRegisterIgnoresPublishFailure(t *testing.T) {
	svc, repo, pub := newUserService(t)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	if _, err := svc.Register(context.Background(), entity.RegisterRequest{Email: "ana@example.com"}); err != nil {
		t.Fatalf("publish failure must not fail register: %v", err)
	}
	if _, err := repo.FindByEmail(context.Background(), "ana@example.com"); err != nil {
		t.Errorf("user should be stored: %v", err)
	}
}

func TestLogin(t *testing.T) {
	svc, repo, _ := newUserService(t)
	ctx := context.Background()
	_ = repo.CreateUser(ctx, &entity.User{Name: "Ana", Email: "ana@example.com", Password: "hunter2"})

	user, err := svc.Login(ctx, "ana@example.com", "hunter2")
	if err != nil || user.Name != "Ana" {
		t.Fatalf("Login = %+v, %v", user, err)
	}
	if _, err := svc.Login(ctx, "ana@example.com", "Hunter2"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password err = %v", err)
	}
	if _, err := svc.Login(ctx, "bo@example.com", "hunter2"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown email err = %v", err)
	}
}

func TestLoginWithBcrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := mock_events.NewMockPublisher(ctrl)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	svc := NewUserService(repository.NewMemoryUserRepository(), pub, NewPasswordHasher("bcrypt"))
	ctx := context.Background()
	user, err := svc.Register(ctx, entity.RegisterRequest{Email: "ana@example.com", Password: "hunter2"})
	if err != nil {
		t.Fatal(err)
	}
	if user.Password == "hunter2" {
		t.Error("bcrypt mode must not store the plain password")
	}
	if _, err := svc.Login(ctx, "ana@example.com", "hunter2"); err != nil {
		t.Errorf("Login: %v", err)
	}
	if _, err := svc.Login(ctx, "ana@example.com", "nope"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("wrong password err = %v", err)
	}
}

func TestUpdateNameSameValueIsNotModified(t *testing.T) {
	svc, repo, pub := newUserService(t)
	ctx := context.Background()
	_ = repo.CreateUser(ctx, &entity.User{Name: "Ana", Email: "ana@example.com"})

	if err := svc.UpdateName(ctx, "", "Ana"); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing email err = %v", err)
	}
	// the user exists, but nothing changes
	if err := svc.UpdateName(ctx, "ana@example.com", "Ana"); !errors.Is(err, ErrNotModified) {
		t.Errorf("same name err = %v, want ErrNotModified", err)
	}

	pub.EXPECT().Publish(gomock.Any(), eventOfType(events.UserNameUpdated)).Return(nil)
	if err := svc.UpdateName(ctx, "ana@example.com", "Ana Maria"); err != nil {
		t.Errorf("UpdateName: %v", err)
	}
}

func TestUpdatePhoto(t *testing.T) {
	svc, repo, pub := newUserService(t)
	ctx := context.Background()
	_ = repo.CreateUser(ctx, &entity.User{Email: "ana@example.com"})

	if err := svc.UpdatePhoto(ctx, "ana@example.com", ""); !errors.Is(err, ErrMissingFields) {
		t.Errorf("missing image err = %v", err)
	}
	if err := svc.UpdatePhoto(ctx, "bo@example.com", "bo.png"); !errors.Is(err, ErrNotModified) {
		t.Errorf("unknown user err = %v", err)
	}

	pub.EXPECT().Publish(gomock.Any(), eventOfType(events.UserPhotoUpdated)).Return(nil)
	if err := svc.UpdatePhoto(ctx, "ana@example.com", "ana.png"); err != nil {
		t.Errorf("UpdatePhoto: %v", err)
	}
}

func TestUserServiceSurfacesStoreErrors(t *testing.T) {
	down := errors.New("connection refused")
	svc := NewUserService(repository.Unavailable{Err: down}, events.Noop{}, PlainPasswords{})

	if _, err := svc.Register(context.Background(), entity.RegisterRequest{Email: "a@b.c"}); !errors.Is(err, down) {
		t.Errorf("Register err = %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@b.c", "x"); !errors.Is(err, down) {
		t.Errorf("Login err = %v", err)
	}
}
