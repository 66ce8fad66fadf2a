package service

import (
	"context"
	"errors"
	"gamehub-server/internal/entity"
	"gamehub-server/internal/events"
	"gamehub-server/internal/repository"
)

type UserService struct {
	repo      repository.UserRepository
	publisher events.Publisher
	passwords PasswordHasher
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo repository.UserRepository, publisher events.Publisher, passwords PasswordHasher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
		passwords: passwords,
	}
}

// Register creates a user unless one with the same email exists. The check
// and the insert are two separate operations, so concurrent registrations
// with one email can both succeed.
func (s *UserService) Register(ctx context.Context, req entity.RegisterRequest) (*entity.User, error) {
	_, err := s.repo.FindByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logger.Error().Err(err).Msgf("Error looking up user %s", req.Email)
		return nil, err
	}

	password, err := s.passwords.Hash(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Error hashing password")
		return nil, err
	}

	user := &entity.User{
		Name:      req.Name,
		Email:     req.Email,
		Password:  password,
		Image:     req.Image,
		CreatedAt: now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}

	publish(ctx, s.publisher, events.NewEvent(events.UserRegistered, user.ID.Hex(), user.Profile()))
	return user, nil
}

// Login returns the stored user when password matches. No session is issued.
func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting user by email %s", email)
		return nil, err
	}

	if !s.passwords.Matches(user.Password, password) {
		return nil, ErrWrongPassword
	}

	return user, nil
}

// UpdateName sets the user's name. ErrNotModified covers both an unknown
// email and a name equal to the current one.
func (s *UserService) UpdateName(ctx context.Context, email, name string) error {
	if email == "" || name == "" {
		return ErrMissingFields
	}

	modified, err := s.repo.UpdateName(ctx, email, name)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating name for %s", email)
		return err
	}
	if modified == 0 {
		return ErrNotModified
	}

	publish(ctx, s.publisher, events.NewEvent(events.UserNameUpdated, email, map[string]string{"name": name}))
	return nil
}

// UpdatePhoto is UpdateName for the image field.
func (s *UserService) UpdatePhoto(ctx context.Context, email, image string) error {
	if email == "" || image == "" {
		return ErrMissingFields
	}

	modified, err := s.repo.UpdateImage(ctx, email, image)
	if err != nil {
		logger.Error().Err(err).Msgf("Error updating image for %s", email)
		return err
	}
	if modified == 0 {
		return ErrNotModified
	}

	publish(ctx, s.publisher, events.NewEvent(events.UserPhotoUpdated, email, map[string]string{"image": image}))
	return nil
}
