package service

import (
	"context"
	"errors"
	"fmt"
	"gamehub-server/internal/entity"
	"gamehub-server/internal/events"
	"gamehub-server/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const LatestGamesLimit = 6

type GameService struct {
	repo      repository.GameRepository
	publisher events.Publisher
}

// NewGameService creates a new instance of GameService.
func NewGameService(repo repository.GameRepository, publisher events.Publisher) *GameService {
	return &GameService{
		repo:      repo,
		publisher: publisher,
	}
}

func (s *GameService) GetGames(ctx context.Context) ([]entity.Game, error) {
	games, err := s.repo.GetGames(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting games")
		return nil, err
	}

	return games, nil
}

// GetGamesByOwner lists games whose userEmail equals email; a nil email
// lists games nobody owns.
func (s *GameService) GetGamesByOwner(ctx context.Context, email *string) ([]entity.Game, error) {
	games, err := s.repo.GetGamesByOwner(ctx, email)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting games by owner")
		return nil, err
	}

	return games, nil
}

// GetGame looks a game up by its hex id. A malformed id is returned as a
// plain error, not ErrGameNotFound.
func (s *GameService) GetGame(ctx context.Context, id string) (*entity.Game, error) {
	if id == "" {
		return nil, ErrGameIDRequired
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("game id %q: %w", id, err)
	}

	game, err := s.repo.GetGameByID(ctx, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrGameNotFound
	}
	if err != nil {
		logger.Error().Err(err).Msgf("Error getting game by ID %s", id)
		return nil, err
	}

	return game, nil
}

func (s *GameService) GetLatestGames(ctx context.Context) ([]entity.Game, error) {
	games, err := s.repo.GetLatestGames(ctx, LatestGamesLimit)
	if err != nil {
		logger.Error().Err(err).Msg("Error getting latest games")
		return nil, err
	}

	return games, nil
}

// AddGame requires title, coverImage, description, rating, price and genre
// to be truthy as sent, so a rating or price of 0 counts as missing while
// the string "0" does not.
func (s *GameService) AddGame(ctx context.Context, req entity.GameRequest) (*entity.Game, error) {
	for _, f := range []entity.Loose{req.Title, req.CoverImage, req.Description, req.Rating, req.Price, req.Genre} {
		if !f.Truthy() {
			return nil, ErrMissingFields
		}
	}

	rating, err := req.Rating.Float()
	if err != nil {
		return nil, fmt.Errorf("%w: rating: %v", ErrMissingFields, err)
	}
	price, err := req.Price.Float()
	if err != nil {
		return nil, fmt.Errorf("%w: price: %v", ErrMissingFields, err)
	}

	game := &entity.Game{
		Title:       req.Title.String(),
		CoverImage:  req.CoverImage.String(),
		Description: req.Description.String(),
		Rating:      rating,
		Price:       price,
		Genre:       req.Genre.String(),
		CreatedAt:   now(),
	}
	if req.UserEmail.Truthy() {
		owner := req.UserEmail.String()
		game.UserEmail = &owner
	}

	if err := s.repo.CreateGame(ctx, game); err != nil {
		logger.Error().Err(err).Msg("Error creating game")
		return nil, err
	}

	publish(ctx, s.publisher, events.NewEvent(events.GameCreated, game.ID.Hex(), game))
	return game, nil
}

// DeleteGame removes the game with the given hex id. Deleting an id that is
// already gone gives ErrGameNotFound.
func (s *GameService) DeleteGame(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("game id %q: %w", id, err)
	}

	deleted, err := s.repo.DeleteGame(ctx, oid)
	if err != nil {
		logger.Error().Err(err).Msgf("Error deleting game %s", id)
		return err
	}
	if deleted == 0 {
		return ErrGameNotFound
	}

	publish(ctx, s.publisher, events.NewEvent(events.GameDeleted, id, nil))
	return nil
}
