package api

import (
	"errors"
	"gamehub-server/internal/entity"
	"gamehub-server/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"os"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Str("component", "api").Logger()

func message(msg string) map[string]string {
	return map[string]string{"message": msg}
}

// messageWithError also carries the underlying error text. Only the game
// read endpoints do this.
func messageWithError(msg string, err error) map[string]string {
	return map[string]string{"message": msg, "error": err.Error()}
}

type GameHandler struct {
	gameService *service.GameService
}

// NewGameHandler creates a new instance of GameHandler
func NewGameHandler(gameService *service.GameService) *GameHandler {
	return &GameHandler{gameService: gameService}
}

// GetGames lists every game --> GET /games
func (h *GameHandler) GetGames(c echo.Context) error {
	games, err := h.gameService.GetGames(c.Request().Context())
	if err != nil {
		return c.JSON(500, messageWithError("Server error", err))
	}

	return c.JSON(200, games)
}

// GetGamesByOwner lists games added by a user --> GET /games/user?email=
func (h *GameHandler) GetGamesByOwner(c echo.Context) error {
	var email *string
	if params := c.QueryParams(); params.Has("email") {
		e := params.Get("email")
		email = &e
	}

	games, err := h.gameService.GetGamesByOwner(c.Request().Context(), email)
	if err != nil {
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, games)
}

// GetGameDetails returns one game --> GET /games/details?id=
func (h *GameHandler) GetGameDetails(c echo.Context) error {
	game, err := h.gameService.GetGame(c.Request().Context(), c.QueryParam("id"))
	switch {
	case errors.Is(err, service.ErrGameIDRequired):
		return c.JSON(400, message("Game ID is required"))
	case errors.Is(err, service.ErrGameNotFound):
		return c.JSON(404, message("Game not found"))
	case err != nil:
		logger.Error().Err(err).Msg("Error getting game details")
		return c.JSON(500, messageWithError("Server error", err))
	}

	return c.JSON(200, game)
}

// GetLatestGames returns the six newest games --> GET /latest/games
func (h *GameHandler) GetLatestGames(c echo.Context) error {
	games, err := h.gameService.GetLatestGames(c.Request().Context())
	if err != nil {
		return c.JSON(500, messageWithError("Failed to fetch latest games", err))
	}

	return c.JSON(200, games)
}

// AddGame creates a game --> POST /games
func (h *GameHandler) AddGame(c echo.Context) error {
	req := entity.GameRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, message("Invalid request payload"))
	}

	game, err := h.gameService.AddGame(c.Request().Context(), req)
	if errors.Is(err, service.ErrMissingFields) {
		return c.JSON(400, message("All fields are required"))
	}
	if err != nil {
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, map[string]interface{}{
		"message":    "Game added successfully",
		"insertedId": game.ID,
		"game":       game,
	})
}

// DeleteGame removes a game --> DELETE /games/:id
func (h *GameHandler) DeleteGame(c echo.Context) error {
	err := h.gameService.DeleteGame(c.Request().Context(), c.Param("id"))
	if errors.Is(err, service.ErrGameNotFound) {
		return c.JSON(404, message("Game not found"))
	}
	if err != nil {
		logger.Error().Err(err).Msg("Error deleting game")
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, message("Game deleted successfully"))
}

type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new instance of UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a user --> POST /register
func (h *UserHandler) Register(c echo.Context) error {
	req := entity.RegisterRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, message("Invalid request payload"))
	}

	user, err := h.userService.Register(c.Request().Context(), req)
	if errors.Is(err, service.ErrUserExists) {
		return c.JSON(400, message("User already exists"))
	}
	if err != nil {
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, map[string]interface{}{
		"message": "Registered successfully",
		"user":    user,
	})
}

// Login checks email and password --> POST /login
func (h *UserHandler) Login(c echo.Context) error {
	req := entity.LoginRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, message("Invalid request payload"))
	}

	user, err := h.userService.Login(c.Request().Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return c.JSON(404, message("User not found"))
	case errors.Is(err, service.ErrWrongPassword):
		return c.JSON(401, message("Wrong password"))
	case err != nil:
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, map[string]interface{}{
		"message": "Login success",
		"user":    user,
	})
}

// UpdateName --> PUT /update-name
func (h *UserHandler) UpdateName(c echo.Context) error {
	req := entity.UpdateNameRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, message("Invalid request payload"))
	}

	err := h.userService.UpdateName(c.Request().Context(), req.Email, req.Name)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return c.JSON(400, message("Email and Name are required"))
	case errors.Is(err, service.ErrNotModified):
		return c.JSON(404, message("User not found or name unchanged"))
	case err != nil:
		logger.Error().Err(err).Msg("Error updating name")
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, message("Name updated successfully"))
}

// UpdatePhoto --> PUT /update-photo
func (h *UserHandler) UpdatePhoto(c echo.Context) error {
	req := entity.UpdatePhotoRequest{}
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, message("Invalid request payload"))
	}

	err := h.userService.UpdatePhoto(c.Request().Context(), req.Email, req.Image)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		return c.JSON(400, message("Email and Image URL are required"))
	case errors.Is(err, service.ErrNotModified):
		return c.JSON(404, message("User not found or image unchanged"))
	case err != nil:
		logger.Error().Err(err).Msg("Error updating photo")
		return c.JSON(500, message("Server error"))
	}

	return c.JSON(200, message("Photo updated successfully"))
}
