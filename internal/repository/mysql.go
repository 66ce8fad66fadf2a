package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"gamehub-server/internal/entity"
	"github.com/go-sql-driver/mysql"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"time"
)

// OpenMySQL opens a pool for dsn and pings it. The connection always parses
// DATETIME into time.Time in UTC. The driver's default of reporting changed
// rather than matched rows is relied on by UpdateName and UpdateImage.
func OpenMySQL(ctx context.Context, dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse mysql dsn: %w", err)
	}
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	cfg.ClientFoundRows = false

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("mysql connector: %w", err)
	}

	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("mysql ping: %w", err)
	}

	return db, nil
}

type SQLUserRepository struct {
	db *sql.DB
}

func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db}
}

func (r *SQLUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT id, name, email, password, image, created_at FROM users WHERE email = ? LIMIT 1`

	var (
		user entity.User
		id   string
	)
	err := r.db.QueryRowContext(ctx, query, email).Scan(&id, &user.Name, &user.Email, &user.Password, &user.Image, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if user.ID, err = primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("user %s: %w", id, err)
	}
	return &user, nil
}

func (r *SQLUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	query := `INSERT INTO users (id, name, email, password, image, created_at) VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, user.ID.Hex(), user.Name, user.Email, user.Password, user.Image, user.CreatedAt)
	return err
}

func (r *SQLUserRepository) UpdateName(ctx context.Context, email, name string) (int64, error) {
	return r.exec(ctx, `UPDATE users SET name = ? WHERE email = ?`, name, email)
}

func (r *SQLUserRepository) UpdateImage(ctx context.Context, email, image string) (int64, error) {
	return r.exec(ctx, `UPDATE users SET image = ? WHERE email = ?`, image, email)
}

func (r *SQLUserRepository) exec(ctx context.Context, query string, args ...interface{}) (int64, error) {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

type SQLGameRepository struct {
	db *sql.DB
}

func NewSQLGameRepository(db *sql.DB) *SQLGameRepository {
	return &SQLGameRepository{db}
}

const gameColumns = `id, title, cover_image, description, rating, price, genre, user_email, created_at`

func (r *SQLGameRepository) GetGames(ctx context.Context) ([]entity.Game, error) {
	return r.query(ctx, `SELECT `+gameColumns+` FROM games`)
}

func (r *SQLGameRepository) GetGamesByOwner(ctx context.Context, email *string) ([]entity.Game, error) {
	if email == nil {
		return r.query(ctx, `SELECT `+gameColumns+` FROM games WHERE user_email IS NULL`)
	}
	return r.query(ctx, `SELECT `+gameColumns+` FROM games WHERE user_email = ?`, *email)
}

func (r *SQLGameRepository) GetGameByID(ctx context.Context, id primitive.ObjectID) (*entity.Game, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+gameColumns+` FROM games WHERE id = ?`, id.Hex())
	game, err := scanGame(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return game, nil
}

func (r *SQLGameRepository) GetLatestGames(ctx context.Context, limit int64) ([]entity.Game, error) {
	return r.query(ctx, `SELECT `+gameColumns+` FROM games ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r *SQLGameRepository) CreateGame(ctx context.Context, game *entity.Game) error {
	if game.ID.IsZero() {
		game.ID = primitive.NewObjectID()
	}
	query := `INSERT INTO games (` + gameColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		game.ID.Hex(), game.Title, game.CoverImage, game.Description,
		game.Rating, game.Price, game.Genre, game.UserEmail, game.CreatedAt)
	return err
}

func (r *SQLGameRepository) DeleteGame(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM games WHERE id = ?`, id.Hex())
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}

func (r *SQLGameRepository) query(ctx context.Context, query string, args ...interface{}) ([]entity.Game, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	games := []entity.Game{}
	for rows.Next() {
		game, err := scanGame(rows)
		if err != nil {
			return nil, err
		}
		games = append(games, *game)
	}

	return games, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanGame(s scanner) (*entity.Game, error) {
	var (
		game      entity.Game
		id        string
		userEmail sql.NullString
	)
	err := s.Scan(&id, &game.Title, &game.CoverImage, &game.Description,
		&game.Rating, &game.Price, &game.Genre, &userEmail, &game.CreatedAt)
	if err != nil {
		return nil, err
	}

	if game.ID, err = primitive.ObjectIDFromHex(id); err != nil {
		return nil, fmt.Errorf("game %s: %w", id, err)
	}
	if userEmail.Valid {
		game.UserEmail = &userEmail.String
	}
	return &game, nil
}
