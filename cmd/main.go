package main

import (
	"context"
	"errors"
	"fmt"
	"gamehub-server/internal/api"
	"gamehub-server/internal/config"
	"gamehub-server/internal/events"
	"gamehub-server/internal/repository"
	"gamehub-server/internal/service"
	"github.com/rs/zerolog"
	"os"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// connectStore returns the repositories for cfg.StoreDriver. A failed
// connection is logged and replaced by repository.Unavailable so the server
// still comes up and answers 500 on every datastore route.
func connectStore(ctx context.Context, cfg config.Config) (repository.UserRepository, repository.GameRepository) {
	switch cfg.StoreDriver {
	case "memory":
		logger.Warn().Msg("Using in-memory store, data is lost on restart")
		return repository.NewMemoryUserRepository(), repository.NewMemoryGameRepository()

	case "mysql":
		db, err := repository.OpenMySQL(ctx, cfg.MySQLDSN)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to connect to MySQL")
			return unavailable(err)
		}
		logger.Info().Msg("Connected to MySQL")
		return repository.NewSQLUserRepository(db), repository.NewSQLGameRepository(db)

	case "mongo":
		db, err := repository.ConnectMongo(ctx, cfg.MongoURI, cfg.DBName)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to connect to MongoDB")
			return unavailable(err)
		}
		logger.Info().Msg("Pinged your deployment. You successfully connected to MongoDB!")
		return repository.NewMongoUserRepository(db), repository.NewMongoGameRepository(db)
	}

	err := fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	logger.Error().Err(err).Msg("No datastore configured")
	return unavailable(err)
}

func unavailable(err error) (repository.UserRepository, repository.GameRepository) {
	down := repository.Unavailable{Err: errors.Join(errors.New("datastore unavailable"), err)}
	return down, down
}

// newPublisher falls back to dropping events when the sink cannot be reached.
func newPublisher(ctx context.Context, cfg config.Config) events.Publisher {
	switch cfg.EventsSink {
	case "kafka":
		if err := config.PingKafka(ctx, cfg.KafkaBrokers); err != nil {
			logger.Error().Err(err).Strs("brokers", cfg.KafkaBrokers).Msg("Kafka unreachable, events disabled")
			return events.Noop{}
		}
		return events.NewKafkaPublisher(config.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))

	case "redis":
		rdb, err := config.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Error().Err(err).Msg("Redis unreachable, events disabled")
			return events.Noop{}
		}
		return events.NewRedisPublisher(rdb, cfg.RedisChannel)
	}

	return events.Noop{}
}

func main() {
	cfg := config.Load()
	config.SetupLogging(cfg.LogLevel)
	ctx := context.Background()

	userRepo, gameRepo := connectStore(ctx, cfg)
	publisher := newPublisher(ctx, cfg)

	if cfg.PasswordHashing != "bcrypt" {
		logger.Warn().Msg("Passwords are stored in plaintext; set PASSWORD_HASHING=bcrypt to hash them")
	}

	userService := service.NewUserService(userRepo, publisher, service.NewPasswordHasher(cfg.PasswordHashing))
	gameService := service.NewGameService(gameRepo, publisher)

	userHandler := api.NewUserHandler(userService)
	gameHandler := api.NewGameHandler(gameService)

	e := api.NewServer(userHandler, gameHandler, cfg.CORSOrigins)

	logger.Info().Msgf("GameHub server listening on port %s", cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
