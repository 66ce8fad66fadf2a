package config

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"net/url"
	"os"
	"strings"
)

const (
	defaultPort     = "3030"
	defaultDBHost   = "cluster0.bfqzn.mongodb.net"
	defaultDBName   = "test"
	defaultOrigins  = "http://localhost:3000,http://localhost:3001"
	defaultTopic    = "gamehub-events"
	defaultChannel  = "gamehub:events"
	defaultLogLevel = "info"
)

type Config struct {
	Port string

	StoreDriver string // mongo, mysql or memory
	MongoURI    string
	DBName      string
	MySQLDSN    string

	CORSOrigins []string

	EventsSink    string // none, kafka or redis
	KafkaBrokers  []string
	KafkaTopic    string
	RedisAddr     string
	RedisPassword string
	RedisChannel  string

	PasswordHashing string // plain or bcrypt
	LogLevel        string
}

// Load reads the environment, after applying a .env file if one exists.
// Variables already set in the environment win over .env.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found. Using environment variables.")
	}

	return Config{
		Port:            envOr("PORT", defaultPort),
		StoreDriver:     strings.ToLower(envOr("STORE_DRIVER", "mongo")),
		MongoURI:        mongoURI(),
		DBName:          envOr("DB_NAME", defaultDBName),
		MySQLDSN:        os.Getenv("MYSQL_DSN"),
		CORSOrigins:     splitList(envOr("CORS_ORIGINS", defaultOrigins)),
		EventsSink:      strings.ToLower(envOr("EVENTS_SINK", "none")),
		KafkaBrokers:    getKafkaBrokerURLs(),
		KafkaTopic:      envOr("KAFKA_TOPIC", defaultTopic),
		RedisAddr:       envOr("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisChannel:    envOr("REDIS_CHANNEL", defaultChannel),
		PasswordHashing: strings.ToLower(envOr("PASSWORD_HASHING", "plain")),
		LogLevel:        envOr("LOG_LEVEL", defaultLogLevel),
	}
}

// mongoURI prefers MONGODB_URI and otherwise builds the Atlas SRV URI from
// DB_USER, DB_ACCESS and DB_HOST.
func mongoURI() string {
	if uri := os.Getenv("MONGODB_URI"); uri != "" {
		return uri
	}
	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority&appName=Cluster0",
		url.QueryEscape(os.Getenv("DB_USER")),
		url.QueryEscape(os.Getenv("DB_ACCESS")),
		envOr("DB_HOST", defaultDBHost))
}

// SetupLogging applies level globally; unknown levels fall back to info.
func SetupLogging(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimRight(strings.TrimSpace(p), "/"); p != "" {
			out = append(out, p)
		}
	}
	return out
}
