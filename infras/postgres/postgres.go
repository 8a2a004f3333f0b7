package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"slotbook/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

var ErrUnreachable = errors.New("postgres unreachable")

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write pair.
type Endpoint struct {
	Name     string
	Username string
	Password string
	Host     string
	Port     string
	DBName   string
	SSLMode  string
}

func (e Endpoint) DSN() string {
	sslMode := e.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.DBName,
		RawQuery: "sslmode=" + sslMode,
	}

	return dsn.String()
}

func (e Endpoint) sameServer(other Endpoint) bool {
	return e.Host == other.Host && e.Port == other.Port && e.DBName == other.DBName && e.Username == other.Username
}

func dbName(config *config.Config, baseName string) string {
	return config.DB.Postgres.Prefix + baseName
}

func WriteEndpoint(config *config.Config) Endpoint {
	write := config.DB.Postgres.Write

	return Endpoint{
		Name:     "write",
		Username: write.Username,
		Password: write.Password,
		Host:     write.Host,
		Port:     write.Port,
		DBName:   dbName(config, write.Name),
		SSLMode:  write.SSLMode,
	}
}

// ReadEndpoint falls back to the write endpoint when no replica host is configured.
func ReadEndpoint(config *config.Config) Endpoint {
	read := config.DB.Postgres.Read
	if read.Host == "" {
		endpoint := WriteEndpoint(config)
		endpoint.Name = "read"

		return endpoint
	}

	return Endpoint{
		Name:     "read",
		Username: read.Username,
		Password: read.Password,
		Host:     read.Host,
		Port:     read.Port,
		DBName:   dbName(config, read.Name),
		SSLMode:  read.SSLMode,
	}
}

// New opens the write pool and, when it points somewhere else, the read pool.
func New(config *config.Config) (*Connection, error) {
	maxRetry := config.DB.Postgres.MaxRetry
	wait := time.Duration(config.DB.Postgres.RetryWaitTime) * time.Second

	writeEndpoint := WriteEndpoint(config)

	write, err := connect(writeEndpoint, maxRetry, wait)
	if err != nil {
		return nil, err
	}

	readEndpoint := ReadEndpoint(config)
	if readEndpoint.sameServer(writeEndpoint) {
		return &Connection{Read: write, Write: write}, nil
	}

	read, err := connect(readEndpoint, maxRetry, wait)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

func connect(endpoint Endpoint, maxRetry int, wait time.Duration) (*sqlx.DB, error) {
	attempts := max(1, maxRetry)

	var lastErr error

	for attempt := range attempts {
		sqlDB, err := sqlx.Connect("postgres", endpoint.DSN())
		if err == nil {
			log.
				Info().
				Str("name", endpoint.Name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.DBName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", endpoint.Name).
			Str("host", endpoint.Host).
			Str("dbName", endpoint.DBName).
			Int("attempt", attempt+1).
			Int("attempts", attempts).
			Msg("Failed connecting to database")

		if attempt+1 < attempts {
			time.Sleep(wait)
		}
	}

	return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrUnreachable, endpoint.Name, attempts, lastErr)
}
