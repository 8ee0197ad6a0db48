package postgres

//nolint:revive
import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"dueday/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
	postgresConnMaxLifetime   = 30 * time.Minute
)

var ErrConnectionExhausted = errors.New("postgres: connection attempts exhausted")

// Connection keeps separate pools for reads and writes. Both point at the same
// database unless DB_POSTGRES_READ_* names a replica.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type Endpoint struct {
	Name     string
	Host     string
	Port     string
	Username string
	Password string
	Database string
	SSLMode  string
}

func New(cfg *config.Config) (*Connection, error) {
	write, err := Connect(writeEndpoint(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	if err != nil {
		return nil, err
	}

	read, err := Connect(readEndpoint(cfg), cfg.DB.Postgres.MaxRetry, cfg.DB.Postgres.RetryWaitTime)
	if err != nil {
		_ = write.Close()

		return nil, err
	}

	return &Connection{Read: read, Write: write}, nil
}

// NewFromDB wraps an already opened pool for both roles.
func NewFromDB(db *sqlx.DB) *Connection {
	return &Connection{Read: db, Write: db}
}

func (c *Connection) Close() error {
	var errs []error

	if c.Write != nil {
		errs = append(errs, c.Write.Close())
	}

	if c.Read != nil && c.Read != c.Write {
		errs = append(errs, c.Read.Close())
	}

	return errors.Join(errs...)
}

func dbName(cfg *config.Config, baseName string) string {
	return cfg.DB.Postgres.Prefix + baseName
}

func writeEndpoint(cfg *config.Config) Endpoint {
	w := cfg.DB.Postgres.Write

	return Endpoint{
		Name:     "write",
		Host:     w.Host,
		Port:     w.Port,
		Username: w.Username,
		Password: w.Password,
		Database: dbName(cfg, w.Name),
		SSLMode:  w.SSLMode,
	}
}

func readEndpoint(cfg *config.Config) Endpoint {
	r := cfg.DB.Postgres.Read
	if r.Host == "" {
		endpoint := writeEndpoint(cfg)
		endpoint.Name = "read"

		return endpoint
	}

	return Endpoint{
		Name:     "read",
		Host:     r.Host,
		Port:     r.Port,
		Username: r.Username,
		Password: r.Password,
		Database: dbName(cfg, r.Name),
		SSLMode:  r.SSLMode,
	}
}

// DSN renders the endpoint as a lib/pq connection URL.
func (e Endpoint) DSN() string {
	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Database,
		RawQuery: url.Values{"sslmode": []string{e.SSLMode}}.Encode(),
	}

	return dsn.String()
}

// Connect opens a pool, retrying up to maxRetry times with waitTime seconds between attempts.
func Connect(endpoint Endpoint, maxRetry, waitTime int) (*sqlx.DB, error) {
	maxRetry = max(maxRetry, 1)

	var lastErr error

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			log.
				Info().
				Str("name", endpoint.Name).
				Str("host", endpoint.Host).
				Str("port", endpoint.Port).
				Str("dbName", endpoint.Database).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)
			sqlDB.SetConnMaxLifetime(postgresConnMaxLifetime)

			return sqlDB, nil
		}

		lastErr = err

		log.
			Error().
			Err(err).
			Str("name", endpoint.Name).
			Str("host", endpoint.Host).
			Str("port", endpoint.Port).
			Str("dbName", endpoint.Database).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		if retry < maxRetry-1 {
			time.Sleep(time.Duration(waitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("%w (%s): %w", ErrConnectionExhausted, endpoint.Name, lastErr)
}
