package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"time"

	"tick/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection is the process-wide store handle: a read and a write pool,
// constructed once at startup and closed on shutdown.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(config *config.Config) *Connection {
	return &Connection{
		Read:  createConn("read", config.DB.Postgres.Read.Username, config.DB.Postgres.Read.Password, config.DB.Postgres.Read.Host, config.DB.Postgres.Read.Port, config.DB.Postgres.Read.Name, config.DB.Postgres.Read.SSLMode, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
		Write: createConn("write", config.DB.Postgres.Write.Username, config.DB.Postgres.Write.Password, config.DB.Postgres.Write.Host, config.DB.Postgres.Write.Port, config.DB.Postgres.Write.Name, config.DB.Postgres.Write.SSLMode, config.DB.Postgres.MaxRetry, config.DB.Postgres.RetryWaitTime),
	}
}

// Close releases both pools.
func (c *Connection) Close() {
	if c.Read != nil {
		if err := c.Read.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing read connection")
		}
	}

	if c.Write != nil {
		if err := c.Write.Close(); err != nil {
			log.Error().Err(err).Msg("Failed closing write connection")
		}
	}
}

func createConn(name, username, password, host, port, dbName, sslMode string, maxRetry, waitTime int) *sqlx.DB {
	descriptor := fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		username,
		password,
		net.JoinHostPort(host, port),
		dbName,
		sslMode,
	)

	for retry := range maxRetry {
		sqlDB, err := sqlx.Connect("postgres", descriptor)
		if err == nil {
			log.
				Info().
				Str("name", name).
				Str("host", host).
				Str("port", port).
				Str("dbName", dbName).
				Msg("Connected to database")
			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		log.
			Error().
			Err(err).
			Str("name", name).
			Str("host", host).
			Str("port", port).
			Str("dbName", dbName).
			Int("attempt", retry+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitTime) * time.Second)
	}

	return nil
}
