package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/rs/zerolog"
)

const retryDelay = 5 * time.Second

// Connect connects to the contact database with a retry mechanism.
func Connect(url string, maxRetries int, log zerolog.Logger) (*sql.DB, error) {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL URL parse edilemedi: %w", err)
	}

	// Kontak sorguları dinamik projeksiyonlarla kurulduğu için simple
	// protocol kullanılır; prepared statement önbelleği gerekmez.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	finalURL := stdlib.RegisterConnConfig(config.ConnConfig)

	var db *sql.DB
	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("pgx", finalURL)
		if err == nil {
			db.SetConnMaxLifetime(time.Minute * 3)
			db.SetMaxIdleConns(2)
			db.SetMaxOpenConns(10)
			if pingErr := db.Ping(); pingErr == nil {
				log.Info().Msg("Veritabanına bağlantı başarılı (Simple Protocol Mode).")
				return db, nil
			} else {
				err = pingErr
				db.Close()
			}
		}
		log.Warn().Err(err).Int("attempt", i+1).Int("max_attempts", maxRetries).Msg("Veritabanına bağlanılamadı, tekrar denenecek...")
		time.Sleep(retryDelay)
	}

	return nil, fmt.Errorf("veritabanına bağlanılamadı (%d deneme): %w", maxRetries, err)
}
