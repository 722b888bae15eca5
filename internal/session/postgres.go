package session

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

// migrations is the whole schema this service owns: one table. Sessions
// are the only client-side record; everything else lives behind the
// backend API.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "1_create_sessions",
			Up: []string{`
				CREATE TABLE sessions (
					id         TEXT PRIMARY KEY,
					token      TEXT NOT NULL,
					user_id    BIGINT NOT NULL,
					username   TEXT NOT NULL,
					is_admin   BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				)`,
			},
			Down: []string{`DROP TABLE sessions`},
		},
	},
}

// PostgresStore persists sessions so a login survives restarts of this
// service the way localStorage survives a browser restart.
type PostgresStore struct {
	db *sql.DB
}

type PostgresConfig struct {
	Host, Port, User, Password, Name string
}

func NewPostgresStore(cfg PostgresConfig) (*PostgresStore, error) {
	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)

	var db *sql.DB
	var err error
	maxRetries := 5
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", psqlInfo)
		if err != nil {
			log.Printf("Failed to open database (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}
		if err = db.Ping(); err != nil {
			log.Printf("Failed to ping database (attempt %d/%d): %v", i+1, maxRetries, err)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}
		break
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
	}

	if _, err := migrate.Exec(db, "postgres", migrations, migrate.Up); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &PostgresStore{db: db}, nil
}

func (p *PostgresStore) Create(ctx context.Context, s *Session) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO sessions (id, token, user_id, username, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, s.ID, s.Token, s.UserID, s.Username, s.IsAdmin, s.CreatedAt)
	return err
}

func (p *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	s := &Session{}
	err := p.db.QueryRowContext(ctx, `
		SELECT id, token, user_id, username, is_admin, created_at
		FROM sessions WHERE id = $1
	`, id).Scan(&s.ID, &s.Token, &s.UserID, &s.Username, &s.IsAdmin, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (p *PostgresStore) Delete(ctx context.Context, id string) error {
	_, err := p.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = $1`, id)
	return err
}

func (p *PostgresStore) Close() error {
	return p.db.Close()
}
