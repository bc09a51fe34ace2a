package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/config"
	"github.com/MKhiriev/go-account-keeper/internal/logger"
)

// Storages groups every repository the services depend on together with
// the connection that backs them.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages opens the configured database, applies migrations and builds
// the repositories on top of it.
func NewStorages(ctx context.Context, cfg config.Storage, checker PasswordHashChecker, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, checker, log),
		db:             db,
	}, nil
}

// Ping reports whether the database still answers.
func (s *Storages) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	return s.db.Close()
}
