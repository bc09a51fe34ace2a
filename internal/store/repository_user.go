package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
)

// userRepository is the SQL implementation of [UserRepository]. It works
// against PostgreSQL and SQLite alike; the dialect lives in [DB].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db      *DB
	checker PasswordHashChecker
	logger  *logger.Logger
	now     func() time.Time
}

// NewUserRepository constructs a [UserRepository] backed by db. checker
// guards every write that carries a password value.
func NewUserRepository(db *DB, checker PasswordHashChecker, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:      db,
		checker: checker,
		logger:  logger,
		now:     time.Now,
	}
}

// CreateUser persists a new user record and returns it as stored.
//
// Error handling:
//   - password value not recognised as a hash → [ErrPasswordNotHashed];
//   - unique violation on username or email → [ErrUserAlreadyExists];
//   - connection failures → [ErrStoreUnavailable].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if !r.checker.IsPasswordHash(user.PasswordHash) {
		log.Error().Str("func", "*userRepository.CreateUser").Msg("refusing to store unhashed password")
		return models.User{}, ErrPasswordNotHashed
	}

	now := r.now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	query, args, err := buildInsertUserQuery(r.db.builder, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, r.mapError(err)
	}

	return created, nil
}

// FindUserByUsernameOrEmail returns the record matching username or email.
// [ErrUserNotFound] is returned when nothing matches.
func (r *userRepository) FindUserByUsernameOrEmail(ctx context.Context, username, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByUsernameOrEmailQuery(r.db.builder, username, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error building query")
		return models.User{}, err
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByUsernameOrEmail").Msg("error finding user")
		}
		return models.User{}, r.mapError(err)
	}

	return found, nil
}

// FindUserByID returns the record with the given id or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error building query")
		return models.User{}, err
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("error finding user")
		}
		return models.User{}, r.mapError(err)
	}

	return found, nil
}

// UpdateUser writes the fields present in patch and returns the stored
// record. A patch that sets a password must carry a hash.
func (r *userRepository) UpdateUser(ctx context.Context, patch models.UserPatch) (models.User, error) {
	log := logger.FromContext(ctx)

	if patch.PasswordHash != nil && !r.checker.IsPasswordHash(*patch.PasswordHash) {
		log.Error().Str("func", "*userRepository.UpdateUser").Msg("refusing to store unhashed password")
		return models.User{}, ErrPasswordNotHashed
	}

	query, args, err := buildUpdateUserQuery(r.db.builder, patch, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building query")
		return models.User{}, err
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
		return models.User{}, r.mapError(err)
	}

	return updated, nil
}

// DeleteUser removes the record and returns it as it was before deletion.
func (r *userRepository) DeleteUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteUserQuery(r.db.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building query")
		return models.User{}, err
	}

	deleted, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return models.User{}, r.mapError(err)
	}

	return deleted, nil
}

// SwapRefreshToken rotates the stored refresh token from expected to
// replacement in one statement. Zero affected rows means the token was
// already rotated, cleared, or the user is gone.
func (r *userRepository) SwapRefreshToken(ctx context.Context, userID, expected, replacement string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSwapRefreshTokenQuery(r.db.builder, userID, expected, replacement, r.now().UTC())
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SwapRefreshToken").Msg("error building query")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SwapRefreshToken").Msg("error swapping refresh token")
		return r.mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SwapRefreshToken").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRefreshTokenMismatch
	}

	return nil
}

func (r *userRepository) mapError(err error) error {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrUserNotFound
	default:
		return r.db.wrapError(err)
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		u            models.User
		refreshToken sql.NullString
	)

	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.Email,
		&u.FullName,
		&u.PasswordHash,
		&u.Avatar.URL,
		&u.Avatar.PublicID,
		&u.CoverImage.URL,
		&u.CoverImage.PublicID,
		&refreshToken,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return models.User{}, err
	}

	u.RefreshToken = refreshToken.String
	return u, nil
}
