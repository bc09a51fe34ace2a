package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an insert violates the unique
	// username or email constraint.
	ErrUserAlreadyExists = errors.New("user with this username or email already exists")

	// ErrUserNotFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrRefreshTokenMismatch is returned by SwapRefreshToken when the
	// stored token is not the expected one (rotated or logged out meanwhile).
	ErrRefreshTokenMismatch = errors.New("stored refresh token does not match")

	// ErrPasswordNotHashed is returned when a write carries a password value
	// that is not a password hash. Plaintext never reaches the database.
	ErrPasswordNotHashed = errors.New("refusing to store a password that is not hashed")

	// ErrStoreUnavailable is returned when the database cannot be reached or
	// is temporarily refusing work.
	ErrStoreUnavailable = errors.New("credential store is unavailable")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. an empty lookup or an empty patch).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails for a reason not covered by the sentinels above.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrUnsupportedDriver is returned by NewDB for an unknown driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)
