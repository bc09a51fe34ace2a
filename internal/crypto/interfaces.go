package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. It knows nothing about users or storage.
type PasswordHasher interface {
	// Hash returns the salted hash of plaintext.
	// Returns ErrPasswordTooLong when plaintext exceeds the algorithm limit.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. The comparison is
	// constant-time; a malformed hash yields false.
	Verify(plaintext, hash string) bool

	// VerifyDummy burns the same amount of work as Verify against a hash
	// that never matches. Used when the account does not exist so that
	// response time does not reveal it.
	VerifyDummy(plaintext string)

	// IsPasswordHash reports whether s looks like output of Hash.
	IsPasswordHash(s string) bool
}
