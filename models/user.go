package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields (PasswordHash, RefreshToken) never leave the service layer;
// callers receive copies produced by [User.Sanitized].
type User struct {
	// UserID is the server-generated identifier (UUIDv7).
	UserID string `json:"id"`

	// Username is trimmed and lower-cased before storage. Unique.
	Username string `json:"username"`

	// Email is trimmed and lower-cased before storage. Unique.
	Email string `json:"email"`

	// FullName is the display name of the user.
	FullName string `json:"fullName"`

	// PasswordHash is the bcrypt output of the user's password.
	// It is never plaintext and never serialized.
	PasswordHash string `json:"-"`

	// Avatar is the required profile picture reference.
	Avatar Image `json:"avatar"`

	// CoverImage is the optional banner reference. Zero value means absent
	// and is left out of JSON.
	CoverImage Image `json:"coverImage,omitzero"`

	// RefreshToken is the single live refresh token. Empty after logout.
	RefreshToken string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of u with credential material removed.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.RefreshToken = ""
	return u
}

// UserPatch describes a partial update of a user record.
// Only non-nil fields are written.
type UserPatch struct {
	UserID string

	PasswordHash *string
	RefreshToken *string
	Avatar       *Image
	CoverImage   *Image
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.PasswordHash == nil && p.RefreshToken == nil && p.Avatar == nil && p.CoverImage == nil
}

// Registration carries the input of the register operation.
// AvatarPath and CoverImagePath point to files already written to local disk.
type Registration struct {
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	AvatarPath     string `json:"-"`
	CoverImagePath string `json:"-"`
}

// Credentials carries the input of the login operation. Either Username or
// Email identifies the account.
type Credentials struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PasswordChange carries the input of the change-password operation.
type PasswordChange struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// RefreshRequest is the optional JSON body of the refresh-token operation.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// Session is the outcome of a successful login or token refresh.
type Session struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
