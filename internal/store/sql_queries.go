// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order every user query selects and every
// scan reads.
var userColumns = []string{
	"user_id",
	"username",
	"email",
	"full_name",
	"password_hash",
	"avatar_url",
	"avatar_public_id",
	"cover_image_url",
	"cover_image_public_id",
	"refresh_token",
	"created_at",
	"updated_at",
}

// nullableString maps the empty string to SQL NULL.
func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	query, args, err := b.
		Insert(usersTable).
		Columns(userColumns...).
		Values(
			user.UserID,
			user.Username,
			user.Email,
			user.FullName,
			user.PasswordHash,
			user.Avatar.URL,
			user.Avatar.PublicID,
			user.CoverImage.URL,
			user.CoverImage.PublicID,
			nullableString(user.RefreshToken),
			user.CreatedAt,
			user.UpdatedAt,
		).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByUsernameOrEmailQuery(b sq.StatementBuilderType, username, email string) (string, []any, error) {
	or := sq.Or{}
	if username != "" {
		or = append(or, sq.Eq{"username": username})
	}
	if email != "" {
		or = append(or, sq.Eq{"email": email})
	}
	if len(or) == 0 {
		return "", nil, fmt.Errorf("%w: username and email are both empty", ErrBuildingSQLQuery)
	}

	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(or).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateUserQuery sets only the fields present in patch. updated_at is
// always refreshed.
func buildUpdateUserQuery(b sq.StatementBuilderType, patch models.UserPatch, now time.Time) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, fmt.Errorf("%w: nothing to update", ErrBuildingSQLQuery)
	}

	update := b.Update(usersTable)

	if patch.PasswordHash != nil {
		update = update.Set("password_hash", *patch.PasswordHash)
	}
	if patch.RefreshToken != nil {
		update = update.Set("refresh_token", nullableString(*patch.RefreshToken))
	}
	if patch.Avatar != nil {
		update = update.
			Set("avatar_url", patch.Avatar.URL).
			Set("avatar_public_id", patch.Avatar.PublicID)
	}
	if patch.CoverImage != nil {
		update = update.
			Set("cover_image_url", patch.CoverImage.URL).
			Set("cover_image_public_id", patch.CoverImage.PublicID)
	}

	query, args, err := update.
		Set("updated_at", now).
		Where(sq.Eq{"user_id": patch.UserID}).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteUserQuery(b sq.StatementBuilderType, userID string) (string, []any, error) {
	query, args, err := b.
		Delete(usersTable).
		Where(sq.Eq{"user_id": userID}).
		Suffix(returningUserColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSwapRefreshTokenQuery is a compare-and-swap: the row is touched only
// while it still holds expected.
func buildSwapRefreshTokenQuery(b sq.StatementBuilderType, userID, expected, replacement string, now time.Time) (string, []any, error) {
	if expected == "" {
		return "", nil, fmt.Errorf("%w: expected refresh token is empty", ErrBuildingSQLQuery)
	}

	query, args, err := b.
		Update(usersTable).
		Set("refresh_token", nullableString(replacement)).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID, "refresh_token": expected}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}
