// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks account inputs before they reach the session
// logic: registration forms, login credentials and password changes.
//
// A [Validator] may be scoped to a subset of fields by passing field names
// (FieldEmail, FieldPassword, ...). Without names every field of the value
// is checked. Errors are plain sentinels; the service layer decides how to
// classify them.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
