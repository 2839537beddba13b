// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the business rules a note or a password prompt
// must satisfy before the service issues a command for it.
//
// A Validator is injected into the service and called with the value to
// check and, optionally, the names of the fields to restrict the check to:
//
//	err := v.Validate(ctx, note, validators.FieldTitle)
//
// Rule violations are reported as the sentinel errors in errors.go so the
// caller can match them with errors.Is.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
