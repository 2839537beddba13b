// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID   = errors.New("note id is required")
	ErrEmptyTitle      = errors.New("title is required")
	ErrEmptyContent    = errors.New("note content cannot be empty")
	ErrInvalidTimes    = errors.New("note was updated before it was created")
	ErrDuplicateNoteID = errors.New("a note with this id already exists")

	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 4 characters")
	ErrPasswordMismatch = errors.New("passwords do not match")
)
