// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	ErrNothingToEdit     = errors.New("nothing to edit: pass --title, --content or --tags")
	ErrTooManyAttempts   = errors.New("too many password attempts")
	ErrAlreadyProtected  = errors.New("note is already password protected")
	ErrNotProtected      = errors.New("note is not password protected")
	ErrClipboardDisabled = errors.New("clipboard is not available")
)
