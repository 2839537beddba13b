// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrNoteNotFound      = errors.New("note not found")
	ErrNoteLocked        = errors.New("note is locked. Unlock to save changes")
	ErrInvalidTransition = errors.New("operation not allowed in the current lock state")
	ErrSessionClosed     = errors.New("edit session is closed")

	ErrEnrichmentUnavailable = errors.New("enrichment service is not configured")
	ErrNothingToEnrich       = errors.New("no enrichment requested")
)
