// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by slots and the notes repository. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStorageCorrupt is returned by Load when the slot holds data that
	// cannot be parsed. The slot has already been cleared and an empty
	// collection is returned alongside, so the error is informational.
	ErrStorageCorrupt = errors.New("notes storage is corrupt and was reset")

	// ErrStorageRead is returned when the slot itself cannot be read.
	ErrStorageRead = errors.New("failed to load notes from storage")

	// ErrStorageWrite wraps every failure to persist the collection. The
	// in-memory state stays authoritative and the write can be retried.
	ErrStorageWrite = errors.New("failed to save notes to storage")

	// ErrQuotaExceeded is returned by a capacity-limited slot when the
	// serialized collection does not fit.
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrPlaintextProtectedNote is returned by Save when a note marked as
	// password protected carries content without the ciphertext marker.
	// Nothing is written in that case.
	ErrPlaintextProtectedNote = errors.New("password protected note is not encrypted")

	// ErrInvalidImport is returned by Import for input that is not a JSON
	// array of notes with ids.
	ErrInvalidImport = errors.New("invalid JSON format")

	// ErrUnsupportedFormat is returned by Export for an unknown format.
	ErrUnsupportedFormat = errors.New("unsupported export format")

	// ErrUnknownBackend is returned by NewClientStorages for an unknown
	// storage backend name.
	ErrUnknownBackend = errors.New("unknown storage backend")
)
