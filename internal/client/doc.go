// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the notes binary.
//
// It turns configuration into a logger, a storage backend, a content codec,
// an optional enrichment adapter and the note services, and hands them to
// the command line in internal/cli.
package client
