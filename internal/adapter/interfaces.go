// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the AI enrichment service.
//
// The service only ever sees plaintext note content and returns opaque
// derived text (summary, tag suggestions, grammar findings, glossary). It
// never takes part in encryption. [NewGeminiEnrichmentClient] implements
// [EnrichmentClient] against a Gemini-style generateContent endpoint.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is].
package adapter

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/enrichment_client_mock.go -package=mock

// EnrichmentClient produces derived text from plaintext note content.
type EnrichmentClient interface {
	// Summarize returns a one or two sentence summary of content.
	Summarize(ctx context.Context, content string) (string, error)

	// SuggestTags returns a handful of tags describing content.
	SuggestTags(ctx context.Context, content string) ([]string, error)

	// CheckGrammar lists grammar and spelling problems found in content.
	CheckGrammar(ctx context.Context, content string) (string, error)

	// Glossary defines the most important terms used in content.
	Glossary(ctx context.Context, content string) (string, error)
}
