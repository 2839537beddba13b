// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Enrichment holds text derived from a note's plaintext by the AI service.
// Empty fields were not requested or not produced.
type Enrichment struct {
	Summary        string
	Tags           []string
	GrammarResults string
	Glossary       string
}

// EnrichmentRequest selects which derived fields to produce.
type EnrichmentRequest struct {
	Summary  bool
	Tags     bool
	Grammar  bool
	Glossary bool
}

// Any reports whether at least one field is requested.
func (r EnrichmentRequest) Any() bool {
	return r.Summary || r.Tags || r.Grammar || r.Glossary
}
