// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type enrichmentService struct {
	client adapter.EnrichmentClient
	logger *logger.Logger
}

// NewEnrichmentService returns an [EnrichmentService]. A nil client makes
// every call fail with ErrEnrichmentUnavailable.
func NewEnrichmentService(client adapter.EnrichmentClient, log *logger.Logger) EnrichmentService {
	return &enrichmentService{client: client, logger: log}
}

func (e *enrichmentService) Enrich(ctx context.Context, session *EditSession, req models.EnrichmentRequest) (models.Enrichment, error) {
	if e.client == nil {
		return models.Enrichment{}, ErrEnrichmentUnavailable
	}
	if !req.Any() {
		return models.Enrichment{}, ErrNothingToEnrich
	}

	text, err := session.PlaintextContent()
	if err != nil {
		return models.Enrichment{}, err
	}

	var (
		result models.Enrichment
		errs   []error
	)

	if req.Summary {
		if result.Summary, err = e.client.Summarize(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	if req.Tags {
		if result.Tags, err = e.client.SuggestTags(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	if req.Grammar {
		if result.GrammarResults, err = e.client.CheckGrammar(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}
	if req.Glossary {
		if result.Glossary, err = e.client.Glossary(ctx, text); err != nil {
			errs = append(errs, err)
		}
	}

	// whatever succeeded is kept even if another request failed
	if err := session.ApplyEnrichment(result); err != nil {
		return models.Enrichment{}, err
	}

	if len(errs) > 0 {
		e.logger.Warn().Str("func", "enrichmentService.Enrich").Str("id", session.ID()).Int("failed", len(errs)).Msg("some enrichment requests failed")
		return result, fmt.Errorf("enrich note %s: %w", session.ID(), errors.Join(errs...))
	}
	return result, nil
}
