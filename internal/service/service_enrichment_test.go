// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/mock"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func plainSession(t *testing.T) *EditSession {
	t.Helper()
	n := note("a", t0)
	n.Content = "Go is a language"
	n.Tags = []string{"go"}
	return newSession(&n)
}

func TestEnrichmentService_AllFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockEnrichmentClient(ctrl)
	client.EXPECT().Summarize(gomock.Any(), "Go is a language").Return("A short summary.", nil)
	client.EXPECT().SuggestTags(gomock.Any(), "Go is a language").Return([]string{"go", "programming"}, nil)
	client.EXPECT().CheckGrammar(gomock.Any(), "Go is a language").Return("No issues.", nil)
	client.EXPECT().Glossary(gomock.Any(), "Go is a language").Return("Go: a language", nil)

	s := plainSession(t)
	got, err := NewEnrichmentService(client, logger.Nop()).Enrich(context.Background(), s,
		models.EnrichmentRequest{Summary: true, Tags: true, Grammar: true, Glossary: true})
	require.NoError(t, err)

	assert.Equal(t, "A short summary.", got.Summary)
	applied := s.Enrichment()
	assert.Equal(t, "A short summary.", applied.Summary)
	assert.Equal(t, []string{"go", "programming"}, applied.Tags)
	assert.Equal(t, "No issues.", applied.GrammarResults)
	assert.Equal(t, "Go: a language", applied.Glossary)
}

func TestEnrichmentService_OnlyRequestedFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockEnrichmentClient(ctrl)
	client.EXPECT().Glossary(gomock.Any(), gomock.Any()).Return("terms", nil)

	s := plainSession(t)
	_, err := NewEnrichmentService(client, logger.Nop()).Enrich(context.Background(), s, models.EnrichmentRequest{Glossary: true})
	require.NoError(t, err)
	assert.Equal(t, "terms", s.Enrichment().Glossary)
	assert.Empty(t, s.Enrichment().Summary)
}

func TestEnrichmentService_PartialFailureKeepsSuccesses(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mock.NewMockEnrichmentClient(ctrl)
	client.EXPECT().Summarize(gomock.Any(), gomock.Any()).Return("", adapter.ErrTooManyRequests)
	client.EXPECT().SuggestTags(gomock.Any(), gomock.Any()).Return([]string{"new"}, nil)

	s := plainSession(t)
	_, err := NewEnrichmentService(client, logger.Nop()).Enrich(context.Background(), s,
		models.EnrichmentRequest{Summary: true, Tags: true})

	require.ErrorIs(t, err, adapter.ErrTooManyRequests)
	assert.Equal(t, []string{"go", "new"}, s.Tags())
}

func TestEnrichmentService_Refusals(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	client := mock.NewMockEnrichmentClient(ctrl)
	svc := NewEnrichmentService(client, logger.Nop())

	t.Run("no client", func(t *testing.T) {
		_, err := NewEnrichmentService(nil, logger.Nop()).Enrich(ctx, plainSession(t), models.EnrichmentRequest{Summary: true})
		assert.ErrorIs(t, err, ErrEnrichmentUnavailable)
	})

	t.Run("nothing requested", func(t *testing.T) {
		_, err := svc.Enrich(ctx, plainSession(t), models.EnrichmentRequest{})
		assert.ErrorIs(t, err, ErrNothingToEnrich)
	})

	t.Run("locked note never leaves the session", func(t *testing.T) {
		n := lockedNote(t)
		_, err := svc.Enrich(ctx, newSession(&n), models.EnrichmentRequest{Summary: true})
		assert.ErrorIs(t, err, ErrNoteLocked)
	})
}
