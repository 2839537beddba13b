// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	summaryPrompt = "Please provide a concise 1-2 sentence summary of the following text:\n\n%s"

	tagsPrompt = "Based on the following text, suggest 3-5 relevant tags separated by commas:\n\n%s"

	grammarPrompt = `Analyze the following text for grammar errors, spelling mistakes, and writing issues. List only the mistakes found (not corrections). If no errors, respond with "No grammar errors found".

Text to check:
%s

Please list each error clearly, one per line.`

	glossaryPrompt = `Identify and define the 5 most important or technical terms from the following text. Present them as a simple list in this format:

**Term**: Definition

Text to analyze:
%s

Focus on key concepts, technical terms, or important vocabulary.`
)

type generateContentRequest struct {
	Contents []content `json:"contents"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type geminiEnrichmentClient struct {
	client   *utils.HTTPClient
	endpoint string
	apiKey   string

	logger *logger.Logger
}

// NewGeminiEnrichmentClient constructs an [EnrichmentClient] that POSTs
// prompts to the generateContent endpoint in adapterCfg.EnrichmentURL.
//
// Returns an error if the URL cannot be parsed. A missing API key is only
// reported when a request is made, so commands that never enrich keep
// working without one.
func NewGeminiEnrichmentClient(adapterCfg config.Adapter, logger *logger.Logger) (EnrichmentClient, error) {
	endpoint, err := normalizeEndpoint(adapterCfg.EnrichmentURL)
	if err != nil {
		return nil, fmt.Errorf("invalid enrichment url: %w", err)
	}

	client := utils.NewHTTPClient()
	client.SetTimeout(adapterCfg.RequestTimeout)

	return &geminiEnrichmentClient{
		client:   client,
		endpoint: endpoint,
		apiKey:   strings.TrimSpace(adapterCfg.APIKey),
		logger:   logger,
	}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return u.String(), nil
}

// Summarize implements [EnrichmentClient].
func (g *geminiEnrichmentClient) Summarize(ctx context.Context, text string) (string, error) {
	out, err := g.generate(ctx, fmt.Sprintf(summaryPrompt, text))
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// SuggestTags implements [EnrichmentClient]. The comma-separated answer is
// split, trimmed and deduplicated.
func (g *geminiEnrichmentClient) SuggestTags(ctx context.Context, text string) ([]string, error) {
	out, err := g.generate(ctx, fmt.Sprintf(tagsPrompt, text))
	if err != nil {
		return nil, fmt.Errorf("suggest tags: %w", err)
	}
	return models.ParseTags(out), nil
}

// CheckGrammar implements [EnrichmentClient].
func (g *geminiEnrichmentClient) CheckGrammar(ctx context.Context, text string) (string, error) {
	out, err := g.generate(ctx, fmt.Sprintf(grammarPrompt, text))
	if err != nil {
		return "", fmt.Errorf("check grammar: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// Glossary implements [EnrichmentClient].
func (g *geminiEnrichmentClient) Glossary(ctx context.Context, text string) (string, error) {
	out, err := g.generate(ctx, fmt.Sprintf(glossaryPrompt, text))
	if err != nil {
		return "", fmt.Errorf("generate glossary: %w", err)
	}
	return strings.TrimSpace(out), nil
}

// generate sends one prompt and returns the text of the first candidate.
func (g *geminiEnrichmentClient) generate(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	var result generateContentResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-goog-api-key", g.apiKey).
		SetBody(generateContentRequest{Contents: []content{{Parts: []part{{Text: prompt}}}}}).
		SetResult(&result).
		Post(g.endpoint)
	if err != nil {
		g.logger.Err(err).Str("func", "geminiEnrichmentClient.generate").Msg("enrichment request failed")
		return "", fmt.Errorf("enrichment request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		g.logger.Err(err).Str("func", "geminiEnrichmentClient.generate").Int("status", resp.StatusCode()).Msg("enrichment service returned an error")
		return "", err
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 ||
		strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text) == "" {
		return "", ErrEmptyResponse
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
