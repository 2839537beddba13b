// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// newTestClient creates an enrichment client pointed at the test server.
func newTestClient(t *testing.T, serverURL string) EnrichmentClient {
	t.Helper()
	c, err := NewGeminiEnrichmentClient(config.Adapter{
		EnrichmentURL:  serverURL + "/v1beta/models/test:generateContent",
		APIKey:         "test-key",
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

// answer returns a handler replying with text as the first candidate and
// recording the prompt it received.
func answer(t *testing.T, text string, prompt *string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/test:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.Query().Get("key"), "key must not travel in the url")

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		if prompt != nil {
			*prompt = req.Contents[0].Parts[0].Text
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []any{
				map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": text}}}},
			},
		})
	}
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewGeminiEnrichmentClient_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "no-scheme", "://"} {
		_, err := NewGeminiEnrichmentClient(config.Adapter{EnrichmentURL: raw}, logger.Nop())
		assert.Error(t, err, raw)
	}
}

// ── operations ──────────────────────────────────────────────────────────────

func TestSummarize_Success(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(answer(t, "  A short summary.\n", &prompt))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Summarize(context.Background(), "long text")
	require.NoError(t, err)
	assert.Equal(t, "A short summary.", got)
	assert.True(t, strings.HasSuffix(prompt, "\n\nlong text"))
	assert.Contains(t, prompt, "summary")
}

func TestSuggestTags_SplitsAndDedups(t *testing.T) {
	srv := httptest.NewServer(answer(t, "go, storage , go,, crypto", nil))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).SuggestTags(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, []string{"go", "storage", "crypto"}, got)
}

func TestCheckGrammar_Success(t *testing.T) {
	var prompt string
	srv := httptest.NewServer(answer(t, "No grammar errors found\n", &prompt))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).CheckGrammar(context.Background(), "Fine text.")
	require.NoError(t, err)
	assert.Equal(t, "No grammar errors found", got)
	assert.Contains(t, prompt, "Text to check:\nFine text.")
}

func TestGlossary_Success(t *testing.T) {
	srv := httptest.NewServer(answer(t, "**AES**: a block cipher", nil))
	defer srv.Close()

	got, err := newTestClient(t, srv.URL).Glossary(context.Background(), "AES text")
	require.NoError(t, err)
	assert.Equal(t, "**AES**: a block cipher", got)
}

// ── failures ────────────────────────────────────────────────────────────────

func TestGenerate_StatusErrors(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{status: http.StatusForbidden, wantErr: ErrForbidden},
		{status: http.StatusNotFound, wantErr: ErrNotFound},
		{status: http.StatusTooManyRequests, wantErr: ErrTooManyRequests},
		{status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("upstream says no"))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).Summarize(context.Background(), "x")
			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "upstream says no")
		})
	}
}

func TestGenerate_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	_, err := newTestClient(t, srv.URL).Glossary(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	for name, body := range map[string]string{
		"no candidates": `{"candidates": []}`,
		"no parts":      `{"candidates": [{"content": {"parts": []}}]}`,
		"blank text":    `{"candidates": [{"content": {"parts": [{"text": "  "}]}}]}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			_, err := newTestClient(t, srv.URL).CheckGrammar(context.Background(), "x")
			require.ErrorIs(t, err, ErrEmptyResponse)
		})
	}
}

func TestGenerate_MissingAPIKey(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c, err := NewGeminiEnrichmentClient(config.Adapter{EnrichmentURL: srv.URL}, logger.Nop())
	require.NoError(t, err)

	_, err = c.SuggestTags(context.Background(), "x")
	require.ErrorIs(t, err, ErrMissingAPIKey)
	assert.False(t, called)
}

func TestGenerate_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(answer(t, "never", nil))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(t, srv.URL).Summarize(ctx, "x")
	require.Error(t, err)
}
