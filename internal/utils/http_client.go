// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	userAgent        = "go-notes-keeper"
	retryCount       = 2
	retryWaitTime    = 200 * time.Millisecond
	retryMaxWaitTime = time.Second
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that identifies itself as go-notes-keeper
// and retries a request a couple of times when the server answers 429 or
// 503. Each call returns an independent client with its own connection pool.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetHeader("User-Agent", userAgent).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime).
		AddRetryCondition(isThrottled)

	return &HTTPClient{Client: client}
}

func isThrottled(resp *resty.Response, err error) bool {
	if err != nil || resp == nil {
		return false
	}
	return resp.StatusCode() == http.StatusTooManyRequests ||
		resp.StatusCode() == http.StatusServiceUnavailable
}
