package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fintrackr/finance_tracker_app/internal/adapters/genai/gemini"
	"github.com/fintrackr/finance_tracker_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTimeout = 2 * time.Second

func candidateBody(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(body)
}

func TestGenerateText_Success(t *testing.T) {
	var gotPath, gotKey string
	var gotBody struct {
		Contents []struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"contents"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(candidateBody("  Groceries\n")))
	}))
	defer server.Close()

	client := gemini.NewClient("test-key", "gemini-1.5-flash", testTimeout, gemini.WithBaseURL(server.URL))

	text, err := client.GenerateText(context.Background(), "categorize this")

	require.NoError(t, err)
	assert.Equal(t, "Groceries", text, "reply must be trimmed")
	assert.Equal(t, "/models/gemini-1.5-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "categorize this", gotBody.Contents[0].Parts[0].Text)
}

func TestGenerateText_JoinsMultipleParts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]string{
					{"text": "Spend less "},
					{"text": "on takeout."},
				}}},
			},
		})
		w.Write(body)
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL))

	text, err := client.GenerateText(context.Background(), "insight")

	require.NoError(t, err)
	assert.Equal(t, "Spend less on takeout.", text)
}

func TestGenerateText_RetriesOnceOn5xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(candidateBody("Transportation")))
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL))

	text, err := client.GenerateText(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "Transportation", text)
	assert.Equal(t, int32(2), calls.Load())
}

func TestGenerateText_PersistentServerErrorFails(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL))

	text, err := client.GenerateText(context.Background(), "p")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, int32(2), calls.Load(), "exactly one retry")
}

func TestGenerateText_NoRetryOn4xx(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad api key", http.StatusBadRequest)
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL))

	_, err := client.GenerateText(context.Background(), "p")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load(), "client errors are not retried")
}

func TestGenerateText_NoRetryAfterContextCancel(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "slow", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL), gemini.WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			resp, err := http.DefaultTransport.RoundTrip(r)
			cancel()
			return resp, err
		}),
	}))

	_, err := client.GenerateText(ctx, "p")

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "no retry once the caller context is done")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestGenerateText_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL))

	text, err := client.GenerateText(context.Background(), "p")

	require.Error(t, err)
	assert.Empty(t, text)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestGenerateText_WhitespaceOnlyReply(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateBody("   \n\t ")))
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL))

	_, err := client.GenerateText(context.Background(), "p")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestGenerateText_TransportErrorRetried(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(candidateBody("Travel")))
	}))
	defer server.Close()

	client := gemini.NewClient("k", "m", testTimeout, gemini.WithBaseURL(server.URL), gemini.WithHTTPClient(&http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if calls.Add(1) == 1 {
				return nil, assert.AnError
			}
			return http.DefaultTransport.RoundTrip(r)
		}),
	}))

	text, err := client.GenerateText(context.Background(), "p")

	require.NoError(t, err)
	assert.Equal(t, "Travel", text)
	assert.Equal(t, int32(2), calls.Load())
}
