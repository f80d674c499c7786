package wiki

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"github.com/tkessler/parley/internal/collab"
)

func summaryServer(t *testing.T, payload summaryPayload) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.True(t, strings.HasPrefix(r.URL.Path, "/page/summary/"))
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}))
}

func TestSummaryReturnsExtract(t *testing.T) {
	server := summaryServer(t, summaryPayload{
		Title:   "Alan Turing",
		Extract: "Alan Turing was a mathematician.",
		Type:    "standard",
	})
	defer server.Close()

	c := New(server.URL)
	got, err := c.Summary(context.Background(), "alan turing")
	require.NoError(t, err)
	require.Equal(t, "Alan Turing was a mathematician.", got)
}

func TestSummaryEncodesTopicAsTitle(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		_ = json.NewEncoder(w).Encode(summaryPayload{Extract: "x", Type: "standard"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Summary(context.Background(), "alan turing")
	require.NoError(t, err)
	require.Equal(t, "/page/summary/alan_turing", path)
}

func TestSummaryNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Summary(context.Background(), "zzyzx")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummaryDisambiguationIsNotFound(t *testing.T) {
	server := summaryServer(t, summaryPayload{
		Extract: "Mercury may refer to:",
		Type:    "disambiguation",
	})
	defer server.Close()

	c := New(server.URL)
	_, err := c.Summary(context.Background(), "mercury")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSummaryTruncatesLongExtract(t *testing.T) {
	server := summaryServer(t, summaryPayload{
		Extract: strings.Repeat("a", 5000),
		Type:    "standard",
	})
	defer server.Close()

	c := New(server.URL)
	got, err := c.Summary(context.Background(), "long article")
	require.NoError(t, err)
	require.Len(t, got, summaryLimit)
}

func TestSummaryTruncatesOnRuneBoundary(t *testing.T) {
	server := summaryServer(t, summaryPayload{
		Extract: strings.Repeat("€", 400),
		Type:    "standard",
	})
	defer server.Close()

	c := New(server.URL)
	got, err := c.Summary(context.Background(), "currency signs")
	require.NoError(t, err)
	require.True(t, utf8.ValidString(got))
	require.LessOrEqual(t, len(got), summaryLimit)
}

func TestSummaryCaches(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		_ = json.NewEncoder(w).Encode(summaryPayload{Extract: "cached", Type: "standard"})
	}))
	defer server.Close()

	c := New(server.URL)
	for i := 0; i < 3; i++ {
		_, err := c.Summary(context.Background(), "Go")
		require.NoError(t, err)
	}
	require.Equal(t, 1, requests)
}

func TestSummaryServerErrorIsUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Summary(context.Background(), "anything")
	require.Error(t, err)
	require.Equal(t, collab.KindUnreachable, collab.KindOf(err))
}
