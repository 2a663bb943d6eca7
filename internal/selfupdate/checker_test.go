package selfupdate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/studychamp/studychamp/releases/latest" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestCheck_UpdateAvailable(t *testing.T) {
	server := releaseServer(t, `{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.0.0", result.CurrentVersion)
	assert.Equal(t, "v2.0.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v2.0.0", result.ReleaseURL)
}

func TestCheck_AlreadyLatest(t *testing.T) {
	server := releaseServer(t, `{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.NoError(t, err)

	assert.False(t, result.UpdateAvailable)
}

func TestCheck_CurrentNewerThanRelease(t *testing.T) {
	server := releaseServer(t, `{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)

	assert.False(t, result.UpdateAvailable)
}

func TestCheck_MissingVPrefix(t *testing.T) {
	server := releaseServer(t, `{"tag_name":"2.0.0","html_url":"https://example.com/v2.0.0"}`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.0.0", result.CurrentVersion)
	assert.Equal(t, "v2.0.0", result.LatestVersion)
}

func TestCheck_DevBuild(t *testing.T) {
	checker := NewChecker()
	_, err := checker.Check(context.Background(), &CheckInput{Version: "(devel)"})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheck_HTTPError(t *testing.T) {
	server := releaseServer(t, `{"message":"rate limited"}`, http.StatusForbidden)

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 403")
}

func TestCheck_MalformedResponse(t *testing.T) {
	server := releaseServer(t, `not json`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode release response")
}

func TestCheck_InvalidReleaseTag(t *testing.T) {
	server := releaseServer(t, `{"tag_name":"nightly","html_url":""}`, http.StatusOK)

	checker := NewChecker(WithBaseURL(server.URL))
	_, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a valid version")
}
