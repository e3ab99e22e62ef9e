package release

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAvailable(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer patch", "v1.0.0", "v1.0.1", true},
		{"newer minor", "v1.0.0", "v1.1.0", true},
		{"same version", "v1.0.0", "v1.0.0", false},
		{"older latest", "v1.2.0", "v1.1.9", false},
		{"missing v prefix", "1.0.0", "v1.1.0", true},
		{"dev build", "(devel)", "v9.9.9", false},
		{"empty current", "", "v1.0.0", false},
		{"garbage latest", "v1.0.0", "not-a-version", false},
		{"prerelease ordered before release", "v1.0.0-rc.1", "v1.0.0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, updateAvailable(tt.current, tt.latest))
		})
	}
}

func TestCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/cubeai/bubix/releases/latest", r.URL.Path)
		_, _ = w.Write([]byte(`{"tag_name":"v1.4.0","html_url":"https://example.com/v1.4.0"}`))
	}))
	defer server.Close()

	checker := NewChecker(WithBaseURL(server.URL))
	result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.3.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.4.0", result.LatestVersion)
	assert.Equal(t, "https://example.com/v1.4.0", result.ReleaseURL)
}

func TestCheckServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := NewChecker(WithBaseURL(server.URL)).Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
