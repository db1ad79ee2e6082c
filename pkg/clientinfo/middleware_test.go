package clientinfo_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/clientkit/pkg/clientinfo"
)

func TestMiddlewareAttachesProfile(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{sig: androidChromeSignature()}

	var captured *clientinfo.Profile
	handler := clientinfo.Middleware(
		clientinfo.WithMiddlewareProvider(provider),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = clientinfo.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("User-Agent", "android-chrome")
	r.Header.Set("Accept-Language", "en-US, de")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	require.NotNil(t, captured)
	assert.Equal(t, "android-chrome", captured.UserAgent())
	assert.Equal(t, clientinfo.PlatformAndroid, captured.Platform())
	assert.Equal(t, []string{"en-US", "de"}, captured.Languages())
}

func TestMiddlewareProfilePerRequest(t *testing.T) {
	t.Parallel()

	var profiles []*clientinfo.Profile
	handler := clientinfo.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profiles = append(profiles, clientinfo.FromContext(r.Context()))
	}))

	for range 2 {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	}

	require.Len(t, profiles, 2)
	assert.NotSame(t, profiles[0], profiles[1])
}

func TestMiddlewareLogsDetections(t *testing.T) {
	t.Parallel()

	provider := &stubProvider{sig: androidChromeSignature()}
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	handler := clientinfo.Middleware(
		clientinfo.WithMiddlewareProvider(provider),
		clientinfo.WithLogger(log),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("User-Agent", "android-chrome")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	out := buf.String()
	assert.Contains(t, out, "client classified")
	assert.Contains(t, out, "platform=android")
	assert.Contains(t, out, "browser=chrome")
}

func TestFromContextWithoutMiddleware(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest("GET", "/", nil)
	assert.Nil(t, clientinfo.FromContext(r.Context()))
}

func TestNewMiddlewareFromEnv(t *testing.T) {
	t.Setenv("CLIENTINFO_LOG_DETECTIONS", "false")

	mw, err := clientinfo.NewMiddlewareFromEnv()
	require.NoError(t, err)

	var captured *clientinfo.Profile
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = clientinfo.FromContext(r.Context())
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	require.NotNil(t, captured)
}
