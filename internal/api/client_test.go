package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"furever-pals/internal/platform/httpclient"
	"furever-pals/internal/platform/logger"
	"furever-pals/internal/session"
)

// newTestClient levanta un backend falso y un Client apuntándole.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	gw, err := httpclient.NewWithBaseURL(ts.URL, 2*time.Second)
	if err != nil {
		t.Fatalf("new gateway: %v", err)
	}

	sess := session.New()
	return New(gw, sess, quietLogger()), sess
}

// newOfflineClient falla el test si algún request llega a la red.
// Sirve para probar que la validación local corta antes del gateway.
func newOfflineClient(t *testing.T) (*Client, *session.Session) {
	t.Helper()

	gw := httpclient.NewWithTransport(time.Second, roundTripFunc(func(r *http.Request) (*http.Response, error) {
		t.Errorf("unexpected HTTP request: %s %s", r.Method, r.URL.Path)
		return nil, http.ErrAbortHandler
	}))
	gw.BaseURL = "http://furever.test"

	sess := session.New()
	return New(gw, sess, quietLogger()), sess
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func quietLogger() logger.Logger {
	return logger.New(logger.Options{Level: logger.Error})
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
