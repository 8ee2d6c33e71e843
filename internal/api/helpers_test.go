package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/internal/api"
	"github.com/katalvlaran/lvroute/internal/config"
	"github.com/katalvlaran/lvroute/internal/network"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.ErrorLevel)

	return l
}

// newTestRouter serves the default network plus an unreachable "Ilha".
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	nf := config.DefaultNetwork()
	nf.Nodes = append(nf.Nodes, network.NodeSpec{ID: "Ilha"})
	n, err := nf.Build()
	require.NoError(t, err)

	return api.NewRouter(&api.RouterDeps{
		Log:         testLogger(),
		Network:     n,
		Version:     "test",
		DefaultFrom: config.DefaultFrom,
		DefaultTo:   config.DefaultTo,
	})
}

func newGet(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, http.NoBody)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

// doRequest performs a GET against the router and returns the recorder.
func doRequest(h http.Handler, path string) *httptest.ResponseRecorder {
	return serve(h, newGet(path))
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), "body: %s", w.Body.String())
}
