package gateway

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gw, err := New("http://localhost:8083/")
	require.NoError(t, err)
	return gw.NewRouter()
}

func serve(router http.Handler, method, target string) *httptest.ResponseRecorder {
	var body *strings.Reader
	if method == http.MethodPost || method == http.MethodPut {
		body = strings.NewReader(`{"jobId":"job-1"}`)
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNew_ValidatesTarget(t *testing.T) {
	for _, target := range []string{"", "localhost:8083", "ftp://host", "http://"} {
		_, err := New(target)
		assert.Error(t, err, target)
	}

	gw, err := New(" https://apps.internal:9000/ ")
	require.NoError(t, err)
	assert.Equal(t, "https://apps.internal:9000", gw.Target())
}

func TestRedirect_KeepsMethodPathAndQuery(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method   string
		target   string
		location string
	}{
		{http.MethodGet, "/api/applications", "http://localhost:8083/api/applications"},
		{http.MethodPost, "/api/applications", "http://localhost:8083/api/applications"},
		{http.MethodGet, "/api/applications/job/j1?sortBy=date&order=asc", "http://localhost:8083/api/applications/job/j1?sortBy=date&order=asc"},
		{http.MethodPatch, "/api/applications/a1/status/ACCEPTED", "http://localhost:8083/api/applications/a1/status/ACCEPTED"},
		{http.MethodDelete, "/api/applications/a1", "http://localhost:8083/api/applications/a1"},
		{http.MethodGet, "/api/applications/search/skill?skill=c%2B%2B", "http://localhost:8083/api/applications/search/skill?skill=c%2B%2B"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.target, func(t *testing.T) {
			w := serve(router, tc.method, tc.target)
			assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
			assert.Equal(t, tc.location, w.Header().Get("Location"))
		})
	}
}

func TestOtherPathsAreNotFound(t *testing.T) {
	router := newTestRouter(t)

	for _, target := range []string{"/api/jobs", "/api/users/u1", "/api/applicationsx", "/"} {
		w := serve(router, http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.Empty(t, w.Header().Get("Location"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "NOT_FOUND", body["error"])
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := serve(router, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "UP", body["status"])
	assert.Equal(t, "http://localhost:8083", body["target"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
