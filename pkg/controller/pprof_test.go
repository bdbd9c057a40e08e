package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"breachcheck/pkg/controller"

	"github.com/stretchr/testify/require"
)

func servePprof(t *testing.T, path string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "http://pprof.local"+path, nil)
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, req)

	return rec.Result()
}

func TestPprofMux_Index(t *testing.T) {
	res := servePprof(t, controller.PprofPrefix)
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.NotEmpty(t, res.Header.Get("Content-Type"))
}

func TestPprofMux_Cmdline_OK(t *testing.T) {
	res := servePprof(t, controller.PprofPrefix+"cmdline")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprofMux_NamedProfile(t *testing.T) {
	res := servePprof(t, controller.PprofPrefix+"goroutine?debug=1")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestPprofMux_UnknownProfile(t *testing.T) {
	res := servePprof(t, controller.PprofPrefix+"does-not-exist")
	require.Equal(t, http.StatusNotFound, res.StatusCode)
}
