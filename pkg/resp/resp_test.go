package resp_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"lucky_wheel/pkg/resp"
)

func TestWriteJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	resp.WriteJSONResponse(w, http.StatusAccepted, map[string]bool{"started": true})

	require.Equal(t, http.StatusAccepted, w.Code)
	require.Equal(t, "application/json", w.Header().Get("Content-Type"))
	require.JSONEq(t, `{"started":true}`, w.Body.String())
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()
	resp.WriteError(w, http.StatusConflict, "wheel: spin already in progress")

	require.Equal(t, http.StatusConflict, w.Code)
	require.JSONEq(t, `{"error":"wheel: spin already in progress"}`, w.Body.String())
}
