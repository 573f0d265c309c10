package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthcheck(t *testing.T) {
	h := newTestHandler()
	h.config.Server.Env = "testing"

	r := httptest.NewRequest(http.MethodGet, "/v1/healthcheck", nil)
	w := httptest.NewRecorder()
	h.healthcheckHandler(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Status     string `json:"status"`
		SystemInfo struct {
			Environment string `json:"environment"`
		} `json:"system_info"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "available", body.Status)
	assert.Equal(t, "testing", body.SystemInfo.Environment)
}
