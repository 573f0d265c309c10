package clients

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	client := (*http.Client)(NewHTTPClient())

	require.NotNil(t, client.Transport)
	assert.NotZero(t, client.Timeout)
}

func TestRedirectPolicy(t *testing.T) {
	req, err := http.NewRequest(http.MethodGet, "https://directory.example.com/estados", nil)
	require.NoError(t, err)

	assert.NoError(t, redirectPolicyFunc(req, []*http.Request{req}))
	assert.Error(t, redirectPolicyFunc(req, []*http.Request{req, req}))
}
