//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ExpectJSON asserts the status code and decodes the body into a T.
func ExpectJSON[T any](t *testing.T, rec *httptest.ResponseRecorder, status int) T {
	t.Helper()

	var out T
	require.Equal(t, status, rec.Code, "body: %s", rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "decode body: %s", rec.Body.String())
	return out
}

// ExpectCreated asserts a 201 whose Location header starts with prefix.
// It returns the decoded body and the remainder of the Location header.
func ExpectCreated[T any](t *testing.T, rec *httptest.ResponseRecorder, prefix string) (T, string) {
	t.Helper()

	out := ExpectJSON[T](t, rec, http.StatusCreated)
	location := rec.Header().Get("Location")
	require.True(t, strings.HasPrefix(location, prefix), "Location %q lacks prefix %q", location, prefix)
	return out, strings.TrimPrefix(location, prefix)
}

// ExpectError asserts the status code and the error envelope. An empty msg
// only checks that the envelope is present.
func ExpectError(t *testing.T, rec *httptest.ResponseRecorder, status int, msg string) {
	t.Helper()

	assert.Equal(t, status, rec.Code, "body: %s", rec.Body.String())

	var body errorBody
	if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), "decode error body: %s", rec.Body.String()) {
		return
	}
	if msg != "" {
		assert.Contains(t, body.Error.Message, msg)
	}
}
