package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBodyRequest(body, contentLength string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/mortgage", strings.NewReader(body))
	if contentLength != "" {
		req.Header.Set("Content-Length", contentLength)
	}
	return req
}

func TestReadJSONObject(t *testing.T) {
	t.Run("object", func(t *testing.T) {
		obj, err := ReadJSONObject(newBodyRequest(`{"price": 1}`, ""), DefaultMaxBodyBytes)
		require.NoError(t, err)
		assert.Equal(t, 1.0, obj.Float("price", 0))
	})

	t.Run("empty body is an empty object", func(t *testing.T) {
		obj, err := ReadJSONObject(newBodyRequest("", ""), DefaultMaxBodyBytes)
		require.NoError(t, err)
		assert.NotNil(t, obj)
		assert.Empty(t, obj)
	})

	t.Run("zero content length ignores the body", func(t *testing.T) {
		obj, err := ReadJSONObject(newBodyRequest(`{"price": 1}`, "0"), DefaultMaxBodyBytes)
		require.NoError(t, err)
		assert.Empty(t, obj)
	})

	t.Run("reads only the declared length", func(t *testing.T) {
		obj, err := ReadJSONObject(newBodyRequest(`{"a": 1}trailing`, "8"), DefaultMaxBodyBytes)
		require.NoError(t, err)
		assert.Equal(t, 1, obj.Int("a", 0))
	})

	errCases := []struct {
		name          string
		body          string
		contentLength string
		want          error
	}{
		{"non-numeric content length", `{}`, "two", ErrInvalidContentLength},
		{"negative content length", `{}`, "-1", ErrInvalidContentLength},
		{"too large", `{}`, "2048", ErrBodyTooLarge},
		{"short body", `{}`, "10", ErrInvalidJSONBody},
		{"not json", `hello`, "", ErrInvalidJSONBody},
		{"array", `[1, 2]`, "", ErrInvalidJSONBody},
		{"null", `null`, "", ErrInvalidJSONBody},
		{"string", `"x"`, "", ErrInvalidJSONBody},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadJSONObject(newBodyRequest(tc.body, tc.contentLength), 1024)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
