package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, err error) (int, Response) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, HTTPError(c, err))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  ErrorInfo
	}{
		{
			name:     "not found",
			err:      echo.ErrNotFound,
			wantCode: http.StatusNotFound,
			wantErr:  ErrorInfo{Code: "NOT_FOUND", Message: "Not Found"},
		},
		{
			name:     "method not allowed",
			err:      echo.ErrMethodNotAllowed,
			wantCode: http.StatusMethodNotAllowed,
			wantErr:  ErrorInfo{Code: "METHOD_NOT_ALLOWED", Message: "Method Not Allowed"},
		},
		{
			name:     "custom message",
			err:      echo.NewHTTPError(http.StatusTooManyRequests, "slow down"),
			wantCode: http.StatusTooManyRequests,
			wantErr:  ErrorInfo{Code: "TOO_MANY_REQUESTS", Message: "slow down"},
		},
		{
			name:     "plain error is hidden",
			err:      errors.New("secret detail"),
			wantCode: http.StatusInternalServerError,
			wantErr:  ErrorInfo{Code: "INTERNAL_ERROR", Message: "Internal Server Error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := render(t, tt.err)

			assert.Equal(t, tt.wantCode, code)
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErr, *body.Error)
		})
	}
}
