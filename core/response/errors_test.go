package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/qrkit/core/response"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	err := response.ErrUnprocessableEntity.WithMessage("content too long")

	assert.Equal(t, "content too long", err.Error())
	assert.Equal(t, http.StatusUnprocessableEntity, err.StatusCode())
	assert.Equal(t, "unprocessable_entity", err.ErrorCode())
	assert.Equal(t, http.StatusText(http.StatusUnprocessableEntity), response.ErrUnprocessableEntity.Message)

	var target response.HTTPError
	require.ErrorAs(t, error(err), &target)
	assert.Equal(t, "unprocessable_entity", target.Code)
}

func TestHTTPError_WithError(t *testing.T) {
	t.Parallel()

	base := response.ErrBadRequest.WithDetails(map[string]any{"field": "size"})
	err := base.WithError(errors.New("invalid size"))

	assert.Equal(t, "invalid size", err.Details["cause"])
	assert.Equal(t, "size", err.Details["field"])
	assert.NotContains(t, base.Details, "cause")

	data, jerr := json.Marshal(err)
	require.NoError(t, jerr)
	assert.JSONEq(t, `{"code":"bad_request","message":"Bad Request","details":{"field":"size","cause":"invalid size"}}`, string(data))
}

func TestNewHTTPError(t *testing.T) {
	t.Parallel()

	err := response.NewHTTPError("storage failed")

	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
	assert.Equal(t, "internal_server_error", err.Code)
	assert.Equal(t, "storage failed", err.Message)
}
