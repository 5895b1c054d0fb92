package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPStatusFromCode(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ErrValidation.HTTPStatus())
	assert.Equal(t, http.StatusBadRequest, ErrNotConfigured.HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ErrNotFound.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ErrAggregation.HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, newError(12, "odd", "odd").HTTPStatus())
}

func TestWithOriginKeepsChain(t *testing.T) {
	cause := errors.New("disk full")
	e := ErrDatabase.WithOrigin(cause)

	assert.ErrorIs(t, e, cause)
	assert.ErrorIs(t, e, ErrDatabase)
	assert.NotNil(t, e.StackTrace())
	assert.Contains(t, e.Origin, "disk full")
	assert.Empty(t, ErrDatabase.Origin, "sentinel must stay untouched")
}

func TestWithTips(t *testing.T) {
	e := ErrNotFound.WithTips("segment")
	assert.Equal(t, "资源不存在 [segment]", e.Message)
	assert.Equal(t, "资源不存在", ErrNotFound.Message)
}

func TestBindError(t *testing.T) {
	type req struct {
		Name string `validate:"required"`
	}
	verr := validator.New().Struct(req{})
	require.Error(t, verr)
	assert.ErrorIs(t, BindError(verr), ErrValidation)
	assert.ErrorIs(t, BindError(errors.New("unexpected EOF")), ErrInvalidRequest)
}

func TestFailRendersEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, ErrNotConfigured)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ResponseBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int32(40002), body.Code)
	assert.Equal(t, "not_configured", body.Kind)

	stored, ok := c.Get(ErrorContextKey)
	require.True(t, ok)
	assert.Equal(t, ErrNotConfigured, stored)
}

func TestFailWrapsPlainError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Fail(c, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
