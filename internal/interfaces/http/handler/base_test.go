package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mdm/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	return c, w
}

func TestHandleDomainError_NotFound(t *testing.T) {
	c, w := newTestContext()
	h := &BaseHandler{}

	h.HandleDomainError(c, shared.NewDomainError("BANK_NOT_FOUND", "Bank not found"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "BANK_NOT_FOUND")
}

func TestHandleDomainError_ConcurrencyConflict(t *testing.T) {
	c, w := newTestContext()
	h := &BaseHandler{}

	h.HandleDomainError(c, shared.ErrConcurrencyConflict)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CONCURRENCY_CONFLICT")
}

func TestHandleDomainError_BusinessRule(t *testing.T) {
	c, w := newTestContext()
	h := &BaseHandler{}

	h.HandleDomainError(c, shared.NewDomainError("CIRCULAR_REFERENCE", "Segment cannot be moved under its own descendant"))

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "CIRCULAR_REFERENCE")
}

func TestHandleDomainError_WrappedError(t *testing.T) {
	c, w := newTestContext()
	h := &BaseHandler{}

	wrapped := errors.Join(shared.NewDomainError("SEGMENT_CODE_DUPLICATE", "Segment code already exists"))
	h.HandleDomainError(c, wrapped)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleDomainError_UnknownError(t *testing.T) {
	c, w := newTestContext()
	h := &BaseHandler{}

	h.HandleDomainError(c, errors.New("connection reset"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "INTERNAL_ERROR")
	assert.NotContains(t, w.Body.String(), "connection reset")
}

func TestHandleDomainError_UnmappedCodeDefaultsTo500(t *testing.T) {
	c, w := newTestContext()
	h := &BaseHandler{}

	h.HandleDomainError(c, shared.NewDomainError("SOMETHING_ODD", "odd"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SOMETHING_ODD")
}
