package login

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authService "github.com/m04kA/SMC-DeliveryBooking/internal/service/auth"
)

type fakeAuthService struct {
	resp *authService.TokenResponse
	err  error
}

func (f *fakeAuthService) Login(_ context.Context, _, _ string) (*authService.TokenResponse, error) {
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doLogin(t *testing.T, svc AuthService, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &fakeAuthService{resp: &authService.TokenResponse{
		Token:         "signed-token",
		ExpiresAt:     time.Date(2025, 10, 14, 12, 0, 0, 0, time.UTC),
		SupplierID:    42,
		SupplierName:  "Acme Foods",
		SupplierEmail: "acme@example.com",
	}}

	rec := doLogin(t, svc, `{"email":"acme@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, int64(42), resp.Supplier.ID)
	assert.Equal(t, "2025-10-14T12:00:00Z", resp.ExpiresAt)
}

func TestHandle_InvalidCredentials(t *testing.T) {
	svc := &fakeAuthService{err: authService.ErrInvalidCredentials}

	rec := doLogin(t, svc, `{"email":"acme@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_MissingCredentials(t *testing.T) {
	svc := &fakeAuthService{err: authService.ErrInvalidInput}

	rec := doLogin(t, svc, `{"email":"","password":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doLogin(t, &fakeAuthService{}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceFailure(t *testing.T) {
	svc := &fakeAuthService{err: errors.New("db down")}

	rec := doLogin(t, svc, `{"email":"acme@example.com","password":"s3cret"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
