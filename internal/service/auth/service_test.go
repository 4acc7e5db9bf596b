package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	supplierRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/supplier"
)

const testSecret = "test-secret"

type fakeSupplierRepo struct {
	supplier *domain.Supplier
	err      error
}

func (f *fakeSupplierRepo) GetByEmail(_ context.Context, _ string) (*domain.Supplier, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.supplier, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testSupplier(t *testing.T, password string) *domain.Supplier {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Supplier{
		ID:           42,
		Name:         "Acme Foods",
		Email:        "acme@example.com",
		PasswordHash: string(hash),
	}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeSupplierRepo{supplier: testSupplier(t, "s3cret")}
	svc := NewService(repo, testSecret, 24*time.Hour, nopLogger{})

	resp, err := svc.Login(context.Background(), "acme@example.com", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.SupplierID)
	assert.Equal(t, "Acme Foods", resp.SupplierName)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// токен должен разбираться тем же секретом и нести claims поставщика
	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["supplier_id"])
	assert.Equal(t, "acme@example.com", claims["email"])
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := &fakeSupplierRepo{supplier: testSupplier(t, "s3cret")}
	svc := NewService(repo, testSecret, 24*time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), "acme@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownSupplier(t *testing.T) {
	repo := &fakeSupplierRepo{err: supplierRepo.ErrSupplierNotFound}
	svc := NewService(repo, testSecret, 24*time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepositoryFailure(t *testing.T) {
	repo := &fakeSupplierRepo{err: errors.New("db down")}
	svc := NewService(repo, testSecret, 24*time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), "acme@example.com", "s3cret")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestLogin_EmptyInput(t *testing.T) {
	svc := NewService(&fakeSupplierRepo{}, testSecret, 24*time.Hour, nopLogger{})

	_, err := svc.Login(context.Background(), "", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Login(context.Background(), "acme@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))
}
