package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	supplierRepo "github.com/m04kA/SMC-DeliveryBooking/internal/infra/storage/supplier"
)

// TokenResponse результат успешного входа
type TokenResponse struct {
	Token         string    // подписанный JWT
	ExpiresAt     time.Time // срок действия токена
	SupplierID    int64
	SupplierName  string
	SupplierEmail string
}

// Service сервис аутентификации поставщиков по таблице учетных данных
type Service struct {
	suppliers SupplierRepository
	secret    []byte
	tokenTTL  time.Duration
	logger    Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(suppliers SupplierRepository, secret string, tokenTTL time.Duration, logger Logger) *Service {
	return &Service{
		suppliers: suppliers,
		secret:    []byte(secret),
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login проверяет учетные данные и выдает JWT.
// Хеш пароля сверяется через bcrypt; в ответе об ошибке причина не уточняется.
func (s *Service) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}

	supplier, err := s.suppliers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, supplierRepo.ErrSupplierNotFound) {
			s.logger.Warn("Login: unknown supplier email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(supplier.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for supplier id=%d", supplier.ID)
		return nil, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"supplier_id": supplier.ID,
		"name":        supplier.Name,
		"email":       supplier.Email,
		"exp":         expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("Login: failed to sign token for supplier id=%d: %v", supplier.ID, err)
		return nil, fmt.Errorf("%w: failed to sign token: %v", ErrInternal, err)
	}

	s.logger.Info("Login: supplier id=%d authenticated", supplier.ID)

	return &TokenResponse{
		Token:         token,
		ExpiresAt:     expiresAt,
		SupplierID:    supplier.ID,
		SupplierName:  supplier.Name,
		SupplierEmail: supplier.Email,
	}, nil
}

// HashPassword хеширует пароль для записи в таблицу поставщиков
// (используется инструментами заведения учетных записей)
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: failed to hash password: %v", ErrInternal, err)
	}
	return string(bytes), nil
}
