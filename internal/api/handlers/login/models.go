package login

import (
	"time"

	authService "github.com/m04kA/SMC-DeliveryBooking/internal/service/auth"
)

// LoginRequest HTTP request model
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expiresAt"` // ISO 8601
	Supplier  Supplier `json:"supplier"`
}

// Supplier данные авторизованного поставщика
type Supplier struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *authService.TokenResponse) *LoginResponse {
	return &LoginResponse{
		Token:     resp.Token,
		ExpiresAt: resp.ExpiresAt.Format(time.RFC3339),
		Supplier: Supplier{
			ID:    resp.SupplierID,
			Name:  resp.SupplierName,
			Email: resp.SupplierEmail,
		},
	}
}
