package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-DeliveryBooking/internal/api/handlers"
)

const msgUnauthorized = "требуется авторизация"

type contextKey string

const supplierContextKey contextKey = "supplier"

// SupplierClaims данные поставщика, извлеченные из JWT
type SupplierClaims struct {
	SupplierID int64
	Name       string
	Email      string
}

// NewAuth возвращает middleware, проверяющий Bearer токен и кладущий
// данные поставщика в контекст запроса
func NewAuth(secret string) mux.MiddlewareFunc {
	key := []byte(secret)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			token, err := jwt.Parse(
				strings.TrimPrefix(header, "Bearer "),
				func(t *jwt.Token) (interface{}, error) {
					if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
						return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
					}
					return key, nil
				},
			)
			if err != nil || !token.Valid {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			supplierID, ok := claims["supplier_id"].(float64)
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			supplier := &SupplierClaims{SupplierID: int64(supplierID)}
			if name, ok := claims["name"].(string); ok {
				supplier.Name = name
			}
			if email, ok := claims["email"].(string); ok {
				supplier.Email = email
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSupplier(r.Context(), supplier)))
		})
	}
}

// ContextWithSupplier кладет данные поставщика в контекст
func ContextWithSupplier(ctx context.Context, supplier *SupplierClaims) context.Context {
	return context.WithValue(ctx, supplierContextKey, supplier)
}

// SupplierFromContext извлекает данные поставщика, положенные NewAuth
func SupplierFromContext(ctx context.Context) (*SupplierClaims, bool) {
	supplier, ok := ctx.Value(supplierContextKey).(*SupplierClaims)
	return supplier, ok
}
