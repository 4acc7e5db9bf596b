package supplier

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository репозиторий таблицы учетных данных поставщиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория поставщиков
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает поставщика по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Supplier, error) {
	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"email",
		"password_hash",
		"created_at",
	).
		From("suppliers").
		Where(squirrel.Eq{"email": email}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Supplier
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.PasswordHash,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSupplierNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan supplier: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	return &s, nil
}
