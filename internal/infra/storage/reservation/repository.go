package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-DeliveryBooking/internal/domain"
	"github.com/m04kA/SMC-DeliveryBooking/pkg/psqlbuilder"
)

const reservationColumns = "id, code, date, occupied_time, supplier_id, supplier_name, supplier_email, units, order_refs, created_at"

// Repository репозиторий бронирований поверх общей таблицы-списка.
// Колонки date и occupied_time текстовые: таблица зеркалирует внешний
// список поставок, куда пишут и другие инструменты, поэтому формат
// значений не гарантирован и интерпретируется на уровне domain.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет подтвержденное бронирование в список
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"code",
			"date",
			"occupied_time",
			"supplier_id",
			"supplier_name",
			"supplier_email",
			"units",
			"order_refs",
		).
		Values(
			res.Code,
			res.Date,
			res.OccupiedTime,
			res.SupplierID,
			res.SupplierName,
			res.SupplierEmail,
			res.Units,
			res.OrderRefs,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// GetByDate получает все бронирования на календарный день.
// Дата в хранилище может быть как "YYYY-MM-DD", так и "YYYY-MM-DD 00:00:00",
// поэтому выборка идет по префиксу даты.
func (r *Repository) GetByDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns).
		From("reservations").
		Where(squirrel.Like{"date": date.Format(domain.DateFormat) + "%"}).
		OrderBy("occupied_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryReservations(ctx, query, args, "GetByDate")
}

// GetBySupplier получает все бронирования поставщика, новые первыми
func (r *Repository) GetBySupplier(ctx context.Context, supplierID int64) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns).
		From("reservations").
		Where(squirrel.Eq{"supplier_id": supplierID}).
		OrderBy("date DESC, occupied_time DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySupplier - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryReservations(ctx, query, args, "GetBySupplier")
}

// GetByCode получает бронирование по публичному коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservationColumns).
		From("reservations").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt sql.NullTime

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.Code,
		&res.Date,
		&res.OccupiedTime,
		&res.SupplierID,
		&res.SupplierName,
		&res.SupplierEmail,
		&res.Units,
		&res.OrderRefs,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	return &res, nil
}

// DeleteByCode удаляет бронирование из списка (отмена поставщиком)
func (r *Repository) DeleteByCode(ctx context.Context, code string) error {
	query, args, err := psqlbuilder.Delete("reservations").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteByCode - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByCode - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByCode - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func (r *Repository) queryReservations(ctx context.Context, query string, args []interface{}, op string) ([]*domain.Reservation, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		var res domain.Reservation
		var createdAt sql.NullTime

		if err := rows.Scan(
			&res.ID,
			&res.Code,
			&res.Date,
			&res.OccupiedTime,
			&res.SupplierID,
			&res.SupplierName,
			&res.SupplierEmail,
			&res.Units,
			&res.OrderRefs,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan reservation: %v", ErrScanRow, op, err)
		}

		res.CreatedAt = createdAt.Time
		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - iterate rows: %v", ErrExecQuery, op, err)
	}

	return reservations, nil
}
