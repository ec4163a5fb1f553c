package appointment

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Darioantonio20/BarberPlatform/internal/domain"
	"github.com/Darioantonio20/BarberPlatform/pkg/dbmetrics"
	"github.com/Darioantonio20/BarberPlatform/pkg/psqlbuilder"
)

var selectColumns = []string{
	"id",
	"session_id",
	"barbershop_id",
	"barber_id",
	"service_id",
	"appointment_date",
	"start_time",
	"duration_minutes",
	"status",
	"client_name",
	"client_email",
	"client_phone",
	"notes",
	"items",
	"payment_method",
	"total",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository persists appointments in Postgres.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository over db.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts the appointment and fills its generated fields. When the
// context carries an active transaction (see pkg/dbmetrics) it is used, which
// is how the create use case pairs the slot check and the insert.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	items, err := json.Marshal(appt.Items)
	if err != nil {
		return nil, fmt.Errorf("%w: Create: %v", ErrEncodeItems, err)
	}

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"session_id",
			"barbershop_id",
			"barber_id",
			"service_id",
			"appointment_date",
			"start_time",
			"duration_minutes",
			"status",
			"client_name",
			"client_email",
			"client_phone",
			"notes",
			"items",
			"payment_method",
			"total",
		).
		Values(
			appt.SessionID,
			appt.BarbershopID,
			appt.BarberID,
			appt.ServiceID,
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.Status,
			appt.ClientName,
			appt.ClientEmail,
			appt.ClientPhone,
			appt.Notes,
			items,
			appt.PaymentMethod,
			appt.Total,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID returns the appointment with the given id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	appt, err := scanAppointment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter lists appointments matching the filter.
// The admin table uses it with status / date-range filters; the slot
// availability path uses it with (barbershop, barber, single date) and only
// active statuses. Inside a transaction with a single-date filter the rows
// are locked FOR UPDATE so a concurrent create cannot double-book the slot.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(selectColumns...).
		From("appointments")

	if filter.BarbershopID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barbershop_id": *filter.BarbershopID})
	}
	if filter.BarberID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barber_id": *filter.BarberID})
	}
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"appointment_date": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	singleDate := filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate)
	if singleDate {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	if dbmetrics.IsInTransaction(ctx) && singleDate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus moves the appointment to the given status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Cancel marks the appointment cancelled with a reason.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// CompletedRevenue sums the totals of completed appointments, optionally
// scoped to one barbershop. Backs the admin revenue card.
func (r *Repository) CompletedRevenue(ctx context.Context, barbershopID *string) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("COALESCE(SUM(total), 0)").
		From("appointments").
		Where(squirrel.Eq{"status": domain.StatusCompleted})

	if barbershopID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"barbershop_id": *barbershopID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletedRevenue - build select query: %v", ErrBuildQuery, err)
	}

	var revenue int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("%w: CompletedRevenue - scan: %v", ErrScanRow, err)
	}

	return revenue, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		appt, err := scanAppointment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

func scanAppointment(scan func(dest ...interface{}) error) (*domain.Appointment, error) {
	var appt domain.Appointment
	var items []byte
	var createdAt, updatedAt sql.NullTime

	err := scan(
		&appt.ID,
		&appt.SessionID,
		&appt.BarbershopID,
		&appt.BarberID,
		&appt.ServiceID,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.Status,
		&appt.ClientName,
		&appt.ClientEmail,
		&appt.ClientPhone,
		&appt.Notes,
		&items,
		&appt.PaymentMethod,
		&appt.Total,
		&appt.CancellationReason,
		&appt.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &appt.Items); err != nil {
			return nil, fmt.Errorf("decode items snapshot: %v", err)
		}
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}
