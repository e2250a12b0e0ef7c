package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/drufus/serenity/internal/domain"
	"github.com/drufus/serenity/pkg/dbmetrics"
	"github.com/drufus/serenity/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"confirmation_code",
	"guest_name",
	"guest_email",
	"guest_phone",
	"check_in",
	"check_out",
	"num_guests",
	"num_nights",
	"subtotal",
	"cleaning_fee",
	"addon_total",
	"tax_amount",
	"discount_amount",
	"total_amount",
	"special_requests",
	"status",
	"payment_intent_id",
	"agreement_signed",
	"agreement_signed_at",
	"created_at",
	"updated_at",
}

// Repository persists bookings and their add-on line items
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking row. If the context carries an active
// transaction the insert joins it; the booking write path always runs inside
// one so that the add-on and blocked-date inserts commit or roll back with it.
//
// A unique-index collision on confirmation_code is reported as
// ErrDuplicateConfirmationCode so the caller can retry with a fresh code.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"confirmation_code",
			"guest_name",
			"guest_email",
			"guest_phone",
			"check_in",
			"check_out",
			"num_guests",
			"num_nights",
			"subtotal",
			"cleaning_fee",
			"addon_total",
			"tax_amount",
			"discount_amount",
			"total_amount",
			"special_requests",
			"status",
			"payment_intent_id",
		).
		Values(
			b.ConfirmationCode,
			b.GuestName,
			b.GuestEmail,
			b.GuestPhone,
			b.CheckIn,
			b.CheckOut,
			b.NumGuests,
			b.NumNights,
			b.Subtotal,
			b.CleaningFee,
			b.AddonTotal,
			b.TaxAmount,
			b.DiscountAmount,
			b.TotalAmount,
			b.SpecialRequests,
			b.Status,
			b.PaymentIntentID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation && pqErr.Constraint == "bookings_confirmation_code_key" {
			return nil, ErrDuplicateConfirmationCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// CreateAddons inserts the add-on line items for a booking in one statement.
// Must run inside the booking transaction.
func (r *Repository) CreateAddons(ctx context.Context, addons []domain.BookingAddon) error {
	if len(addons) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("booking_addons").
		Columns("booking_id", "addon_id", "quantity", "price")
	for _, a := range addons {
		insert = insert.Values(a.BookingID, a.AddonID, a.Quantity, a.Price)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateAddons - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateAddons - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByConfirmationCode fetches a booking by its human-readable code
func (r *Repository) GetByConfirmationCode(ctx context.Context, code string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"confirmation_code": code}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByConfirmationCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBooking(executor.QueryRowContext(ctx, query, args...), "GetByConfirmationCode")
}

// GetAddonsByBookingID fetches the add-on line items of a booking
func (r *Repository) GetAddonsByBookingID(ctx context.Context, bookingID int64) ([]domain.BookingAddon, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "addon_id", "quantity", "price").
		From("booking_addons").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAddonsByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAddonsByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	addons := make([]domain.BookingAddon, 0)
	for rows.Next() {
		var a domain.BookingAddon
		if err := rows.Scan(&a.ID, &a.BookingID, &a.AddonID, &a.Quantity, &a.Price); err != nil {
			return nil, fmt.Errorf("%w: GetAddonsByBookingID - scan row: %v", ErrScanRow, err)
		}
		addons = append(addons, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAddonsByBookingID - rows error: %v", ErrScanRow, err)
	}

	return addons, nil
}

// UpdateStatus transitions a booking to the given lifecycle status
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
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
		return ErrBookingNotFound
	}

	return nil
}

// UpdateAgreement records the rental-agreement signature
func (r *Repository) UpdateAgreement(ctx context.Context, id int64, signed bool, signedAt time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("agreement_signed", signed).
		Set("agreement_signed_at", signedAt).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateAgreement - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateAgreement - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateAgreement - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBooking scans a single booking row
func (r *Repository) scanBooking(row *sql.Row, method string) (*domain.Booking, error) {
	var b domain.Booking
	var createdAt, updatedAt, agreementSignedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&b.ConfirmationCode,
		&b.GuestName,
		&b.GuestEmail,
		&b.GuestPhone,
		&b.CheckIn,
		&b.CheckOut,
		&b.NumGuests,
		&b.NumNights,
		&b.Subtotal,
		&b.CleaningFee,
		&b.AddonTotal,
		&b.TaxAmount,
		&b.DiscountAmount,
		&b.TotalAmount,
		&b.SpecialRequests,
		&b.Status,
		&b.PaymentIntentID,
		&b.AgreementSigned,
		&agreementSignedAt,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	if agreementSignedAt.Valid {
		b.AgreementSignedAt = &agreementSignedAt.Time
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}
