// Package repo contains all persistence logic for the booking API.
// BookingRepo is implemented twice: on Postgres for production and in memory
// for tests. No business logic lives here, only schema enforcement, SQL and
// type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/travelwave/booking/internal/domain"
)

// Constraint names from migrations/00001_create_bookings.sql.
const (
	emailUniqueConstraint = "bookings_email_key"
	phoneUniqueConstraint = "bookings_phone_key"
)

// Postgres SQLSTATE codes we translate into domain errors.
const (
	pgUniqueViolation = "23505"
	pgCheckViolation  = "23514"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BookingRepo defines the persistence operations for Bookings.
// The service layer depends on this interface, not on an implementation.
type BookingRepo interface {
	// Insert validates the candidate against the booking constraints, then
	// persists it and returns the stored record with ID and CreatedAt set.
	// Returns a *domain.ValidationError for constraint violations and
	// domain.ErrDuplicateEmail / domain.ErrDuplicatePhone when the unique
	// indexes reject the row.
	Insert(ctx context.Context, b domain.Booking) (domain.Booking, error)

	// FindByEmail returns the booking with exactly this email.
	// Returns domain.ErrNotFound if none exists.
	FindByEmail(ctx context.Context, email string) (domain.Booking, error)

	// FindByPhone returns the booking with exactly this phone.
	// Returns domain.ErrNotFound if none exists.
	FindByPhone(ctx context.Context, phone string) (domain.Booking, error)

	// ListAll returns every booking, newest first.
	ListAll(ctx context.Context) ([]domain.Booking, error)
}

// pgBookingRepo is the Postgres implementation of BookingRepo.
type pgBookingRepo struct {
	db  db
	now func() time.Time
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db, now: time.Now}
}

const bookingColumns = `id, name, email, phone, date_time, trip, special_req, created_at, seq`

// Insert validates and inserts a booking row and returns the persisted record.
func (r *pgBookingRepo) Insert(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	if err := b.Validate(r.now()); err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Insert: %w", err)
	}

	const q = `
		INSERT INTO bookings (name, email, phone, date_time, trip, special_req)
		VALUES (@name, @email, @phone, @date_time, @trip, @special_req)
		RETURNING ` + bookingColumns

	args := pgx.NamedArgs{
		"name":        b.Name,
		"email":       b.Email,
		"phone":       b.Phone,
		"date_time":   b.DateTime,
		"trip":        b.Trip,
		"special_req": b.SpecialReq,
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Insert: %w", translateError(err))
	}
	return result, nil
}

// FindByEmail looks a booking up by its unique email.
func (r *pgBookingRepo) FindByEmail(ctx context.Context, email string) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE email = @email`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.FindByEmail: %w", err)
	}
	return result, nil
}

// FindByPhone looks a booking up by its unique phone.
func (r *pgBookingRepo) FindByPhone(ctx context.Context, phone string) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE phone = @phone`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"phone": phone}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.FindByPhone: %w", err)
	}
	return result, nil
}

// ListAll returns all bookings ordered by created_at descending.
// seq breaks ties so that the later insert comes first.
func (r *pgBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings ORDER BY created_at DESC, seq DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListAll: %w", err)
	}
	defer rows.Close()

	bookings := []domain.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BookingRepo.ListAll: scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListAll: rows: %w", err)
	}
	return bookings, nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanBooking maps a single row selected with bookingColumns into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var (
		b  domain.Booking
		id pgtype.UUID
	)

	err := s.Scan(&id, &b.Name, &b.Email, &b.Phone, &b.DateTime, &b.Trip, &b.SpecialReq, &b.CreatedAt, &b.Seq)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	b.ID = uuid.UUID(id.Bytes)
	return b, nil
}

// translateError maps constraint violations raised by Postgres onto domain
// errors. The unique indexes are what make concurrent duplicate submissions
// fail atomically; anything unrecognised is returned unchanged.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case emailUniqueConstraint:
			return domain.ErrDuplicateEmail
		case phoneUniqueConstraint:
			return domain.ErrDuplicatePhone
		}
	case pgCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrValidation, pgErr.ConstraintName)
	}
	return err
}
