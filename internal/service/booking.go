// Package service contains the business logic for the booking API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/travelwave/booking/internal/cache"
	"github.com/travelwave/booking/internal/domain"
	"github.com/travelwave/booking/internal/repo"
)

// ContactLocker serialises concurrent submissions that share an email or
// phone. *cache.RedisCache implements it.
type ContactLocker interface {
	AcquireContactLock(ctx context.Context, kind, value string) (token string, ok bool, err error)
	ReleaseContactLock(ctx context.Context, kind, value, token string) error
}

// BookingCache holds a copy of the full booking list. Every invalidation
// bumps a list version; SetBookings must refuse to write when the version
// moved since the matching GetBookings. *cache.RedisCache implements it.
type BookingCache interface {
	GetBookings(ctx context.Context) (bookings []domain.Booking, version int64, hit bool, err error)
	SetBookings(ctx context.Context, version int64, bookings []domain.Booking) (bool, error)
	InvalidateBookings(ctx context.Context) error
}

// BookingService implements the submission and listing rules for bookings.
type BookingService struct {
	repo   repo.BookingRepo
	locker ContactLocker
	cache  BookingCache
	loc    *time.Location
	logger *slog.Logger
	now    func() time.Time
}

// BookingServiceOption configures optional collaborators of BookingService.
type BookingServiceOption func(*BookingService)

// WithContactLocker enables the per-contact lock taken around each submission.
func WithContactLocker(l ContactLocker) BookingServiceOption {
	return func(s *BookingService) { s.locker = l }
}

// WithBookingCache enables caching of ListBookings results.
func WithBookingCache(c BookingCache) BookingServiceOption {
	return func(s *BookingService) { s.cache = c }
}

// WithLocation sets the zone used for dateTime values without an offset.
func WithLocation(loc *time.Location) BookingServiceOption {
	return func(s *BookingService) { s.loc = loc }
}

// WithLogger replaces the default slog logger.
func WithLogger(l *slog.Logger) BookingServiceOption {
	return func(s *BookingService) { s.logger = l }
}

// NewBookingService constructs a BookingService backed by the provided BookingRepo.
func NewBookingService(r repo.BookingRepo, opts ...BookingServiceOption) *BookingService {
	s := &BookingService{
		repo:   r,
		loc:    time.UTC,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SubmitBooking validates a submission, rejects duplicate contacts and
// persists the booking.
//
// Returns an error wrapping domain.ErrMissingField when a required field is
// blank, a *domain.ValidationError for malformed fields or a past dateTime,
// and domain.ErrDuplicateEmail / domain.ErrDuplicatePhone when the contact is
// already booked. Email is checked before phone.
func (s *BookingService) SubmitBooking(ctx context.Context, req domain.BookingRequest) (domain.Booking, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return domain.Booking{}, fmt.Errorf("%w: %s", domain.ErrMissingField, strings.Join(missing, ", "))
	}

	candidate, err := domain.NewBooking(req, s.loc)
	if err != nil {
		return domain.Booking{}, err
	}
	if err := candidate.Validate(s.now()); err != nil {
		return domain.Booking{}, err
	}

	if s.locker != nil {
		release, err := s.lockContacts(ctx, candidate.Email, candidate.Phone)
		switch {
		case errors.Is(err, errLockUnavailable):
			// The unique indexes still reject duplicates; carry on unlocked.
			s.logger.WarnContext(ctx, "contact lock unavailable, continuing without it", "error", err)
		case err != nil:
			return domain.Booking{}, err
		default:
			defer release()
		}
	}

	if err := s.ensureFree(ctx, candidate); err != nil {
		return domain.Booking{}, err
	}

	created, err := s.repo.Insert(ctx, candidate)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.SubmitBooking: %w", err)
	}

	if s.cache != nil {
		// The booking is committed; drop the list even if the caller went away.
		if err := s.cache.InvalidateBookings(context.WithoutCancel(ctx)); err != nil {
			s.logger.WarnContext(ctx, "booking list cache invalidation failed", "error", err)
		}
	}

	s.logger.InfoContext(ctx, "booking created",
		"booking_id", created.ID.String(),
		"trip", created.Trip,
		"date_time", created.DateTime,
	)
	return created, nil
}

// ensureFree fails when a stored booking already uses the email or phone.
func (s *BookingService) ensureFree(ctx context.Context, b domain.Booking) error {
	if _, err := s.repo.FindByEmail(ctx, b.Email); err == nil {
		return domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.BookingService.SubmitBooking: %w", err)
	}

	if _, err := s.repo.FindByPhone(ctx, b.Phone); err == nil {
		return domain.ErrDuplicatePhone
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("service.BookingService.SubmitBooking: %w", err)
	}
	return nil
}

// errLockUnavailable marks a locker failure, as opposed to a lock held by
// another submission.
var errLockUnavailable = errors.New("contact lock unavailable")

// lockContacts claims the email lock then the phone lock. The returned func
// releases whatever was claimed. A lock held elsewhere is reported as the
// matching duplicate error; a locker failure wraps errLockUnavailable.
func (s *BookingService) lockContacts(ctx context.Context, email, phone string) (func(), error) {
	type held struct{ kind, value, token string }
	var claimed []held

	release := func() {
		// Release even if the request context is already cancelled.
		rctx := context.WithoutCancel(ctx)
		for _, h := range claimed {
			if err := s.locker.ReleaseContactLock(rctx, h.kind, h.value, h.token); err != nil {
				s.logger.WarnContext(ctx, "contact lock release failed", "kind", h.kind, "error", err)
			}
		}
	}

	claims := []struct {
		kind, value string
		busy        error
	}{
		{cache.ContactEmail, email, domain.ErrDuplicateEmail},
		{cache.ContactPhone, phone, domain.ErrDuplicatePhone},
	}
	for _, c := range claims {
		token, ok, err := s.locker.AcquireContactLock(ctx, c.kind, c.value)
		if err != nil {
			release()
			return nil, fmt.Errorf("%w: %w", errLockUnavailable, err)
		}
		if !ok {
			release()
			return nil, c.busy
		}
		claimed = append(claimed, held{c.kind, c.value, token})
	}
	return release, nil
}

// ListBookings returns every booking, newest first. Always returns a non-nil
// slice so callers can safely range over it. Cache failures fall back to the
// store.
func (s *BookingService) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	var (
		version   int64
		cacheable bool
	)
	if s.cache != nil {
		cached, v, hit, err := s.cache.GetBookings(ctx)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "booking list cache read failed", "error", err)
		case hit:
			if cached == nil {
				cached = []domain.Booking{}
			}
			return cached, nil
		default:
			version, cacheable = v, true
		}
	}

	bookings, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.BookingService.ListBookings: %w", err)
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	if cacheable {
		stored, err := s.cache.SetBookings(ctx, version, bookings)
		switch {
		case err != nil:
			s.logger.WarnContext(ctx, "booking list cache write failed", "error", err)
		case !stored:
			s.logger.DebugContext(ctx, "booking list changed during read, not cached")
		}
	}
	return bookings, nil
}
