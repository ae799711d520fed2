package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/travelwave/booking/internal/domain"
)

// memBookingRepo is an in-memory BookingRepo. The mutex makes the
// uniqueness check and the append a single atomic step, so it behaves like
// the unique indexes of the Postgres schema under concurrent inserts.
type memBookingRepo struct {
	mu       sync.Mutex
	bookings []domain.Booking
	seq      int64
	last     time.Time
	now      func() time.Time
}

// NewMemoryBookingRepo returns an empty in-memory BookingRepo.
func NewMemoryBookingRepo() BookingRepo {
	return &memBookingRepo{now: time.Now}
}

func (r *memBookingRepo) Insert(_ context.Context, b domain.Booking) (domain.Booking, error) {
	if err := b.Validate(r.now()); err != nil {
		return domain.Booking{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.bookings {
		if existing.Email == b.Email {
			return domain.Booking{}, domain.ErrDuplicateEmail
		}
		if existing.Phone == b.Phone {
			return domain.Booking{}, domain.ErrDuplicatePhone
		}
	}

	// Stamped under the lock and never earlier than the previous insert,
	// so createdAt order agrees with Seq.
	now := r.now().UTC()
	if now.Before(r.last) {
		now = r.last
	}
	r.last = now

	r.seq++
	b.ID = uuid.New()
	b.CreatedAt = now
	b.Seq = r.seq
	r.bookings = append(r.bookings, b)
	return b, nil
}

func (r *memBookingRepo) FindByEmail(_ context.Context, email string) (domain.Booking, error) {
	return r.find(func(b domain.Booking) bool { return b.Email == email })
}

func (r *memBookingRepo) FindByPhone(_ context.Context, phone string) (domain.Booking, error) {
	return r.find(func(b domain.Booking) bool { return b.Phone == phone })
}

func (r *memBookingRepo) find(match func(domain.Booking) bool) (domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.bookings {
		if match(b) {
			return b, nil
		}
	}
	return domain.Booking{}, domain.ErrNotFound
}

func (r *memBookingRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	out := make([]domain.Booking, len(r.bookings))
	copy(out, r.bookings)
	r.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq > out[j].Seq
	})
	return out, nil
}
