package repo_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelwave/booking/internal/domain"
	"github.com/travelwave/booking/internal/repo"
)

func TestMemoryBookingRepo_Insert(t *testing.T) {
	r := repo.NewMemoryBookingRepo()

	got, err := r.Insert(context.Background(), bookingFixture())

	require.NoError(t, err)
	assert.NotEqual(t, [16]byte{}, got.ID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.Equal(t, "Asha", got.Name)
}

func TestMemoryBookingRepo_Insert_Duplicates(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Booking)
		wantErr error
	}{
		{
			name:    "same email",
			mutate:  func(b *domain.Booking) { b.Phone = "1234567890" },
			wantErr: domain.ErrDuplicateEmail,
		},
		{
			name:    "same phone",
			mutate:  func(b *domain.Booking) { b.Email = "other@x.com" },
			wantErr: domain.ErrDuplicatePhone,
		},
		{
			name:    "same email and phone reports email",
			mutate:  func(*domain.Booking) {},
			wantErr: domain.ErrDuplicateEmail,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := repo.NewMemoryBookingRepo()
			ctx := context.Background()

			_, err := r.Insert(ctx, bookingFixture())
			require.NoError(t, err)

			dup := bookingFixture()
			tc.mutate(&dup)
			_, err = r.Insert(ctx, dup)

			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMemoryBookingRepo_Insert_Invalid(t *testing.T) {
	r := repo.NewMemoryBookingRepo()
	ctx := context.Background()

	b := bookingFixture()
	b.Email = "asha@x"
	_, err := r.Insert(ctx, b)
	assert.ErrorIs(t, err, domain.ErrValidation)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all, "rejected booking must not be stored")
}

func TestMemoryBookingRepo_Find(t *testing.T) {
	r := repo.NewMemoryBookingRepo()
	ctx := context.Background()

	created, err := r.Insert(ctx, bookingFixture())
	require.NoError(t, err)

	byEmail, err := r.FindByEmail(ctx, "asha@x.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byPhone, err := r.FindByPhone(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byPhone.ID)

	_, err = r.FindByEmail(ctx, "ASHA@x.com")
	assert.ErrorIs(t, err, domain.ErrNotFound, "email match is exact")

	_, err = r.FindByPhone(ctx, "0000000000")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryBookingRepo_ListAll_NewestFirst(t *testing.T) {
	r := repo.NewMemoryBookingRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		b := bookingFixture()
		b.Name = fmt.Sprintf("traveller-%d", i)
		b.Email = fmt.Sprintf("t%d@x.com", i)
		b.Phone = fmt.Sprintf("900000000%d", i)
		_, err := r.Insert(ctx, b)
		require.NoError(t, err)
	}

	got, err := r.ListAll(ctx)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "traveller-2", got[0].Name)
	assert.Equal(t, "traveller-1", got[1].Name)
	assert.Equal(t, "traveller-0", got[2].Name)
}

func TestMemoryBookingRepo_ListAll_Empty(t *testing.T) {
	got, err := repo.NewMemoryBookingRepo().ListAll(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMemoryBookingRepo_ConcurrentSameEmail(t *testing.T) {
	r := repo.NewMemoryBookingRepo()
	ctx := context.Background()

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		dupes     int
	)

	for i := 0; i < workers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := bookingFixture()
			b.Phone = fmt.Sprintf("98765432%02d", i)
			b.DateTime = time.Now().Add(time.Hour)
			_, err := r.Insert(ctx, b)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrDuplicateEmail):
				dupes++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	assert.Equal(t, workers-1, dupes)

	all, err := r.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
