package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

type mockScheduleRepo struct {
	count int
	err   error

	gotVehicleID   int64
	gotStart       time.Time
	gotEnd         time.Time
	gotExcludingID *int64
}

func (m *mockScheduleRepo) CountOverlapping(_ context.Context, vehicleID int64, start, end time.Time, excludingID *int64) (int, error) {
	m.gotVehicleID = vehicleID
	m.gotStart = start
	m.gotEnd = end
	m.gotExcludingID = excludingID
	return m.count, m.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestChecker_IsAvailable(t *testing.T) {
	ctx := context.Background()

	t.Run("no overlapping schedules means available", func(t *testing.T) {
		repo := &mockScheduleRepo{count: 0}
		checker := NewChecker(repo, nopLogger{})

		available, err := checker.IsAvailable(ctx, 7, date(2026, 3, 1), date(2026, 3, 3), nil)

		require.NoError(t, err)
		assert.True(t, available)
		assert.Equal(t, int64(7), repo.gotVehicleID)
		assert.Nil(t, repo.gotExcludingID)
	})

	t.Run("overlapping schedule means not available", func(t *testing.T) {
		repo := &mockScheduleRepo{count: 1}
		checker := NewChecker(repo, nopLogger{})

		available, err := checker.IsAvailable(ctx, 7, date(2026, 3, 1), date(2026, 3, 3), nil)

		require.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("excluding id is passed through", func(t *testing.T) {
		repo := &mockScheduleRepo{count: 0}
		checker := NewChecker(repo, nopLogger{})

		_, err := checker.IsAvailable(ctx, 7, date(2026, 3, 1), date(2026, 3, 3), ptr.Ptr(int64(42)))

		require.NoError(t, err)
		require.NotNil(t, repo.gotExcludingID)
		assert.Equal(t, int64(42), *repo.gotExcludingID)
	})

	t.Run("invalid range", func(t *testing.T) {
		checker := NewChecker(&mockScheduleRepo{}, nopLogger{})

		_, err := checker.IsAvailable(ctx, 7, date(2026, 3, 3), date(2026, 3, 1), nil)
		assert.ErrorIs(t, err, ErrInvalidRange)

		_, err = checker.IsAvailable(ctx, 7, date(2026, 3, 1), date(2026, 3, 1), nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &mockScheduleRepo{err: errors.New("connection refused")}
		checker := NewChecker(repo, nopLogger{})

		_, err := checker.IsAvailable(ctx, 7, date(2026, 3, 1), date(2026, 3, 3), nil)

		assert.ErrorIs(t, err, ErrInternal)
	})
}
