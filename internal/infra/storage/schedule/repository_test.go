package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newBookedSchedule() *domain.Schedule {
	return &domain.Schedule{
		VehicleID:  1,
		PersonID:   3,
		StartDate:  date(2026, 3, 1),
		EndDate:    date(2026, 3, 3),
		Status:     domain.StatusBooked,
		BaseAmount: decimal.RequireFromString("200.00"),
	}
}

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery("INSERT INTO schedules").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(10, now, now))

		created, err := repo.Create(ctx, newBookedSchedule())

		require.NoError(t, err)
		assert.Equal(t, int64(10), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exclusion violation maps to conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO schedules").
			WillReturnError(&pq.Error{Code: "23P01", Constraint: "schedules_no_overlap"})

		_, err := repo.Create(ctx, newBookedSchedule())

		assert.ErrorIs(t, err, ErrScheduleConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation maps to conflict", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO schedules").
			WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(ctx, newBookedSchedule())

		assert.ErrorIs(t, err, ErrScheduleConflict)
	})

	t.Run("other errors are not conflicts", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO schedules").
			WillReturnError(&pq.Error{Code: "57014"})

		_, err := repo.Create(ctx, newBookedSchedule())

		assert.ErrorIs(t, err, ErrExecQuery)
		assert.NotErrorIs(t, err, ErrScheduleConflict)
	})
}

func TestRepository_CountOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("counts active overlapping schedules", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM schedules`).
			WithArgs(int64(1), "booked", "returned", sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountOverlapping(ctx, 1, date(2026, 3, 1), date(2026, 3, 3), nil)

		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("excluding id adds a filter", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM schedules`).
			WithArgs(int64(1), "booked", "returned", sqlmock.AnyArg(), sqlmock.AnyArg(), int64(10)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountOverlapping(ctx, 1, date(2026, 3, 1), date(2026, 3, 3), ptr.Ptr(int64(10)))

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Settle(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()
	final := decimal.RequireFromString("250.00")

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE schedules").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Settle(ctx, 10, final, date(2026, 3, 4), 10050, 100)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows means schedule is not settleable", func(t *testing.T) {
		mock.ExpectExec("UPDATE schedules").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Settle(ctx, 10, final, date(2026, 3, 4), 10050, 100)

		assert.ErrorIs(t, err, ErrScheduleNotSettleable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("scans nullable settlement columns", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "vehicle_id", "person_id", "start_date", "end_date", "status",
			"base_amount", "final_amount", "returned_at", "return_mileage", "return_fuel_level",
			"created_at", "updated_at",
		}).AddRow(10, 1, 3, date(2026, 3, 1), date(2026, 3, 3), "settled",
			"200.00", "250.00", now, 10050, 100, now, now)

		mock.ExpectQuery("SELECT (.+) FROM schedules").
			WithArgs(int64(10)).
			WillReturnRows(rows)

		schedule, err := repo.GetByID(ctx, 10)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusSettled, schedule.Status)
		require.NotNil(t, schedule.FinalAmount)
		assert.Equal(t, "250.00", schedule.FinalAmount.StringFixed(2))
		require.NotNil(t, schedule.ReturnMileage)
		assert.Equal(t, int64(10050), *schedule.ReturnMileage)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM schedules").
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 999)

		assert.ErrorIs(t, err, ErrScheduleNotFound)
	})

	t.Run("booked schedule has no settlement data", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{
			"id", "vehicle_id", "person_id", "start_date", "end_date", "status",
			"base_amount", "final_amount", "returned_at", "return_mileage", "return_fuel_level",
			"created_at", "updated_at",
		}).AddRow(11, 1, 3, date(2026, 4, 1), date(2026, 4, 3), "booked",
			"300.00", nil, nil, nil, nil, now, now)

		mock.ExpectQuery("SELECT (.+) FROM schedules").
			WithArgs(int64(11)).
			WillReturnRows(rows)

		schedule, err := repo.GetByID(ctx, 11)

		require.NoError(t, err)
		assert.Nil(t, schedule.FinalAmount)
		assert.Nil(t, schedule.ReturnedAt)
		assert.Nil(t, schedule.ReturnMileage)
		assert.Nil(t, schedule.ReturnFuelLevel)
	})
}
