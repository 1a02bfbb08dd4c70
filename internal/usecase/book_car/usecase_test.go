package book_car

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	personRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/person"
	scheduleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/schedule"
	vehicleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/vehicle"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
	"github.com/m04kA/SMC-RentalService/internal/service/pricing"
)

type mockScheduleRepo struct {
	err   error
	calls int
}

func (m *mockScheduleRepo) Create(_ context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	schedule.ID = 10
	schedule.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	schedule.UpdatedAt = schedule.CreatedAt
	return schedule, nil
}

type mockVehicleRepo struct {
	vehicle *domain.Vehicle
	err     error
}

func (m *mockVehicleRepo) GetByID(context.Context, int64) (*domain.Vehicle, error) {
	return m.vehicle, m.err
}

type mockPersonRepo struct {
	person *domain.Person
	err    error
}

func (m *mockPersonRepo) GetByID(context.Context, int64) (*domain.Person, error) {
	return m.person, m.err
}

type mockAvailability struct {
	available bool
	err       error
}

func (m *mockAvailability) IsAvailable(context.Context, int64, time.Time, time.Time, *int64) (bool, error) {
	return m.available, m.err
}

type mockDocsClient struct {
	ref   *docservice.DocumentRef
	err   error
	calls int
}

func (m *mockDocsClient) RenderContract(context.Context, *domain.Schedule, *domain.Vehicle, *domain.Person) (*docservice.DocumentRef, error) {
	m.calls++
	return m.ref, m.err
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:        1,
		Brand:     "Fiat",
		Model:     "Mobi",
		DailyRate: decimal.RequireFromString("100.00"),
	}
}

func testPerson() *domain.Person {
	return &domain.Person{
		ID:       3,
		Name:     "Joana Silva",
		Document: "12345678900",
		Role:     domain.RoleUser,
	}
}

func validRequest() *Request {
	return &Request{
		PersonID:  3,
		VehicleID: 1,
		StartDate: date(2026, 3, 1),
		EndDate:   date(2026, 3, 3),
	}
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	newUseCase := func(
		schedules *mockScheduleRepo,
		availability *mockAvailability,
		docs *mockDocsClient,
	) *UseCase {
		return NewUseCase(
			schedules,
			&mockVehicleRepo{vehicle: testVehicle()},
			&mockPersonRepo{person: testPerson()},
			availability,
			pricing.NewCalculator(),
			docs,
			fakeTxManager{},
			nopLogger{},
		)
	}

	t.Run("successful booking with contract", func(t *testing.T) {
		docs := &mockDocsClient{ref: &docservice.DocumentRef{ID: "doc-1", Kind: docservice.KindContract}}
		uc := newUseCase(&mockScheduleRepo{}, &mockAvailability{available: true}, docs)

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ScheduleID)
		assert.Equal(t, string(domain.StatusBooked), resp.Status)
		assert.Equal(t, "200.00", resp.Amount.StringFixed(2))
		require.NotNil(t, resp.Contract)
		assert.Equal(t, "doc-1", resp.Contract.ID)
		assert.Nil(t, resp.DocumentError)
	})

	t.Run("conflict from availability pre-check skips insert", func(t *testing.T) {
		schedules := &mockScheduleRepo{}
		uc := newUseCase(schedules, &mockAvailability{available: false}, &mockDocsClient{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrScheduleConflict)
		assert.Zero(t, schedules.calls)
	})

	t.Run("conflict from storage constraint after passing pre-check", func(t *testing.T) {
		schedules := &mockScheduleRepo{err: scheduleRepo.ErrScheduleConflict}
		uc := newUseCase(schedules, &mockAvailability{available: true}, &mockDocsClient{})

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrScheduleConflict)
		assert.Equal(t, 1, schedules.calls)
	})

	t.Run("person not found", func(t *testing.T) {
		uc := NewUseCase(
			&mockScheduleRepo{},
			&mockVehicleRepo{vehicle: testVehicle()},
			&mockPersonRepo{err: personRepo.ErrPersonNotFound},
			&mockAvailability{available: true},
			pricing.NewCalculator(),
			&mockDocsClient{},
			fakeTxManager{},
			nopLogger{},
		)

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrPersonNotFound)
	})

	t.Run("vehicle not found", func(t *testing.T) {
		uc := NewUseCase(
			&mockScheduleRepo{},
			&mockVehicleRepo{err: vehicleRepo.ErrVehicleNotFound},
			&mockPersonRepo{person: testPerson()},
			&mockAvailability{available: true},
			pricing.NewCalculator(),
			&mockDocsClient{},
			fakeTxManager{},
			nopLogger{},
		)

		_, err := uc.Execute(ctx, validRequest())

		assert.ErrorIs(t, err, ErrVehicleNotFound)
	})

	t.Run("contract rendering failure does not fail booking", func(t *testing.T) {
		docs := &mockDocsClient{err: errors.New("docservice unavailable")}
		uc := newUseCase(&mockScheduleRepo{}, &mockAvailability{available: true}, docs)

		resp, err := uc.Execute(ctx, validRequest())

		require.NoError(t, err)
		assert.Equal(t, int64(10), resp.ScheduleID)
		assert.Nil(t, resp.Contract)
		require.NotNil(t, resp.DocumentError)
		assert.Contains(t, *resp.DocumentError, "docservice unavailable")
	})

	t.Run("invalid range", func(t *testing.T) {
		uc := newUseCase(&mockScheduleRepo{}, &mockAvailability{available: true}, &mockDocsClient{})

		req := validRequest()
		req.EndDate = req.StartDate

		_, err := uc.Execute(ctx, req)

		assert.ErrorIs(t, err, ErrInvalidRange)
	})
}
