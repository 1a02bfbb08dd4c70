package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// Коды ошибок PostgreSQL, означающие нарушение ограничения уникальности/исключения.
// Нарушение exclusion constraint на (vehicle_id, daterange) транслируется в ErrScheduleConflict.
const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

var scheduleColumns = []string{
	"id",
	"vehicle_id",
	"person_id",
	"start_date",
	"end_date",
	"status",
	"base_amount",
	"final_amount",
	"returned_at",
	"return_mileage",
	"return_fuel_level",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с расписаниями аренды
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое расписание со статусом booked.
// Если в контексте передана активная транзакция, использует её.
// Нарушение storage-level ограничения на пересекающиеся интервалы возвращается
// как ErrScheduleConflict - так же, как срабатывание предварительной проверки доступности.
func (r *Repository) Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("schedules").
		Columns(
			"vehicle_id",
			"person_id",
			"start_date",
			"end_date",
			"status",
			"base_amount",
		).
		Values(
			schedule.VehicleID,
			schedule.PersonID,
			schedule.StartDate,
			schedule.EndDate,
			schedule.Status,
			schedule.BaseAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isConstraintViolation(err) {
			return nil, ErrScheduleConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return schedule, nil
}

// GetByID получает расписание по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Schedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: расчет возврата выполняет read-then-update
	if txmanager.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	schedule, err := scanSchedule(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan schedule: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// CountOverlapping подсчитывает активные расписания автомобиля, пересекающие
// полуоткрытый интервал [start, end). Совпадение границ пересечением не считается.
// excludingID позволяет исключить из проверки собственное расписание.
func (r *Repository) CountOverlapping(ctx context.Context, vehicleID int64, start, end time.Time, excludingID *int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	activeStatuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		activeStatuses[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Where(squirrel.Lt{"start_date": end}).
		Where(squirrel.Gt{"end_date": start})

	if excludingID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludingID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CountActiveByVehicle подсчитывает активные расписания автомобиля.
// Используется как защита от удаления автомобиля с действующими бронированиями.
func (r *Repository) CountActiveByVehicle(ctx context.Context, vehicleID int64) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("schedules").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": string(domain.StatusBooked)}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByVehicle - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// GetByPersonID получает историю расписаний клиента, отсортированную по дате начала (сначала новые)
func (r *Repository) GetByPersonID(ctx context.Context, personID int64) ([]*domain.Schedule, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(scheduleColumns...).
		From("schedules").
		Where(squirrel.Eq{"person_id": personID}).
		OrderBy("start_date DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByPersonID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPersonID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSchedules(rows)
}

// Settle закрывает расписание: переводит его в статус settled и записывает данные возврата.
// Guard `status = 'booked'` гарантирует, что чек-лист принимается не более одного раза:
// при нулевом количестве обновленных строк возвращает ErrScheduleNotSettleable.
func (r *Repository) Settle(
	ctx context.Context,
	id int64,
	finalAmount decimal.Decimal,
	returnedAt time.Time,
	returnMileage int64,
	returnFuelLevel int,
) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("schedules").
		Set("status", domain.StatusSettled).
		Set("final_amount", finalAmount).
		Set("returned_at", returnedAt).
		Set("return_mileage", returnMileage).
		Set("return_fuel_level", returnFuelLevel).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": domain.StatusBooked}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Settle - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Settle - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Settle - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotSettleable
	}

	return nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanSchedule сканирует одну строку расписания
func scanSchedule(row rowScanner) (*domain.Schedule, error) {
	var schedule domain.Schedule
	var finalAmount decimal.NullDecimal
	var returnedAt, createdAt, updatedAt sql.NullTime
	var returnMileage, returnFuelLevel sql.NullInt64

	err := row.Scan(
		&schedule.ID,
		&schedule.VehicleID,
		&schedule.PersonID,
		&schedule.StartDate,
		&schedule.EndDate,
		&schedule.Status,
		&schedule.BaseAmount,
		&finalAmount,
		&returnedAt,
		&returnMileage,
		&returnFuelLevel,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if finalAmount.Valid {
		schedule.FinalAmount = &finalAmount.Decimal
	}
	if returnedAt.Valid {
		schedule.ReturnedAt = &returnedAt.Time
	}
	if returnMileage.Valid {
		schedule.ReturnMileage = &returnMileage.Int64
	}
	if returnFuelLevel.Valid {
		fuel := int(returnFuelLevel.Int64)
		schedule.ReturnFuelLevel = &fuel
	}

	schedule.CreatedAt = createdAt.Time
	schedule.UpdatedAt = updatedAt.Time

	return &schedule, nil
}

// scanSchedules сканирует результаты запроса в слайс расписаний
func scanSchedules(rows *sql.Rows) ([]*domain.Schedule, error) {
	schedules := make([]*domain.Schedule, 0)

	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSchedules - scan row: %v", ErrScanRow, err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSchedules - rows error: %v", ErrScanRow, err)
	}

	return schedules, nil
}

// isConstraintViolation проверяет, является ли ошибка нарушением
// уникального или exclusion ограничения PostgreSQL
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation || pqErr.Code == pqExclusionViolation
	}
	return false
}
