package person

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-RentalService/pkg/txmanager"
)

// DBExecutor интерфейс для работы с БД (поддерживает *sql.DB и *sql.Tx)
type DBExecutor = txmanager.DBExecutor

var personColumns = []string{
	"id",
	"name",
	"document",
	"role",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с клиентами и операторами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(personColumns...).
		From("persons").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	person, err := scanPerson(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan person: %v", ErrScanRow, err)
	}

	return person, nil
}

// GetByDocument получает клиента по номеру документа.
// Документ уникален в пределах роли, ищем среди клиентов (role = user).
func (r *Repository) GetByDocument(ctx context.Context, document string) (*domain.Person, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(personColumns...).
		From("persons").
		Where(squirrel.Eq{"document": document}).
		Where(squirrel.Eq{"role": domain.RoleUser}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDocument - build select query: %v", ErrBuildQuery, err)
	}

	person, err := scanPerson(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPersonNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDocument - scan person: %v", ErrScanRow, err)
	}

	return person, nil
}

// CountByDocument подсчитывает записи с указанным документом и ролью.
// Документ уникален в пределах роли (уникальный индекс (document, role)),
// поэтому результат больше единицы означает нарушение инварианта.
func (r *Repository) CountByDocument(ctx context.Context, document string, role domain.PersonRole) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("persons").
		Where(squirrel.Eq{"document": document}).
		Where(squirrel.Eq{"role": role}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountByDocument - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountByDocument - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс для *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPerson(row rowScanner) (*domain.Person, error) {
	var person domain.Person
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&person.ID,
		&person.Name,
		&person.Document,
		&person.Role,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	person.CreatedAt = createdAt.Time
	person.UpdatedAt = updatedAt.Time

	return &person, nil
}
