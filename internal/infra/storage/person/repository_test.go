package person

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestRepository_GetByDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	t.Run("finds renter by document", func(t *testing.T) {
		now := time.Now()
		rows := sqlmock.NewRows([]string{"id", "name", "document", "role", "created_at", "updated_at"}).
			AddRow(3, "Joana Silva", "12345678900", "user", now, now)

		mock.ExpectQuery("SELECT (.+) FROM persons").
			WithArgs("12345678900", "user").
			WillReturnRows(rows)

		person, err := repo.GetByDocument(ctx, "12345678900")

		require.NoError(t, err)
		assert.Equal(t, int64(3), person.ID)
		assert.Equal(t, domain.RoleUser, person.Role)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown document", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM persons").
			WithArgs("00000000000", "user").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByDocument(ctx, "00000000000")

		assert.ErrorIs(t, err, ErrPersonNotFound)
	})
}

func TestRepository_CountByDocument(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	ctx := context.Background()

	// Документ уникален в пределах роли: один и тот же номер может
	// существовать и у клиента, и у оператора, но не дважды в одной роли
	t.Run("counts per role", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM persons`).
			WithArgs("12345678900", "user").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		count, err := repo.CountByDocument(ctx, "12345678900", domain.RoleUser)

		require.NoError(t, err)
		assert.Equal(t, 1, count)

		mock.ExpectQuery(`SELECT COUNT\(\*\) FROM persons`).
			WithArgs("12345678900", "operator").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err = repo.CountByDocument(ctx, "12345678900", domain.RoleOperator)

		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
