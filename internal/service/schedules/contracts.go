package schedules

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/docservice"
)

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Schedule, error)
	GetByPersonID(ctx context.Context, personID int64) ([]*domain.Schedule, error)
}

// PersonRepository интерфейс репозитория клиентов
type PersonRepository interface {
	GetByDocument(ctx context.Context, document string) (*domain.Person, error)
}

// DocServiceClient интерфейс клиента сервиса документов
type DocServiceClient interface {
	RenderStatement(ctx context.Context, person *domain.Person, schedules []*domain.Schedule) (*docservice.DocumentRef, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
