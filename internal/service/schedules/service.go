package schedules

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	personRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/person"
	scheduleRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/schedule"
	"github.com/m04kA/SMC-RentalService/internal/service/schedules/models"
)

// Service сервис чтения расписаний аренды
type Service struct {
	scheduleRepo ScheduleRepository
	personRepo   PersonRepository
	docsClient   DocServiceClient
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(
	scheduleRepo ScheduleRepository,
	personRepo PersonRepository,
	docsClient DocServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		personRepo:   personRepo,
		docsClient:   docsClient,
		txManager:    txManager,
		logger:       logger,
	}
}

// GetHistoryByDocument возвращает историю аренд клиента по номеру документа,
// отсортированную по дате начала (сначала новые), вместе со ссылкой на выписку.
// Пустая история - валидный результат, а не ошибка.
// Сбой генерации выписки не отменяет ответ: он возвращается как вторичное поле.
func (s *Service) GetHistoryByDocument(ctx context.Context, document string) (*models.HistoryResponse, error) {
	if document == "" {
		return nil, fmt.Errorf("%w: document is required", ErrInvalidInput)
	}

	s.logger.Info("GetHistoryByDocument: fetching history for document=%s", document)

	var (
		person  *domain.Person
		history []*domain.Schedule
	)

	// Клиент и его история читаются одним консистентным снимком
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error

		person, err = s.personRepo.GetByDocument(txCtx, document)
		if err != nil {
			if errors.Is(err, personRepo.ErrPersonNotFound) {
				s.logger.Warn("GetHistoryByDocument: person with document=%s not found", document)
				return ErrPersonNotFound
			}
			s.logger.Error("GetHistoryByDocument: failed to get person by document=%s: %v", document, err)
			return fmt.Errorf("%w: failed to get person: %v", ErrInternal, err)
		}

		history, err = s.scheduleRepo.GetByPersonID(txCtx, person.ID)
		if err != nil {
			s.logger.Error("GetHistoryByDocument: failed to get schedules for person=%d: %v", person.ID, err)
			return fmt.Errorf("%w: failed to get schedules: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	response := &models.HistoryResponse{
		PersonID:   person.ID,
		PersonName: person.Name,
		Document:   person.Document,
		Schedules:  models.FromDomainScheduleList(history),
	}

	// Выписка генерируется после чтения истории; её сбой не ломает ответ
	statement, err := s.docsClient.RenderStatement(ctx, person, history)
	if err != nil {
		s.logger.Error("GetHistoryByDocument: statement rendering failed for person=%d: %v", person.ID, err)
		docErr := err.Error()
		response.DocumentError = &docErr
	} else {
		response.Statement = statement
	}

	s.logger.Info("GetHistoryByDocument: fetched %d schedules for person=%d", len(history), person.ID)
	return response, nil
}

// GetByID возвращает расписание по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ScheduleResponse, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Warn("GetByID: schedule id=%d not found", id)
			return nil, ErrScheduleNotFound
		}
		s.logger.Error("GetByID: repository error for schedule id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSchedule(schedule), nil
}
