package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/department-store/internal/domain"
	"github.com/spec-kit/department-store/internal/events"
	"github.com/spec-kit/department-store/internal/persistence"
	"github.com/spec-kit/department-store/internal/repository"
	apperrors "github.com/spec-kit/department-store/pkg/util"
)

// UnitOfWork scopes a storage handle around fn. *persistence.Postgres implements it.
type UnitOfWork interface {
	WithConn(ctx context.Context, fn func(db repository.DBTX) error) error
}

// DepartmentChanges lists the fields an update may replace. Nil fields are left alone.
type DepartmentChanges struct {
	Name     *string
	Location *string
}

// DepartmentService runs department store operations and announces the changes.
type DepartmentService struct {
	uow        UnitOfWork
	store      repository.DepartmentStore
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDepartmentService constructs the service.
func NewDepartmentService(uow UnitOfWork, store repository.DepartmentStore, dispatcher events.Dispatcher, logger *zap.Logger) *DepartmentService {
	return &DepartmentService{
		uow:        uow,
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// EnsureTable creates the departments table if missing.
// The table-created event fires only when the table did not exist before.
func (s *DepartmentService) EnsureTable(ctx context.Context) error {
	var existed bool
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		var err error
		if existed, err = s.store.TableExists(ctx, db); err != nil {
			return err
		}
		return s.store.CreateTable(ctx, db)
	})
	if err != nil {
		return mapStorageError(err)
	}
	if !existed {
		s.publish(ctx, events.NewEvent(events.EventTableCreated, 0, nil))
	}
	return nil
}

// ResetTable drops and recreates the departments table, discarding every row.
func (s *DepartmentService) ResetTable(ctx context.Context) error {
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		if err := s.store.DropTable(ctx, db); err != nil {
			return err
		}
		return s.store.CreateTable(ctx, db)
	})
	if err != nil {
		return mapStorageError(err)
	}
	s.publish(ctx, events.NewEvent(events.EventTableDropped, 0, nil))
	s.publish(ctx, events.NewEvent(events.EventTableCreated, 0, nil))
	return nil
}

// Create persists a new department.
func (s *DepartmentService) Create(ctx context.Context, name, location string) (*domain.Department, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.NewValidationError("name required", map[string]any{"field": "name"})
	}

	var dept *domain.Department
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		var err error
		dept, err = s.store.Create(ctx, db, name, location)
		return err
	})
	if err != nil {
		return nil, mapStorageError(err)
	}

	s.publish(ctx, events.NewEvent(events.EventDepartmentCreated, dept.ID, events.PayloadOf(*dept)))
	return dept, nil
}

// Get fetches a department, failing with NOT_FOUND when absent.
func (s *DepartmentService) Get(ctx context.Context, id int64) (*domain.Department, error) {
	var dept *domain.Department
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		var err error
		dept, err = s.store.Find(ctx, db, id)
		return err
	})
	if err != nil {
		return nil, mapStorageError(err)
	}
	if dept == nil {
		return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
	}
	return dept, nil
}

// List returns every department.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		var err error
		depts, err = s.store.All(ctx, db)
		return err
	})
	if err != nil {
		return nil, mapStorageError(err)
	}
	return depts, nil
}

// Update applies changes to an existing department and saves it.
func (s *DepartmentService) Update(ctx context.Context, id int64, changes DepartmentChanges) (*domain.Department, error) {
	if changes.Name != nil && strings.TrimSpace(*changes.Name) == "" {
		return nil, apperrors.NewValidationError("name must not be blank", map[string]any{"field": "name"})
	}

	var (
		dept   *domain.Department
		before events.DepartmentPayload
	)
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		var err error
		dept, err = s.store.Find(ctx, db, id)
		if err != nil || dept == nil {
			return err
		}
		before = events.PayloadOf(*dept)
		if changes.Name != nil {
			dept.Name = *changes.Name
		}
		if changes.Location != nil {
			dept.Location = *changes.Location
		}
		return s.store.Save(ctx, db, dept)
	})
	if err != nil {
		return nil, mapStorageError(err)
	}
	if dept == nil {
		return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
	}

	after := events.PayloadOf(*dept)
	if after != before {
		s.publish(ctx, events.NewEvent(events.EventDepartmentUpdated, dept.ID, events.DepartmentUpdatedPayload{
			Before: before,
			After:  after,
		}))
	}
	return dept, nil
}

// Delete removes a department. Deleting an unknown id succeeds without an event.
func (s *DepartmentService) Delete(ctx context.Context, id int64) error {
	var existing *domain.Department
	err := s.uow.WithConn(ctx, func(db repository.DBTX) error {
		var err error
		existing, err = s.store.Find(ctx, db, id)
		if err != nil {
			return err
		}
		return s.store.Delete(ctx, db, &domain.Department{ID: id})
	})
	if err != nil {
		return mapStorageError(err)
	}

	if existing != nil {
		s.publish(ctx, events.NewEvent(events.EventDepartmentDeleted, id, events.PayloadOf(*existing)))
	}
	return nil
}

// publish never fails the caller; the row change is already committed.
func (s *DepartmentService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("department event not delivered",
			zap.String("event_type", string(event.Type)),
			zap.Int64("department_id", event.DepartmentID),
			zap.Error(err))
	}
}

func mapStorageError(err error) error {
	if errors.Is(err, persistence.ErrUnavailable) {
		return apperrors.NewUnavailable(err)
	}
	return apperrors.MapError(err)
}
