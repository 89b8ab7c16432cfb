package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rent-assist/domain"
)

// ErrNotFound is returned by FindByID when no record has the given id.
var ErrNotFound = errors.New("record not found")

type ScheduleRepository interface {
	Save(ctx context.Context, record domain.ScheduleRecord) error
	FindByID(ctx context.Context, id uuid.UUID) (domain.ScheduleRecord, error)
}

// ApplicationRepository persists wizard state. Save inserts or replaces the
// application with the same ID.
type ApplicationRepository interface {
	Save(ctx context.Context, app domain.Application) error
	FindByID(ctx context.Context, id uuid.UUID) (domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error)
}
