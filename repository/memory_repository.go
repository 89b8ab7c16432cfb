package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"rent-assist/domain"
)

// ScheduleRepositoryMemory is an in-memory implementation of ScheduleRepository.
type ScheduleRepositoryMemory struct {
	mu   sync.Mutex
	data map[uuid.UUID]domain.ScheduleRecord
}

// NewScheduleRepositoryMemory creates a new in-memory schedule repository.
func NewScheduleRepositoryMemory() *ScheduleRepositoryMemory {
	return &ScheduleRepositoryMemory{
		data: make(map[uuid.UUID]domain.ScheduleRecord),
	}
}

// Save stores the record in memory.
func (r *ScheduleRepositoryMemory) Save(_ context.Context, record domain.ScheduleRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := make([]domain.ScheduleEntry, len(record.Result.Schedule))
	copy(entries, record.Result.Schedule)
	record.Result.Schedule = entries

	r.data[record.ID] = record
	return nil
}

func (r *ScheduleRepositoryMemory) FindByID(_ context.Context, id uuid.UUID) (domain.ScheduleRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	record, ok := r.data[id]
	if !ok {
		return domain.ScheduleRecord{}, ErrNotFound
	}
	entries := make([]domain.ScheduleEntry, len(record.Result.Schedule))
	copy(entries, record.Result.Schedule)
	record.Result.Schedule = entries
	return record, nil
}

// ApplicationRepositoryMemory is an in-memory implementation of ApplicationRepository.
type ApplicationRepositoryMemory struct {
	mu   sync.Mutex
	data map[uuid.UUID]domain.Application
}

func NewApplicationRepositoryMemory() *ApplicationRepositoryMemory {
	return &ApplicationRepositoryMemory{
		data: make(map[uuid.UUID]domain.Application),
	}
}

func (r *ApplicationRepositoryMemory) Save(_ context.Context, app domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[app.ID] = cloneApplication(app)
	return nil
}

func (r *ApplicationRepositoryMemory) FindByID(_ context.Context, id uuid.UUID) (domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	app, ok := r.data[id]
	if !ok {
		return domain.Application{}, ErrNotFound
	}
	return cloneApplication(app), nil
}

func (r *ApplicationRepositoryMemory) ListByApplicant(_ context.Context, applicantID string) ([]domain.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []domain.Application
	for _, app := range r.data {
		if app.ApplicantID == applicantID {
			result = append(result, cloneApplication(app))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func cloneApplication(app domain.Application) domain.Application {
	if app.Documents != nil {
		docs := make([]string, len(app.Documents))
		copy(docs, app.Documents)
		app.Documents = docs
	}
	if app.ReviewFee != nil {
		fee := *app.ReviewFee
		app.ReviewFee = &fee
	}
	if app.Deposit != nil {
		fee := *app.Deposit
		app.Deposit = &fee
	}
	if app.Eligibility.Reasons != nil {
		reasons := make([]string, len(app.Eligibility.Reasons))
		copy(reasons, app.Eligibility.Reasons)
		app.Eligibility.Reasons = reasons
	}
	return app
}

var (
	_ ScheduleRepository    = (*ScheduleRepositoryMemory)(nil)
	_ ApplicationRepository = (*ApplicationRepositoryMemory)(nil)
)
