package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"rent-assist/domain"
)

// OpenDatabase opens a GORM connection for driver "postgres" or "sqlite".
func OpenDatabase(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "postgres":
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	return db, nil
}

// Migrate creates or updates the tables used by the GORM repositories.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&scheduleRow{}, &applicationRow{})
}

type scheduleRow struct {
	ID             string                 `gorm:"primaryKey;size:36"`
	TotalAmount    float64                `gorm:"not null"`
	InterestRate   float64                `gorm:"not null"`
	Months         int                    `gorm:"not null"`
	MonthlyPayment float64                `gorm:"not null"`
	Input          domain.ScheduleInput   `gorm:"serializer:json;type:text"`
	Result         domain.PaymentSchedule `gorm:"serializer:json;type:text"`
	CreatedAt      time.Time
}

func (scheduleRow) TableName() string {
	return domain.TableSchedules
}

type applicationRow struct {
	ID          string             `gorm:"primaryKey;size:36"`
	ApplicantID string             `gorm:"index;not null"`
	Step        string             `gorm:"not null"`
	Record      domain.Application `gorm:"serializer:json;type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (applicationRow) TableName() string {
	return domain.TableApplications
}

type ScheduleRepositoryGorm struct {
	db *gorm.DB
}

func NewScheduleRepositoryGorm(db *gorm.DB) *ScheduleRepositoryGorm {
	return &ScheduleRepositoryGorm{db: db}
}

func (r *ScheduleRepositoryGorm) Save(ctx context.Context, record domain.ScheduleRecord) error {
	row := scheduleRow{
		ID:             record.ID.String(),
		TotalAmount:    record.Input.TotalAmount,
		InterestRate:   record.Input.InterestRate,
		Months:         record.Input.Months,
		MonthlyPayment: record.Result.MonthlyPayment,
		Input:          record.Input,
		Result:         record.Result,
		CreatedAt:      record.CreatedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (r *ScheduleRepositoryGorm) FindByID(ctx context.Context, id uuid.UUID) (domain.ScheduleRecord, error) {
	var row scheduleRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ScheduleRecord{}, ErrNotFound
	}
	if err != nil {
		return domain.ScheduleRecord{}, err
	}

	record := domain.ScheduleRecord{
		ID:        id,
		Input:     row.Input,
		Result:    row.Result,
		CreatedAt: row.CreatedAt,
	}
	if err := record.Validate(); err != nil {
		return domain.ScheduleRecord{}, err
	}
	return record, nil
}

type ApplicationRepositoryGorm struct {
	db *gorm.DB
}

func NewApplicationRepositoryGorm(db *gorm.DB) *ApplicationRepositoryGorm {
	return &ApplicationRepositoryGorm{db: db}
}

func (r *ApplicationRepositoryGorm) Save(ctx context.Context, app domain.Application) error {
	row := applicationRow{
		ID:          app.ID.String(),
		ApplicantID: app.ApplicantID,
		Step:        string(app.Step),
		Record:      app,
		CreatedAt:   app.CreatedAt,
		UpdatedAt:   app.UpdatedAt,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

func (r *ApplicationRepositoryGorm) FindByID(ctx context.Context, id uuid.UUID) (domain.Application, error) {
	var row applicationRow
	err := r.db.WithContext(ctx).First(&row, "id = ?", id.String()).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Application{}, ErrNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	if err := row.Record.Validate(); err != nil {
		return domain.Application{}, err
	}
	return row.Record, nil
}

func (r *ApplicationRepositoryGorm) ListByApplicant(ctx context.Context, applicantID string) ([]domain.Application, error) {
	var rows []applicationRow
	err := r.db.WithContext(ctx).
		Where("applicant_id = ?", applicantID).
		Order("created_at").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	apps := make([]domain.Application, 0, len(rows))
	for _, row := range rows {
		if err := row.Record.Validate(); err != nil {
			return nil, err
		}
		apps = append(apps, row.Record)
	}
	return apps, nil
}

var (
	_ ScheduleRepository    = (*ScheduleRepositoryGorm)(nil)
	_ ApplicationRepository = (*ApplicationRepositoryGorm)(nil)
)
