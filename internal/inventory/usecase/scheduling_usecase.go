package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"ot-inventory/internal/inventory/domain/model"
	"ot-inventory/internal/inventory/domain/repository"
	"ot-inventory/internal/shared/errors"
	"ot-inventory/internal/shared/eventbus"
	"ot-inventory/internal/shared/logger"

	"github.com/google/uuid"
)

// ScheduleOperationRequest carries the fields needed to schedule a procedure.
type ScheduleOperationRequest struct {
	OperationDate time.Time `json:"operation_date"`
	Type          string    `json:"type"`
	PatientID     string    `json:"patient_id"`
	ProviderID    string    `json:"provider_id"`
	Theater       string    `json:"theater"`
	Notes         string    `json:"notes"`
}

// CreatePatientRequest carries the fields for a new patient record.
type CreatePatientRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	BloodGroup     string `json:"blood_group"`
	ContactInfo    string `json:"contact_info"`
	Address        string `json:"address"`
	MedicalHistory string `json:"medical_history"`
}

// CreateProviderRequest carries the fields for a new provider record.
type CreateProviderRequest struct {
	UserID         string `json:"user_id"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	Specialization string `json:"specialization"`
	LicenseNumber  string `json:"license_number"`
	Department     string `json:"department"`
	ContactInfo    string `json:"contact_info"`
}

// SchedulingUsecaseInterface covers operations, patients, and providers.
type SchedulingUsecaseInterface interface {
	ScheduleOperation(ctx context.Context, req ScheduleOperationRequest) (*model.Operation, error)
	GetOperation(ctx context.Context, id string) (*model.Operation, error)
	ListOperations(ctx context.Context) ([]*model.Operation, error)
	UpdateOperationStatus(ctx context.Context, id, status string) error

	CreatePatient(ctx context.Context, req CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id string) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)

	CreateProvider(ctx context.Context, req CreateProviderRequest) (*model.Provider, error)
	GetProvider(ctx context.Context, id string) (*model.Provider, error)
	ListProviders(ctx context.Context) ([]*model.Provider, error)
}

// SchedulingUsecase implements SchedulingUsecaseInterface.
type SchedulingUsecase struct {
	operations repository.OperationRepository
	patients   repository.PatientRepository
	providers  repository.ProviderRepository
	bus        eventbus.EventBusInterface
	logger     logger.Logger
}

// NewSchedulingUsecase creates the scheduling usecase.
func NewSchedulingUsecase(
	operations repository.OperationRepository,
	patients repository.PatientRepository,
	providers repository.ProviderRepository,
	bus eventbus.EventBusInterface,
	log logger.Logger,
) *SchedulingUsecase {
	return &SchedulingUsecase{
		operations: operations,
		patients:   patients,
		providers:  providers,
		bus:        bus,
		logger:     log.WithComponent("scheduling_usecase"),
	}
}

// ScheduleOperation validates the referenced patient and provider exist, then
// stores the operation with a generated operation number.
func (uc *SchedulingUsecase) ScheduleOperation(ctx context.Context, req ScheduleOperationRequest) (*model.Operation, error) {
	if strings.TrimSpace(req.Type) == "" || req.PatientID == "" || req.ProviderID == "" {
		return nil, errors.NewValidationError("operation type, patient_id and provider_id are required")
	}
	if req.OperationDate.IsZero() {
		return nil, errors.NewValidationError("operation_date is required")
	}

	if _, err := uc.patients.GetByID(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if _, err := uc.providers.GetByID(ctx, req.ProviderID); err != nil {
		return nil, err
	}

	now := time.Now()
	op := &model.Operation{
		ID:              uuid.New().String(),
		OperationNumber: fmt.Sprintf("OP-%d-%s", req.OperationDate.Year(), uuid.New().String()[:8]),
		OperationDate:   req.OperationDate,
		Status:          model.OperationStatusScheduled,
		Type:            req.Type,
		PatientID:       req.PatientID,
		ProviderID:      req.ProviderID,
		Theater:         req.Theater,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.operations.Create(ctx, op); err != nil {
		uc.logger.WithContext(ctx).Errorf("Failed to schedule operation: %v", err)
		return nil, err
	}

	uc.bus.PublishAndForget(ctx, eventbus.NewBasicEvent(eventbus.EventTypeOperationCreated, op))
	return op, nil
}

// GetOperation returns one operation by ID.
func (uc *SchedulingUsecase) GetOperation(ctx context.Context, id string) (*model.Operation, error) {
	return uc.operations.GetByID(ctx, id)
}

// ListOperations returns all operations.
func (uc *SchedulingUsecase) ListOperations(ctx context.Context) ([]*model.Operation, error) {
	return uc.operations.List(ctx)
}

// UpdateOperationStatus moves an operation through its lifecycle.
func (uc *SchedulingUsecase) UpdateOperationStatus(ctx context.Context, id, status string) error {
	switch status {
	case model.OperationStatusScheduled, model.OperationStatusInProgress,
		model.OperationStatusCompleted, model.OperationStatusCancelled:
	default:
		return errors.NewValidationError("unknown operation status: " + status)
	}
	return uc.operations.UpdateStatus(ctx, id, status)
}

// CreatePatient stores a new patient record.
func (uc *SchedulingUsecase) CreatePatient(ctx context.Context, req CreatePatientRequest) (*model.Patient, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, errors.NewValidationError("patient name is required")
	}
	if req.Age < 0 {
		return nil, errors.NewValidationError("patient age cannot be negative")
	}

	now := time.Now()
	p := &model.Patient{
		ID:             uuid.New().String(),
		Name:           req.Name,
		Age:            req.Age,
		Gender:         req.Gender,
		BloodGroup:     req.BloodGroup,
		ContactInfo:    req.ContactInfo,
		Address:        req.Address,
		MedicalHistory: req.MedicalHistory,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.patients.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetPatient returns one patient by ID.
func (uc *SchedulingUsecase) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	return uc.patients.GetByID(ctx, id)
}

// ListPatients returns all patients.
func (uc *SchedulingUsecase) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return uc.patients.List(ctx)
}

// CreateProvider stores a new provider record.
func (uc *SchedulingUsecase) CreateProvider(ctx context.Context, req CreateProviderRequest) (*model.Provider, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Type) == "" {
		return nil, errors.NewValidationError("provider name and type are required")
	}

	now := time.Now()
	p := &model.Provider{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		Name:           req.Name,
		Type:           req.Type,
		Specialization: req.Specialization,
		LicenseNumber:  req.LicenseNumber,
		Department:     req.Department,
		ContactInfo:    req.ContactInfo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetProvider returns one provider by ID.
func (uc *SchedulingUsecase) GetProvider(ctx context.Context, id string) (*model.Provider, error) {
	return uc.providers.GetByID(ctx, id)
}

// ListProviders returns all providers.
func (uc *SchedulingUsecase) ListProviders(ctx context.Context) ([]*model.Provider, error) {
	return uc.providers.List(ctx)
}

var _ SchedulingUsecaseInterface = (*SchedulingUsecase)(nil)
