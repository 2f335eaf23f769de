// api/service/catalog_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/hazard/api/audit"
	"github.com/dev-mohitbeniwal/hazard/api/dao"
	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	logger "github.com/dev-mohitbeniwal/hazard/api/logging"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/util"
)

// ICatalogService defines the interface for observation and mitigation catalog operations
type ICatalogService interface {
	CreateObservationType(ctx context.Context, observationType model.ObservationType) (*model.ObservationType, error)
	GetObservationType(ctx context.Context, typeID string) (*model.ObservationType, error)
	ListObservationTypes(ctx context.Context) ([]model.ObservationType, error)
	UpdateObservationType(ctx context.Context, typeID string, observationType model.ObservationType) (*model.ObservationType, error)
	DeleteObservationType(ctx context.Context, typeID string) error
	CreateObservationValue(ctx context.Context, value model.ObservationValue) (*model.ObservationValue, error)
	ListObservationValues(ctx context.Context, typeID string) ([]model.ObservationValue, error)
	UpdateObservationValue(ctx context.Context, valueID string, value model.ObservationValue) (*model.ObservationValue, error)
	DeleteObservationValue(ctx context.Context, valueID string) error

	CreateMitigationType(ctx context.Context, mitigationType model.MitigationType) (*model.MitigationType, error)
	GetMitigationType(ctx context.Context, typeID string) (*model.MitigationType, error)
	ListMitigationTypes(ctx context.Context) ([]model.MitigationType, error)
	UpdateMitigationType(ctx context.Context, typeID string, mitigationType model.MitigationType) (*model.MitigationType, error)
	DeleteMitigationType(ctx context.Context, typeID string) error
	CreateMitigationValue(ctx context.Context, value model.MitigationValue) (*model.MitigationValue, error)
	ListMitigationValues(ctx context.Context, typeID string) ([]model.MitigationValue, error)
	UpdateMitigationValue(ctx context.Context, valueID string, value model.MitigationValue) (*model.MitigationValue, error)
	DeleteMitigationValue(ctx context.Context, valueID string) error

	SeedCatalog(ctx context.Context, seed *util.CatalogSeed) (*SeedSummary, error)
}

// SeedSummary counts the catalog entries written by SeedCatalog
type SeedSummary struct {
	ObservationTypes  int `json:"observation_types"`
	ObservationValues int `json:"observation_values"`
	MitigationTypes   int `json:"mitigation_types"`
	MitigationValues  int `json:"mitigation_values"`
}

type CatalogService struct {
	store          dao.CatalogStore
	validationUtil *util.ValidationUtil
	auditService   audit.Service
}

func NewCatalogService(store dao.CatalogStore, validationUtil *util.ValidationUtil, auditService audit.Service) *CatalogService {
	return &CatalogService{
		store:          store,
		validationUtil: validationUtil,
		auditService:   auditService,
	}
}

func (s *CatalogService) CreateObservationType(ctx context.Context, observationType model.ObservationType) (*model.ObservationType, error) {
	if err := s.validationUtil.ValidateObservationType(observationType); err != nil {
		return nil, err
	}
	created, err := s.store.CreateObservationType(ctx, observationType)
	if err != nil {
		logger.Error("Error creating observation type", zap.Error(err), zap.String("name", observationType.Name))
		return nil, fmt.Errorf("failed to create observation type: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionCreate, audit.EntityCatalog, created.ID, created))
	return created, nil
}

func (s *CatalogService) GetObservationType(ctx context.Context, typeID string) (*model.ObservationType, error) {
	observationType, err := s.store.GetObservationType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get observation type: %w", err)
	}
	return observationType, nil
}

func (s *CatalogService) ListObservationTypes(ctx context.Context) ([]model.ObservationType, error) {
	types, err := s.store.ListObservationTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list observation types: %w", err)
	}
	return types, nil
}

// UpdateObservationType replaces the editable fields of an existing type. The
// id and creation time are kept.
func (s *CatalogService) UpdateObservationType(ctx context.Context, typeID string, observationType model.ObservationType) (*model.ObservationType, error) {
	existing, err := s.store.GetObservationType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get observation type: %w", err)
	}
	observationType.ID = existing.ID
	observationType.CreatedAt = existing.CreatedAt
	if err := s.validationUtil.ValidateObservationType(observationType); err != nil {
		return nil, err
	}

	updated, err := s.store.CreateObservationType(ctx, observationType)
	if err != nil {
		logger.Error("Error updating observation type", zap.Error(err), zap.String("observationTypeID", typeID))
		return nil, fmt.Errorf("failed to update observation type: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionUpdate, audit.EntityCatalog, updated.ID, map[string]interface{}{
		"old": existing,
		"new": updated,
	}))
	return updated, nil
}

// DeleteObservationType removes the type and every value scoped to it
func (s *CatalogService) DeleteObservationType(ctx context.Context, typeID string) error {
	if err := s.store.DeleteObservationType(ctx, typeID); err != nil {
		return fmt.Errorf("failed to delete observation type: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionDelete, audit.EntityCatalog, typeID, nil))
	return nil
}

func (s *CatalogService) CreateObservationValue(ctx context.Context, value model.ObservationValue) (*model.ObservationValue, error) {
	if err := s.validationUtil.ValidateObservationValue(value); err != nil {
		return nil, err
	}
	created, err := s.store.CreateObservationValue(ctx, value)
	if err != nil {
		logger.Error("Error creating observation value", zap.Error(err), zap.String("observationTypeID", value.ObservationTypeID))
		return nil, fmt.Errorf("failed to create observation value: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionCreate, audit.EntityCatalog, created.ID, created))
	return created, nil
}

func (s *CatalogService) ListObservationValues(ctx context.Context, typeID string) ([]model.ObservationValue, error) {
	values, err := s.store.ListObservationValues(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list observation values: %w", err)
	}
	return values, nil
}

// UpdateObservationValue replaces the text of an existing value. A value
// cannot move to another type.
func (s *CatalogService) UpdateObservationValue(ctx context.Context, valueID string, value model.ObservationValue) (*model.ObservationValue, error) {
	found, err := s.store.GetObservationValues(ctx, []string{valueID})
	if err != nil {
		return nil, fmt.Errorf("failed to get observation value: %w", err)
	}
	if len(found) == 0 {
		return nil, hazard_errors.ErrObservationValueNotFound
	}
	existing := found[0]
	value.ID = existing.ID
	value.ObservationTypeID = existing.ObservationTypeID
	value.CreatedAt = existing.CreatedAt
	if err := s.validationUtil.ValidateObservationValue(value); err != nil {
		return nil, err
	}

	updated, err := s.store.CreateObservationValue(ctx, value)
	if err != nil {
		logger.Error("Error updating observation value", zap.Error(err), zap.String("observationValueID", valueID))
		return nil, fmt.Errorf("failed to update observation value: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionUpdate, audit.EntityCatalog, updated.ID, map[string]interface{}{
		"old": existing,
		"new": updated,
	}))
	return updated, nil
}

func (s *CatalogService) DeleteObservationValue(ctx context.Context, valueID string) error {
	if err := s.store.DeleteObservationValue(ctx, valueID); err != nil {
		return fmt.Errorf("failed to delete observation value: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionDelete, audit.EntityCatalog, valueID, nil))
	return nil
}

func (s *CatalogService) CreateMitigationType(ctx context.Context, mitigationType model.MitigationType) (*model.MitigationType, error) {
	if err := s.validationUtil.ValidateMitigationType(mitigationType); err != nil {
		return nil, err
	}
	created, err := s.store.CreateMitigationType(ctx, mitigationType)
	if err != nil {
		logger.Error("Error creating mitigation type", zap.Error(err), zap.String("name", mitigationType.Name))
		return nil, fmt.Errorf("failed to create mitigation type: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionCreate, audit.EntityCatalog, created.ID, created))
	return created, nil
}

func (s *CatalogService) GetMitigationType(ctx context.Context, typeID string) (*model.MitigationType, error) {
	mitigationType, err := s.store.GetMitigationType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mitigation type: %w", err)
	}
	return mitigationType, nil
}

func (s *CatalogService) ListMitigationTypes(ctx context.Context) ([]model.MitigationType, error) {
	types, err := s.store.ListMitigationTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list mitigation types: %w", err)
	}
	return types, nil
}

func (s *CatalogService) UpdateMitigationType(ctx context.Context, typeID string, mitigationType model.MitigationType) (*model.MitigationType, error) {
	existing, err := s.store.GetMitigationType(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mitigation type: %w", err)
	}
	mitigationType.ID = existing.ID
	mitigationType.CreatedAt = existing.CreatedAt
	if err := s.validationUtil.ValidateMitigationType(mitigationType); err != nil {
		return nil, err
	}

	updated, err := s.store.CreateMitigationType(ctx, mitigationType)
	if err != nil {
		logger.Error("Error updating mitigation type", zap.Error(err), zap.String("mitigationTypeID", typeID))
		return nil, fmt.Errorf("failed to update mitigation type: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionUpdate, audit.EntityCatalog, updated.ID, map[string]interface{}{
		"old": existing,
		"new": updated,
	}))
	return updated, nil
}

func (s *CatalogService) DeleteMitigationType(ctx context.Context, typeID string) error {
	if err := s.store.DeleteMitigationType(ctx, typeID); err != nil {
		return fmt.Errorf("failed to delete mitigation type: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionDelete, audit.EntityCatalog, typeID, nil))
	return nil
}

func (s *CatalogService) CreateMitigationValue(ctx context.Context, value model.MitigationValue) (*model.MitigationValue, error) {
	if err := s.validationUtil.ValidateMitigationValue(value); err != nil {
		return nil, err
	}
	created, err := s.store.CreateMitigationValue(ctx, value)
	if err != nil {
		logger.Error("Error creating mitigation value", zap.Error(err), zap.String("mitigationTypeID", value.MitigationTypeID))
		return nil, fmt.Errorf("failed to create mitigation value: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionCreate, audit.EntityCatalog, created.ID, created))
	return created, nil
}

func (s *CatalogService) ListMitigationValues(ctx context.Context, typeID string) ([]model.MitigationValue, error) {
	values, err := s.store.ListMitigationValues(ctx, typeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list mitigation values: %w", err)
	}
	return values, nil
}

func (s *CatalogService) UpdateMitigationValue(ctx context.Context, valueID string, value model.MitigationValue) (*model.MitigationValue, error) {
	existing, err := s.store.GetMitigationValue(ctx, valueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get mitigation value: %w", err)
	}
	value.ID = existing.ID
	value.MitigationTypeID = existing.MitigationTypeID
	value.CreatedAt = existing.CreatedAt
	if err := s.validationUtil.ValidateMitigationValue(value); err != nil {
		return nil, err
	}

	updated, err := s.store.CreateMitigationValue(ctx, value)
	if err != nil {
		logger.Error("Error updating mitigation value", zap.Error(err), zap.String("mitigationValueID", valueID))
		return nil, fmt.Errorf("failed to update mitigation value: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionUpdate, audit.EntityCatalog, updated.ID, map[string]interface{}{
		"old": existing,
		"new": updated,
	}))
	return updated, nil
}

func (s *CatalogService) DeleteMitigationValue(ctx context.Context, valueID string) error {
	if err := s.store.DeleteMitigationValue(ctx, valueID); err != nil {
		return fmt.Errorf("failed to delete mitigation value: %w", err)
	}
	recordAudit(ctx, s.auditService, audit.NewEntry(audit.ActionDelete, audit.EntityCatalog, valueID, nil))
	return nil
}

// SeedCatalog upserts every entry of seed. Entries keep their seed ids so
// running the same seed twice leaves the catalog unchanged.
func (s *CatalogService) SeedCatalog(ctx context.Context, seed *util.CatalogSeed) (*SeedSummary, error) {
	if err := seed.Validate(); err != nil {
		return nil, err
	}

	summary := &SeedSummary{}
	for _, seedType := range seed.ObservationTypes {
		observationType, err := s.CreateObservationType(ctx, seedType.Model())
		if err != nil {
			return summary, fmt.Errorf("observation type %s: %w", seedType.ID, err)
		}
		summary.ObservationTypes++

		for _, seedValue := range seedType.Values {
			if _, err := s.CreateObservationValue(ctx, seedValue.Model(observationType.ID)); err != nil {
				return summary, fmt.Errorf("observation value %s: %w", seedValue.ID, err)
			}
			summary.ObservationValues++
		}
	}

	for _, seedType := range seed.MitigationTypes {
		mitigationType, err := s.CreateMitigationType(ctx, seedType.Model())
		if err != nil {
			return summary, fmt.Errorf("mitigation type %s: %w", seedType.ID, err)
		}
		summary.MitigationTypes++

		for _, seedValue := range seedType.Values {
			if _, err := s.CreateMitigationValue(ctx, seedValue.Model(mitigationType.ID)); err != nil {
				return summary, fmt.Errorf("mitigation value %s: %w", seedValue.ID, err)
			}
			summary.MitigationValues++
		}
	}

	logger.Info("Catalog seeded",
		zap.Int("observationTypes", summary.ObservationTypes),
		zap.Int("observationValues", summary.ObservationValues),
		zap.Int("mitigationTypes", summary.MitigationTypes),
		zap.Int("mitigationValues", summary.MitigationValues))
	return summary, nil
}
