package sync

import (
	"context"
	"errors"
	"fmt"

	productmodels "products-api/feature/product/models"
	"products-api/feature/sync/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Report tallies the outcome of reconciling a batch of external records.
// Created + Updated + Failed always equals Fetched.
type Report struct {
	Fetched int
	Created int
	Updated int
	Failed  int
	Errors  []models.RecordError
}

// Reconciler applies external records to the local products table by
// external ID.
type Reconciler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewReconciler creates a new reconciler.
func NewReconciler(db *gorm.DB, logger *zap.Logger) *Reconciler {
	return &Reconciler{db: db, logger: logger}
}

// ReconcileBatch upserts one page of records. Each record commits in its own
// transaction, so a failing record never rolls back or aborts the rest of the
// batch. An identical record still counts as updated; the pass is idempotent.
func (r *Reconciler) ReconcileBatch(ctx context.Context, records []models.ExternalRecord) Report {
	report := Report{Fetched: len(records)}

	for _, record := range records {
		created, err := r.upsert(ctx, record)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, models.RecordError{
				ExternalID: record.ExternalID,
				Reason:     err.Error(),
			})
			r.logger.Warn("Record reconciliation failed",
				zap.String("external_id", record.ExternalID),
				zap.Error(err))
			continue
		}
		if created {
			report.Created++
		} else {
			report.Updated++
		}
	}

	return report
}

// upsert creates or updates the product matching the record's external ID.
func (r *Reconciler) upsert(ctx context.Context, record models.ExternalRecord) (created bool, err error) {
	if record.ExternalID == "" {
		return false, fmt.Errorf("record has no external id")
	}
	if record.Price < 0 {
		return false, fmt.Errorf("negative price %.2f", record.Price)
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing productmodels.Product
		lookupErr := tx.Where("external_id = ?", record.ExternalID).First(&existing).Error

		if errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			externalID := record.ExternalID
			product := productmodels.Product{
				Name:        record.Name,
				Description: record.Description,
				Price:       record.Price,
				Category:    record.Category,
				ExternalID:  &externalID,
			}
			if createErr := tx.Create(&product).Error; createErr != nil {
				return fmt.Errorf("creating product: %w", createErr)
			}
			created = true
			return nil
		}
		if lookupErr != nil {
			return fmt.Errorf("looking up product: %w", lookupErr)
		}

		existing.Name = record.Name
		existing.Description = record.Description
		existing.Price = record.Price
		existing.Category = record.Category
		if saveErr := tx.Save(&existing).Error; saveErr != nil {
			return fmt.Errorf("updating product: %w", saveErr)
		}
		return nil
	})

	return created, err
}
