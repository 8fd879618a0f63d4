package sync_test

import (
	"context"
	"testing"

	"products-api/feature/sync"
	"products-api/feature/sync/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestReconcileBatchDatabaseFault(t *testing.T) {
	db, mock := setupMockDB(t)
	r := sync.NewReconciler(db, zap.NewNop())

	// Lookup blows up inside the per-record transaction
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT \\* FROM `products`").
		WillReturnError(gorm.ErrInvalidDB)
	mock.ExpectRollback()

	report := r.ReconcileBatch(context.Background(), []models.ExternalRecord{
		{ExternalID: "1", Name: "Unlucky", Price: 10},
	})

	assert.Equal(t, 1, report.Fetched)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 0, report.Created)
	assert.Len(t, report.Errors, 1)
	assert.Equal(t, "1", report.Errors[0].ExternalID)
	assert.Contains(t, report.Errors[0].Reason, "looking up product")

	assert.NoError(t, mock.ExpectationsWereMet())
}
