package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/amirasaad/yander/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()
	container, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testcontainers.TerminateContainer(container) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&widget{}))
	return db
}

func TestIntegration_RepositoryRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	db := startPostgres(t)
	ctx := context.Background()

	session := NewSession(db)
	repo := repository.New[*widget, string](NewSet[widget, string](session))
	uow := repository.NewUnitOfWork(session)

	repo.Add(&widget{ID: "1", Name: "Test1"})
	repo.Add(&widget{ID: "2", Name: "Test2"})
	n, err := uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	got, found, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Test1", got.Name)

	_, found, err = repo.GetByID(ctx, "999")
	require.NoError(t, err)
	assert.False(t, found)

	got.Name = "Renamed"
	repo.Update(got)
	repo.Delete(&widget{ID: "2"})
	n, err = uow.SaveChanges(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Renamed", all[0].Name)

	// A duplicate key aborts the whole batch.
	repo.Add(&widget{ID: "3", Name: "Test3"})
	repo.Add(&widget{ID: "1", Name: "dup"})
	_, err = uow.SaveChanges(ctx)
	require.Error(t, err)
	_, found, err = repo.GetByID(ctx, "3")
	require.NoError(t, err)
	assert.False(t, found)
}
