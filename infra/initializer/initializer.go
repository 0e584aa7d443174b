package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/yander/infra"
	"github.com/amirasaad/yander/infra/store/gormstore"
	"github.com/amirasaad/yander/infra/store/mongostore"
	"github.com/amirasaad/yander/pkg/app"
	"github.com/amirasaad/yander/pkg/config"
	"github.com/amirasaad/yander/pkg/domain/note"
	"github.com/amirasaad/yander/pkg/repository"
	notesvc "github.com/amirasaad/yander/pkg/service/note"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// NotesCollection is the MongoDB collection holding notes.
const NotesCollection = "notes"

// InitializeDependencies sets up logging and opens the store selected in cfg.
func InitializeDependencies(ctx context.Context, cfg *config.App) (*app.Deps, error) {
	logger := setupLogger(cfg.Log)
	deps := &app.Deps{Logger: logger}

	switch cfg.Store.Driver {
	case config.DriverMongo:
		db, err := infra.NewMongoDatabase(ctx, cfg.Mongo)
		if err != nil {
			logger.Error("Failed to connect to mongo", "error", err)
			return nil, err
		}
		deps.Notes = mongoNotes(db, logger)
		deps.Close = db.Client().Disconnect
	default:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := db.WithContext(ctx).AutoMigrate(&note.Note{}); err != nil {
				return nil, fmt.Errorf("failed to migrate notes: %w", err)
			}
		}
		deps.Notes = gormNotes(db, logger)
		deps.Close = func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
	}
	logger.Info("Store initialized", "driver", cfg.Store.Driver)
	return deps, nil
}

func gormNotes(db *gorm.DB, logger *slog.Logger) app.NoteScope {
	return func() *notesvc.Service {
		scope := repository.NewScope(gormstore.NewSession(db))
		return notesvc.New(gormstore.NewSet[note.Note, uuid.UUID](scope.Session), scope.UoW, logger)
	}
}

func mongoNotes(db *mongo.Database, logger *slog.Logger) app.NoteScope {
	return func() *notesvc.Service {
		scope := repository.NewScope(mongostore.NewSession(db))
		return notesvc.New(mongostore.NewCollection[note.Note, uuid.UUID](scope.Session, NotesCollection), scope.UoW, logger)
	}
}
