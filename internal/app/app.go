package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/caseline/caseline/internal/cache"
	"github.com/caseline/caseline/internal/config"
	"github.com/caseline/caseline/internal/db"
	"github.com/caseline/caseline/internal/repository"
	"github.com/caseline/caseline/internal/service"
	"github.com/caseline/caseline/internal/storage"
)

type App struct {
	Cfg               *config.Config
	DB                *sqlx.DB
	Mongo             *db.Mongo
	Drafts            *cache.DraftStore
	SubmissionService *service.SubmissionService
	AttachmentService *service.AttachmentService
	DraftService      *service.DraftService
	EmailService      *service.EmailService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	// Relational bookkeeping database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Document store for submission aggregates
	mongo, err := db.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		return nil, err
	}

	err = mongo.EnsureIndexes(ctx)
	if err != nil {
		return nil, err
	}

	// Draft autosave cache
	drafts := cache.NewDraftStore(cfg.RedisAddr, cfg.RedisPassword, cfg.DraftTTL)
	err = drafts.Ping(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to draft cache: %v", err)
	}

	// Storage
	evidenceStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Repositories
	submissionRepository := repository.NewSubmissionRepository(mongo.SubmissionsCollection())
	uploadRepository := repository.NewUploadRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.StaffEmail,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	submissionService := service.NewSubmissionService(submissionRepository, emailService)
	attachmentService := service.NewAttachmentService(evidenceStorage, uploadRepository)
	draftService := service.NewDraftService(drafts)

	return &App{
		Cfg:               cfg,
		DB:                database,
		Mongo:             mongo,
		Drafts:            drafts,
		SubmissionService: submissionService,
		AttachmentService: attachmentService,
		DraftService:      draftService,
		EmailService:      emailService,
	}, nil
}

func (a *App) Close(ctx context.Context) error {
	if a.Drafts != nil {
		err := a.Drafts.Close()
		if err != nil {
			slog.Error("failed to close draft cache", "error", err)
		}
	}
	if a.Mongo != nil {
		err := a.Mongo.Close(ctx)
		if err != nil {
			slog.Error("failed to close document store", "error", err)
		}
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
