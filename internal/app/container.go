package app

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/domain"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/config"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/auth"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/database"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/notifications"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/repositories"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/infrastructure/storage"
	"github.com/MogudumpuramNikitha/MOGUDUMUPURAMNIKITHA/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client
	FileStore   domain.FileStore

	// Repositories
	UserRepo       domain.UserRepository
	TestRepo       domain.TestRepository
	SubmissionRepo domain.SubmissionRepository
	AttemptRepo    domain.AttemptRepository

	// Services
	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	CredGen         domain.CredentialGenerator
	NotificationSvc domain.NotificationService
	RegistrationSvc domain.RegistrationService
	AuthSvc         domain.AuthService
	TestSvc         domain.TestService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(); err != nil {
		return nil, err
	}
	if err := c.initRedis(ctx); err != nil {
		return nil, err
	}
	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	c.initRepositories()
	c.initServices()
	return c, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		return err
	}
	c.DB = db
	return nil
}

func (c *Container) initRedis(ctx context.Context) error {
	rdb := database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB)
	if err := rdb.Healthy(ctx); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.RedisClient = rdb.Client
	return nil
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.StorageBackend {
	case "s3":
		store, err := storage.NewS3Store(ctx, storage.S3Config{
			Bucket: c.Config.S3Bucket,
			Region: c.Config.S3Region,
			Prefix: c.Config.S3Prefix,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize s3 storage: %w", err)
		}
		c.FileStore = store
	default:
		store, err := storage.NewLocalStore(c.Config.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize local storage: %w", err)
		}
		c.FileStore = store
	}
	return nil
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.TestRepo = repositories.NewTestRepository(c.DB)
	c.SubmissionRepo = repositories.NewSubmissionRepository(c.DB)
	// Zero TTL: submission marks never age out, the unique index is
	// the durable backstop either way.
	c.AttemptRepo = repositories.NewAttemptRepository(c.RedisClient, 0)
}

func (c *Container) initServices() {
	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.TokenTTL)
	c.CredGen = auth.NewCredentialGenerator()
	c.NotificationSvc = notifications.NewService(
		notifications.SMTPConfig{
			Host:     c.Config.SMTPHost,
			Port:     c.Config.SMTPPort,
			Username: c.Config.SMTPUsername,
			Password: c.Config.SMTPPassword,
			From:     c.Config.SMTPFrom,
		},
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
		c.Logger,
	)

	c.RegistrationSvc = services.NewRegistrationService(
		c.UserRepo, c.PasswordSvc, c.CredGen, c.FileStore, c.NotificationSvc, c.Logger,
	)
	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Logger)
	c.TestSvc = services.NewTestService(c.TestRepo, c.SubmissionRepo, c.AttemptRepo, c.Logger)
}

// Close releases held connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			return err
		}
	}
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
	return nil
}
