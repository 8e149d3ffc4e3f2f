package bootstrap

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/selim/coursereg/internal/app/controllers"
	appRepos "github.com/selim/coursereg/internal/app/repositories"
	appRoutes "github.com/selim/coursereg/internal/app/routes"
	appServices "github.com/selim/coursereg/internal/app/services"
	"github.com/selim/coursereg/internal/app/store"
	"github.com/selim/coursereg/internal/config"
	appMiddleware "github.com/selim/coursereg/internal/middleware"
	pkgAuth "github.com/selim/coursereg/internal/pkg/auth"
	"github.com/selim/coursereg/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store             *store.Store
	EnrollmentService *appServices.EnrollmentService
	AuthService       *appServices.AuthService
	AuthController    *appControllers.AuthController
	CourseController  *appControllers.CourseController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the CSV-backed repositories and loads the entity store.
// This is the single store-initialization point: every persisted record is
// read here, and an empty catalog is seeded before the store is handed out.
func SetupStore(cfg *config.Config, lgr zerolog.Logger) (*store.Store, error) {
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Opening data directory...")

	repos, err := appRepos.NewRepositories(cfg.Storage.DataDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to open data directory")
		return nil, err
	}

	st := store.NewStore(repos, lgr)
	if err := st.Load(); err != nil {
		lgr.Error().Err(err).Msg("Failed to load store")
		return nil, fmt.Errorf("store load failed: %w", err)
	}

	return st, nil
}

// BuildDependencies initializes application services, controllers, and middleware.
func BuildDependencies(cfg *config.Config, st *store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: st, Logger: lgr}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		SessionTokenExp: cfg.SessionTokenExpiration(),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.EnrollmentService = appServices.NewEnrollmentService(st, lgr)
	deps.AuthService = appServices.NewAuthService(deps.EnrollmentService, deps.JWTService, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.SessionTokenExpiration(), lgr)
	deps.CourseController = appControllers.NewCourseController(deps.EnrollmentService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}
