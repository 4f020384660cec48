package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/yigit/homeroom/internal/app/auth"
	appControllers "github.com/yigit/homeroom/internal/app/controllers"
	appMigrations "github.com/yigit/homeroom/internal/app/migrations"
	"github.com/yigit/homeroom/internal/app/reporting"
	appRepos "github.com/yigit/homeroom/internal/app/repositories"
	appRoutes "github.com/yigit/homeroom/internal/app/routes"
	appServices "github.com/yigit/homeroom/internal/app/services"
	"github.com/yigit/homeroom/internal/config"
	"github.com/yigit/homeroom/internal/db"
	appMiddleware "github.com/yigit/homeroom/internal/middleware"
	pkgAuth "github.com/yigit/homeroom/internal/pkg/auth"
	"github.com/yigit/homeroom/internal/pkg/filestorage"
	"github.com/yigit/homeroom/internal/pkg/helpers"
	"github.com/yigit/homeroom/internal/pkg/logger"
	"github.com/yigit/homeroom/internal/pkg/validation"
	"github.com/yigit/homeroom/internal/pkg/websocket"
	"github.com/yigit/homeroom/internal/seed"
)

// DefaultConfigPath is read unless CONFIG_PATH points elsewhere
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService         *appServices.AuthService
	StudentService      *appServices.StudentService
	AttendanceService   *appServices.AttendanceService
	CounselingService   *appServices.CounselingService
	SemesterService     *appServices.SemesterService
	StatisticsService   *appServices.StatisticsService
	AnnouncementService *appServices.AnnouncementService
	Controllers         appRoutes.Controllers
	AuthMiddleware      *appMiddleware.AuthMiddleware
	Repos               *appRepos.Repositories
	JWTService          *pkgAuth.JWTService
	AuthzService        *appAuth.AuthorizationService
	Hub                 *websocket.Hub
	FileStorage         *filestorage.LocalStorage
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", DefaultConfigPath)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the first admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if config.GetEnvAsBool("SKIP_MIGRATIONS", false) {
		lgr.Warn().Msg("SKIP_MIGRATIONS set, not applying database migrations")
	} else if err := runMigrations(ctx, dbPool, lgr); err != nil {
		dbPool.Close()
		return nil, err
	}

	adminOpts := seed.AdminOptions{
		Email:    cfg.Seed.AdminEmail,
		Name:     cfg.Seed.AdminName,
		Password: cfg.Seed.AdminPassword,
	}
	if err := seed.CreateDefaultData(ctx, appRepos.NewUserRepository(dbPool), adminOpts, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// runMigrations applies the SQL files of the migrations directory
func runMigrations(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Running database migrations...")
	migrationsDir := config.GetEnv("MIGRATIONS_DIR", "migrations")
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	if err := validation.RegisterWithGin(); err != nil {
		return nil, fmt.Errorf("failed to register validation rules: %w", err)
	}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Hub = websocket.NewHub(lgr.With().Str("component", "hub").Logger())

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
	)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 12*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.AuthzService, lgr)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SemesterRepository,
		deps.AuthzService,
		deps.Hub,
		lgr,
	)
	deps.CounselingService = appServices.NewCounselingService(
		deps.Repos.CounselingRepository,
		deps.Repos.StudentRepository,
		deps.AuthzService,
		lgr,
	)
	deps.SemesterService = appServices.NewSemesterService(deps.Repos.SemesterRepository, lgr)
	deps.StatisticsService = appServices.NewStatisticsService(
		deps.Repos.StudentRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.CounselingRepository,
		deps.Repos.SemesterRepository,
		deps.AuthzService,
		appServices.StatisticsConfig{
			Location:                cfg.Location(),
			FallbackSemesterPeriods: cfg.Reporting.FallbackSemesterPeriods,
			FixedThreshold:          cfg.Reporting.FixedThreshold,
			RatioThreshold:          cfg.Reporting.RatioThreshold,
			RecentThreshold:         cfg.Reporting.RecentThreshold,
			Grade:                   reporting.DefaultGrade,
		},
		lgr,
	)
	deps.AnnouncementService = appServices.NewAnnouncementService(
		deps.Repos.AnnouncementRepository,
		deps.FileStorage,
		deps.Hub,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthzService)

	deps.Controllers = appRoutes.Controllers{
		Auth:         appControllers.NewAuthController(deps.AuthService, lgr),
		Student:      appControllers.NewStudentController(deps.StudentService, deps.AttendanceService, deps.CounselingService, deps.StatisticsService),
		Attendance:   appControllers.NewAttendanceController(deps.AttendanceService),
		Counseling:   appControllers.NewCounselingController(deps.CounselingService),
		Semester:     appControllers.NewSemesterController(deps.SemesterService, deps.StatisticsService.Today),
		Statistics:   appControllers.NewStatisticsController(deps.StatisticsService),
		Announcement: appControllers.NewAnnouncementController(deps.AnnouncementService, deps.StatisticsService),
		Events:       websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, lgr),
	}

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.CORS(cfg.Server.AllowedOrigins))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
