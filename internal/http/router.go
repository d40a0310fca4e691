package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fuelops/dispensing-service/internal/config"
	"github.com/fuelops/dispensing-service/internal/files"
	"github.com/fuelops/dispensing-service/internal/repo"
	"github.com/fuelops/dispensing-service/internal/service"
	"github.com/fuelops/dispensing-service/internal/token"
)

func Router(pool *pgxpool.Pool, cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())
	// permissive CORS for the operator frontend
	e.Use(middleware.CORS())
	e.Binder = StrictJSONBinder{}
	e.HTTPErrorHandler = DefaultHTTPErrorHandler

	// Swagger UI (включается флагом ENABLE_SWAGGER=true)
	if cfg.EnableSwagger {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	v1 := e.Group("/api/v1")
	v1.GET("/healthz", Healthz)
	v1.GET("/readyz", Readyz(pool))

	// DI: кодек, сервис и guard создаются один раз
	codec := token.NewCodec(cfg.TokenSecret, cfg.TokenIssuer, cfg.TokenAudience, cfg.TokenTTL)
	store := repo.NewStore(pool)
	clock := service.RealClock{}
	svc := service.New(store, files.NewDiskStore(cfg.UploadDir), clock)

	v1.POST("/login", Login(codec, cfg))

	records := v1.Group("/records", RequireToken(codec))
	records.GET("", ListRecords(svc))
	records.POST("", CreateRecord(svc))
	records.GET("/:id", GetRecord(svc))
	records.GET("/:id/download", DownloadRecordPDF(svc, clock))

	return e
}
