package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "nbfc-underwriting/internal/adapter/http"
	"nbfc-underwriting/internal/adapter/middleware"
	"nbfc-underwriting/internal/adapter/provider/sandbox"
	"nbfc-underwriting/internal/adapter/repository/mysql"
	"nbfc-underwriting/internal/config"
	applicationDomain "nbfc-underwriting/internal/domain/application"
	auditDomain "nbfc-underwriting/internal/domain/audit"
	"nbfc-underwriting/internal/infrastructure/cache"
	"nbfc-underwriting/internal/infrastructure/db"
	applicationUC "nbfc-underwriting/internal/usecase/application"
	underwritingUC "nbfc-underwriting/internal/usecase/underwriting"
	verificationUC "nbfc-underwriting/internal/usecase/verification"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := gdb.AutoMigrate(&applicationDomain.Application{}, &auditDomain.Entry{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories + unit of work
	appRepo := mysql.NewApplicationRepository(gdb)
	auditRepo := mysql.NewAuditRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// external collaborators (sandbox implementations)
	provider := sandbox.NewProvider()
	analyzer := sandbox.NewAnalyzer()
	detector := sandbox.NewDetector()

	// use cases
	appUC := applicationUC.NewUsecase(appRepo, analyzer, tx)
	uwUC := underwritingUC.NewUsecase(appRepo, auditRepo, tx)
	verUC := verificationUC.NewUsecase(appRepo, provider, detector, tx)

	// handlers
	h := httpadp.NewHandler()
	appH := httpadp.NewApplicationHandler(appUC)
	uwH := httpadp.NewUnderwritingHandler(uwUC)
	verH := httpadp.NewVerificationHandler(verUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())
	e.Use(middleware.IdempotencyMiddleware(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))

	// routes
	e.GET("/health", h.Health)

	e.POST("/applications", appH.CreateApplication)
	e.GET("/applications", appH.ListApplications)
	e.GET("/applications/:application_id", appH.GetApplication)
	e.POST("/applications/:application_id/submit", appH.SubmitApplication)

	e.POST("/applications/:application_id/verify/pan", verH.VerifyPAN)
	e.POST("/applications/:application_id/verify/aadhaar", verH.VerifyAadhaar)
	e.POST("/applications/:application_id/verify/liveness", verH.CheckLiveness)

	e.PATCH("/applications/:application_id/video-kyc", uwH.UpdateVideoKyc)
	e.POST("/applications/:application_id/decision", uwH.DecideApplication)
	e.GET("/applications/:application_id/recommendation", uwH.GetRecommendation)
	e.GET("/applications/:application_id/audit", uwH.GetAuditTrail)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
