package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"eduai/docs"
	"eduai/internal/audit"
	"eduai/internal/auth"
	"eduai/internal/cache"
	"eduai/internal/config"
	"eduai/internal/db"
	"eduai/internal/handler"
	"eduai/internal/identity"
	"eduai/internal/mail"
	"eduai/internal/repository"
	"eduai/internal/router"
	"eduai/internal/service"
)

// @title EduAI API
// @version 1.0
// @description Back office for the EduAI learning automation extension.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	if err := db.Migrate(gormDB, cfg.ResetDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 2*time.Second)
	if err := cacheClient.Ping(pingCtx); err != nil {
		log.Printf("redis unavailable, running without cache: %v", err)
	}
	cancelPing()

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	planRepo := repository.NewPlanRepository(gormDB)
	noticeRepo := repository.NewNoticeRepository(gormDB)
	inquiryRepo := repository.NewInquiryRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	auditRepo := repository.NewAuditRepository(gormDB)

	// Auth
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	resolver := identity.NewResolver(jwtService, tokenStore, userRepo)

	auditWriter := audit.NewWriter(auditRepo, cfg.AuditBuffer)
	defer auditWriter.Close()

	var sender mail.Sender
	if resend := mail.NewResendSender(cfg.ResendAPIKey); resend != nil {
		sender = resend
	} else {
		log.Println("RESEND_API_KEY not set, mail endpoints will fail")
	}

	// Services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	userService := service.NewUserService(userRepo, resolver, tokenStore, auditWriter)
	entitlementService := service.NewEntitlementService(planRepo, userRepo, resolver, cacheClient, cfg.PlanCacheTTL, auditWriter)
	planService := service.NewPlanService(planRepo, userRepo, entitlementService, resolver, auditWriter)
	noticeService := service.NewNoticeService(noticeRepo, resolver)
	inquiryService := service.NewInquiryService(inquiryRepo, resolver)
	reviewService := service.NewReviewService(reviewRepo, resolver)
	paymentService := service.NewPaymentService(paymentRepo, resolver, auditWriter)
	mailService := service.NewMailService(sender, service.MailConfig{
		From:         cfg.MailFrom,
		ContactEmail: cfg.ContactEmail,
		InquiryEmail: cfg.InquiryEmail,
	})

	e := echo.New()
	router.Register(e, cfg, resolver, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Me:        handler.NewMeHandler(userService, entitlementService),
		Notices:   handler.NewNoticeHandler(noticeService),
		Inquiries: handler.NewInquiryHandler(inquiryService),
		Reviews:   handler.NewReviewHandler(reviewService),
		Plans:     handler.NewPlanHandler(entitlementService),
		Admin:     handler.NewAdminUserHandler(userService, entitlementService, planService),
		Payments:  handler.NewPaymentHandler(paymentService),
		Mail:      handler.NewMailHandler(mailService),
	})

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
		swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		if host == cfg.SwaggerHost {
			swaggerURL = "http://" + swaggerURL
		}
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
