package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "loanflow-backend/internal/adapter/http"
	"loanflow-backend/internal/adapter/middleware"
	"loanflow-backend/internal/adapter/repository/mysql"
	"loanflow-backend/internal/config"
	userDomain "loanflow-backend/internal/domain/user"
	"loanflow-backend/internal/infrastructure/cache"
	"loanflow-backend/internal/infrastructure/db"
	approvalUC "loanflow-backend/internal/usecase/approval"
	authUC "loanflow-backend/internal/usecase/auth"
	loanUC "loanflow-backend/internal/usecase/loan"
	repaymentUC "loanflow-backend/internal/usecase/repayment"
	statsUC "loanflow-backend/internal/usecase/stats"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	loans := mysql.NewLoanRepository(gdb)
	repayments := mysql.NewRepaymentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	tx := mysql.NewGormUoW(gdb)

	// usecases
	secret := []byte(cfg.JWTSecret)
	authSvc := authUC.NewUsecase(users, secret, time.Duration(cfg.JWTTTLHours)*time.Hour)
	loanSvc := loanUC.NewUsecase(loans, repayments, users, tx, cfg.PolicyAnnualRate)
	approvalSvc := approvalUC.NewUsecase(tx, cfg.AmortizationMode)
	repaymentSvc := repaymentUC.NewUsecase(loans, repayments)
	statsSvc := statsUC.NewUsecase(loans)

	// handlers
	h := httpadp.NewHandler()
	authH := httpadp.NewAuthHandler(authSvc)
	loanH := httpadp.NewLoanHandler(loanSvc, repaymentSvc)
	adminH := httpadp.NewAdminHandler(loanSvc, approvalSvc, repaymentSvc, statsSvc, users)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", authH.Register)
	authGroup.POST("/login", authH.Login)

	jwt := middleware.JWT(secret)
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	loansGroup := api.Group("/loans", jwt)
	loansGroup.POST("", loanH.Apply, idemp)
	loansGroup.GET("/my", loanH.MyLoans)
	loansGroup.GET("/:loan_id", loanH.GetLoan)
	loansGroup.GET("/:loan_id/repayments", loanH.GetRepayments)

	admin := api.Group("/admin", jwt, middleware.RequireRole(string(userDomain.RoleAdmin)))
	admin.GET("/stats", adminH.Stats)
	admin.GET("/loans", adminH.Loans)
	admin.GET("/customers", adminH.Customers)
	admin.PUT("/loans/:loan_id/approve", adminH.Approve, idemp)
	admin.PUT("/loans/:loan_id/reject", adminH.Reject, idemp)
	admin.PUT("/repayments/:repayment_id/pay", adminH.MarkRepaymentPaid, idemp)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
