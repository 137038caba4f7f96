package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpadp "loanbook-backend/internal/adapter/http"
	"loanbook-backend/internal/adapter/middleware"
	"loanbook-backend/internal/adapter/repository/mysql"
	"loanbook-backend/internal/config"
	"loanbook-backend/internal/infrastructure/cache"
	"loanbook-backend/internal/infrastructure/db"
	borroweruc "loanbook-backend/internal/usecase/borrower"
	loanuc "loanbook-backend/internal/usecase/loan"
	paymentuc "loanbook-backend/internal/usecase/payment"
	"loanbook-backend/internal/usecase/transition"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	guow := mysql.NewGormUoW(gdb)
	borrowerRepo := mysql.NewBorrowerRepository(gdb)

	transitionUC := transition.NewUsecase(guow, transition.Config{
		MinCreditScore: cfg.MinCreditScore,
		MaxDTIRatio:    cfg.MaxDTIRatio,
	})
	loanUC := loanuc.NewUsecase(guow)
	borrowerUC := borroweruc.NewUsecase(borrowerRepo)
	paymentUC := paymentuc.NewUsecase(guow)

	h := httpadp.NewHandler()
	loanH := httpadp.NewLoanHandler(loanUC)
	borrowerH := httpadp.NewBorrowerHandler(borrowerUC)
	paymentH := httpadp.NewPaymentHandler(paymentUC)
	transitionH := httpadp.NewTransitionHandler(transitionUC)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("", middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	api.POST("/borrowers", borrowerH.CreateBorrower)
	api.GET("/borrowers/:borrower_id", borrowerH.GetBorrower)
	api.POST("/loans", loanH.CreateLoan)
	api.GET("/loans/:loan_id", loanH.GetLoan)
	api.GET("/loans/:loan_id/events", loanH.ListEvents)
	api.GET("/loans/:loan_id/transitions", transitionH.AvailableTransitions)
	api.POST("/loans/:loan_id/transition", transitionH.Transition)
	api.POST("/loans/:loan_id/payments", paymentH.RecordPayment)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
