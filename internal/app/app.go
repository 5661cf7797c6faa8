package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"gymdesk/internal/auth"
	"gymdesk/internal/config"
	"gymdesk/internal/db"
	admindomain "gymdesk/internal/domain/admin"
	memberdomain "gymdesk/internal/domain/member"
	paymentdomain "gymdesk/internal/domain/payment"
	plandomain "gymdesk/internal/domain/plan"
	adminrepo "gymdesk/internal/repository/postgres/admin"
	memberrepo "gymdesk/internal/repository/postgres/member"
	paymentrepo "gymdesk/internal/repository/postgres/payment"
	planrepo "gymdesk/internal/repository/postgres/plan"
	"gymdesk/internal/transport/httpserver"
	"gymdesk/internal/transport/httpserver/handler"
	"gymdesk/internal/transport/httpserver/middleware"
	"gymdesk/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	admins := admindomain.NewService(adminrepo.NewPostgres(dbConn))
	members := memberdomain.NewService(memberrepo.NewPostgres(dbConn))
	plans := plandomain.NewService(planrepo.NewPostgres(dbConn))
	payments := paymentdomain.NewService(paymentrepo.NewPostgres(dbConn), cfg.Payments.AllowedMethods)

	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL)
	session := middleware.NewSessionAuth(tokens)
	middleware.RegisterMetrics(prometheus.DefaultRegisterer)

	secureCookie := cfg.Env != "development"
	handlers := handler.New(admins, members, plans, payments, tokens, secureCookie, log)

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, handlers, session)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
