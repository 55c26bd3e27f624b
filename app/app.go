package app

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/backend"
	"grant-management-portal/internal/config"
	"grant-management-portal/internal/controller"
	"grant-management-portal/internal/navigation"
	"grant-management-portal/internal/service"
	"grant-management-portal/pkg/httpserver"
	"grant-management-portal/pkg/render"
)

type portal int

const (
	applicantPortal portal = iota
	adminPortal
)

func RunApplicant() {
	run(applicantPortal)
}

func RunAdmin() {
	run(adminPortal)
}

func run(p portal) {
	log, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("loading configuration", zap.Error(err))
	}

	clients := backend.NewClients(cfg.BackendHost, log)
	resolver := navigation.NewResolver(cfg.SubPath)
	validate := validator.New(validator.WithRequiredStructEnabled())
	services := service.NewServices(clients, resolver, validate, log)

	handler := echo.New()
	renderer, err := render.New("templates")
	if err != nil {
		log.Fatal("loading templates", zap.Error(err))
	}
	handler.Renderer = renderer

	log.Info("setting up routes")
	switch p {
	case applicantPortal:
		controller.SetupApplicantRoutes(handler, services, resolver, cfg, log)
	case adminPortal:
		controller.SetupAdminRoutes(handler, services, cfg, log)
	}

	log.Info("starting server", zap.String("address", cfg.ServerAddress))
	httpServer := httpserver.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		log.Info("got signal", zap.String("signal", s.String()))
	case err = <-httpServer.Notify():
		log.Error("server stopped", zap.Error(err))
	}

	log.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		log.Error("shutdown failed", zap.Error(err))

		return
	}
	log.Info("successful shutdown")
}
