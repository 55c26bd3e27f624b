package controller

import (
	"github.com/labstack/echo"
	"go.uber.org/zap"

	"grant-management-portal/internal/config"
	"grant-management-portal/internal/middleware"
	"grant-management-portal/internal/navigation"
	"grant-management-portal/internal/service"
)

// SetupApplicantRoutes mounts the applicant portal: submission wizard, mandatory
// questions and the outcome/error pages.
func SetupApplicantRoutes(handler *echo.Echo, services *service.Services, resolver *navigation.Resolver, cfg *config.Config, log *zap.Logger) {
	handler.Use(middleware.RequestLogger(log))
	handler.Use(middleware.Session(cfg, log))
	handler.Use(middleware.CSRF(cfg))

	root := handler.Group(cfg.SubPath)
	newErrorPagesHandler(root, cfg)
	newSubmissionRoutesHandler(root, services, resolver, cfg, log)
	newQuestionRoutesHandler(root, services, resolver, cfg, log)
	newMandatoryQuestionRoutesHandler(root, services, resolver, cfg, log)
}

// SetupAdminRoutes mounts the admin portal: scheme builder, advert builder and
// the delete utilities. The advert builder sits behind its feature flag.
func SetupAdminRoutes(handler *echo.Echo, services *service.Services, cfg *config.Config, log *zap.Logger) {
	handler.Use(middleware.RequestLogger(log))
	handler.Use(middleware.Session(cfg, log))
	handler.Use(middleware.CSRF(cfg))

	root := handler.Group(cfg.SubPath)
	newErrorPagesHandler(root, cfg)
	newSchemeRoutesHandler(root, services, cfg, log)
	newAdvertRoutesHandler(root, services, cfg, log)
}
