// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"userregistry/internal/delivery/http/middleware"
	"userregistry/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RegistrantHandler *handler.RegistrantHandler
	DataLoadHandler   *handler.DataLoadHandler
	GeographyHandler  *handler.GeographyHandler
	AuthMiddleware    *middleware.AuthMiddleware
	LoggerMiddleware  *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	registrantHandler *handler.RegistrantHandler
	dataLoadHandler   *handler.DataLoadHandler
	geographyHandler  *handler.GeographyHandler
	authMiddleware    *middleware.AuthMiddleware
	loggerMiddleware  *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		registrantHandler: params.RegistrantHandler,
		dataLoadHandler:   params.DataLoadHandler,
		geographyHandler:  params.GeographyHandler,
		authMiddleware:    params.AuthMiddleware,
		loggerMiddleware:  params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The legacy endpoint names are kept so existing clients stay working.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Anonymous login endpoints
	e.POST("/login", r.authHandler.Login)
	e.POST("/signin-google", r.authHandler.GoogleLogin)

	authenticate := r.authMiddleware.Authenticate
	authorize := r.authMiddleware.Authorize

	// Account administration
	e.POST("/create-auth-user", r.authHandler.CreateAccount,
		authenticate, authorize(middleware.OpCreateAccount))
	e.GET("/get-auth-users", r.authHandler.ListAccounts,
		authenticate, authorize(middleware.OpListAccounts))
	e.PUT("/update-auth-user/:id", r.authHandler.UpdateAccount,
		authenticate, authorize(middleware.OpUpdateAccount))
	e.DELETE("/delete-auth-user/:id", r.authHandler.DeleteAccount,
		authenticate, authorize(middleware.OpDeleteAccount))
	e.PUT("/authorize-login/:id", r.authHandler.ApproveAccount,
		authenticate, authorize(middleware.OpApproveAccount))
	e.PUT("/approve-user/:id", r.authHandler.ApproveAccount,
		authenticate, authorize(middleware.OpApproveAccount))
	e.PUT("/change-role/:id", r.authHandler.ChangeRole,
		authenticate, authorize(middleware.OpChangeRole))

	// Registry records
	usersGroup := e.Group("/users", authenticate)
	{
		usersGroup.POST("", r.registrantHandler.Create, authorize(middleware.OpCreateRegistrant))
		usersGroup.GET("", r.registrantHandler.List, authorize(middleware.OpReadRegistrant))
		usersGroup.GET("/:id", r.registrantHandler.Get, authorize(middleware.OpReadRegistrant))
		usersGroup.PUT("/:id", r.registrantHandler.Update, authorize(middleware.OpUpdateRegistrant))
		usersGroup.DELETE("/:id", r.registrantHandler.Delete, authorize(middleware.OpDeleteRegistrant))
	}

	// Reference data loading and lookup
	e.POST("/load-data", r.dataLoadHandler.Load,
		authenticate, authorize(middleware.OpLoadReferenceData))
	e.GET("/countries", r.geographyHandler.ListCountries,
		authenticate, authorize(middleware.OpReadReferenceData))
	e.GET("/departments", r.geographyHandler.ListDepartments,
		authenticate, authorize(middleware.OpReadReferenceData))
	e.GET("/municipalities", r.geographyHandler.ListMunicipalities,
		authenticate, authorize(middleware.OpReadReferenceData))
}
