// Package router sets up the gin router with all middlewares and routes.
package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/bookkeeper-app/backend/internal/controllers/healthz"
	v1 "github.com/bookkeeper-app/backend/internal/controllers/v1"
	"github.com/bookkeeper-app/backend/internal/httputil"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// This is set at build time, see Makefile.
var version = "0.0.0"

// Router sets up the router with all middlewares and routes.
func Router(db *gorm.DB) (*gin.Engine, error) {
	r := gin.New()

	// Don’t process X-Forwarded-For header as we do not do anything with
	// client IPs
	r.ForwardedByClientIP = false

	// Send a HTTP 405 (Method not allowed) for all paths where there is
	// a handler, but not for the specific method used
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(MetricsMiddleware())
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			// The middleware already attaches method, path, status,
			// latency and user agent
			return l.With().
				Str("request-id", requestid.Get(c)).
				Logger()
		})))

	// CORS settings
	allowOrigins, ok := os.LookupEnv("CORS_ALLOW_ORIGINS")
	if ok {
		log.Debug().Str("allowOrigins", allowOrigins).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     strings.Fields(allowOrigins),
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type"},
			AllowCredentials: true,
		}))
	}

	// Disable the gin debug route printing as it clutters logs (and test logs)
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, numHandlers int) {}

	// Don’t trust any proxy. We do not process any client IPs,
	// therefore we don’t need to trust anyone here.
	_ = r.SetTrustedProxies([]string{})

	/*
	 *  Route setup
	 */
	r.GET("", GetRoot)
	r.OPTIONS("", OptionsRoot)
	r.GET("/version", GetVersion)
	r.OPTIONS("/version", OptionsVersion)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// pprof performance profiles
	enablePprof, ok := os.LookupEnv("ENABLE_PPROF")
	if ok && enablePprof == "true" {
		pprof.Register(r, "debug/pprof")
	}

	healthz.Controller{DB: db}.RegisterRoutes(r.Group("/healthz"))

	// API v1 setup
	v1Group := r.Group("/v1")
	{
		v1Group.GET("", GetV1)
		v1Group.OPTIONS("", OptionsV1)
	}

	co := v1.NewController(db)
	co.RegisterAccountRoutes(v1Group.Group("/accounts"))
	co.RegisterCategoryRoutes(v1Group.Group("/categories"))
	co.RegisterBudgetRoutes(v1Group.Group("/budgets"))
	co.RegisterTransactionRoutes(v1Group.Group("/transactions"))
	co.RegisterMonthRoutes(v1Group.Group("/months"))
	co.RegisterExportRoutes(v1Group.Group("/export"))

	log.Info().Str("version", version).Msg("backend startup complete")

	return r, nil
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Healthz string `json:"healthz" example:"https://example.com/api/healthz"` // Application health
	Metrics string `json:"metrics" example:"https://example.com/api/metrics"` // Endpoint returning Prometheus metrics
	Version string `json:"version" example:"https://example.com/api/version"` // Endpoint returning the software version
	V1      string `json:"v1" example:"https://example.com/api/v1"`           // List of v1 endpoints
}

// @Summary		API root
// @Description	Entrypoint for the API, listing all endpoints
// @Tags			General
// @Success		200	{object}	RootResponse
// @Router			/ [get]
func GetRoot(c *gin.Context) {
	url := httputil.RequestHost(c)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Healthz: url + "/healthz",
			Metrics: url + "/metrics",
			Version: url + "/version",
			V1:      httputil.RequestPathV1(c),
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}
type VersionObject struct {
	Version string `json:"version" example:"1.1.0"`
}

// @Summary		API version
// @Description	Returns the software version of the API
// @Tags			General
// @Success		200	{object}	VersionResponse
// @Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}

type V1Response struct {
	Links V1Links `json:"links"`
}

type V1Links struct {
	Accounts     string `json:"accounts" example:"https://example.com/api/v1/accounts"`         // URL of account endpoints
	Categories   string `json:"categories" example:"https://example.com/api/v1/categories"`     // URL of category endpoints
	Budgets      string `json:"budgets" example:"https://example.com/api/v1/budgets"`           // URL of budget endpoints
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of transaction endpoints
	Months       string `json:"months" example:"https://example.com/api/v1/months"`             // URL of month report endpoints
	Export       string `json:"export" example:"https://example.com/api/v1/export"`             // URL of the export endpoint
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			General
// @Success		200	{object}	V1Response
// @Router			/v1 [get]
func GetV1(c *gin.Context) {
	c.JSON(http.StatusOK, V1Response{
		Links: V1Links{
			Accounts:     httputil.RequestPathV1(c) + "/accounts",
			Categories:   httputil.RequestPathV1(c) + "/categories",
			Budgets:      httputil.RequestPathV1(c) + "/budgets",
			Transactions: httputil.RequestPathV1(c) + "/transactions",
			Months:       httputil.RequestPathV1(c) + "/months",
			Export:       httputil.RequestPathV1(c) + "/export",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/v1 [options]
func OptionsV1(c *gin.Context) {
	httputil.OptionsGet(c)
}
