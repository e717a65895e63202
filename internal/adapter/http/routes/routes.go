package routes

import (
	"context"
	"log"

	_ "barberapp/docs"
	"barberapp/internal/adapter/http/handlers"
	"barberapp/internal/adapter/http/middleware"
	"barberapp/internal/adminview"
	"barberapp/internal/infrastructure/config"
	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/infrastructure/latency"
	"barberapp/internal/infrastructure/metrics"
	"barberapp/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run(cfg *config.Config) {
	ctx := context.Background()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	lat := latency.New(cfg.LatencyMin, cfg.LatencyMax, cfg.LatencyFailureRate).
		WithObserver(metrics.NewStoreMetrics(reg))

	st, err := openStores(ctx, cfg, lat)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Printf("[storage][routes] warn close failed err=%v", err)
		}
	}()

	router := newRouter(cfg, st, reg)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// newRouter wires use cases, handlers and middlewares on top of st.
func newRouter(cfg *config.Config, st *stores, reg *prometheus.Registry) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, metrics.NewHTTPMetrics(reg))

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	tr := i18n.NewTranslator(cfg.DefaultLocale)

	catalogUseCase := usecase.NewServiceCatalogUseCase(st.services)
	appointmentUseCase := usecase.NewAppointmentUseCase(st.appointments, st.services)
	authUseCase := usecase.NewAuthUseCase(usecase.AuthConfig{
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		JWTSecret:     cfg.JWTSecret,
		TokenTTL:      cfg.JWTExpiry,
	})

	board := adminview.NewBoard(catalogUseCase)
	board.OnChange(func(a adminview.Action) {
		log.Printf("[admin][board] action=%s id=%s state=%s", a.Kind, a.ServiceID, a.State)
	})
	board.Refresh(context.Background())

	serviceHandler := handlers.NewServiceHandler(catalogUseCase, board, tr)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase, tr)
	authHandler := handlers.NewAuthHandler(authUseCase, tr)
	boardHandler := handlers.NewBoardHandler(board, tr)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addServiceRoutes(v1, serviceHandler)
	addAppointmentRoutes(v1, appointmentHandler)
	addAuthRoutes(v1, authHandler)

	admin := v1.Group(PathAdmin, middleware.AdminJWT(authUseCase, tr))
	addAdminRoutes(admin, serviceHandler, appointmentHandler, boardHandler)

	return router
}

func setMiddlewares(router *gin.Engine, httpMetrics *metrics.HTTPMetrics) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(httpMetrics.Middleware())
}
