package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"go.uber.org/fx"

	"tourwise/cmd/fx/account_fx"
	"tourwise/cmd/fx/config_fx"
	"tourwise/cmd/fx/controllers_fx"
	"tourwise/cmd/fx/dashboard"
	"tourwise/cmd/fx/db_fx"
	"tourwise/cmd/fx/itinerary_fx"
	"tourwise/cmd/fx/llm_fx"
	"tourwise/cmd/fx/memcache_fx"
	"tourwise/cmd/fx/route_fx"
	"tourwise/internal/api/controllers"
	"tourwise/internal/config"
	mem "tourwise/pkg/memcache"
	"tourwise/pkg/middleware"
	"tourwise/pkg/utils"
)

func main() {
	app := fx.New(
		config_fx.Module,
		db_fx.Module,
		llm_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		route_fx.Module,
		itinerary_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Infof("Starting HTTP server at %s", srv.Addr)
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type routerParams struct {
	fx.In

	Config      *config.Config
	JWT         *utils.JWTManager
	Limiter     *mem.LimiterStore
	Accounts    *controllers.AccountController
	AI          *controllers.AIItineraryController
	Itineraries *controllers.ItineraryController
	Routes      *controllers.RouteController
	Dashboard   *controllers.DashboardController
}

func ProvideRouter(p routerParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORS(p.Config.AllowedOrigins))

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p routerParams) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	auth := middleware.JWTAuthMiddleware(p.JWT)
	optional := middleware.OptionalJWTMiddleware(p.JWT)
	limited := middleware.RateLimitMiddleware(p.Limiter)

	accountGroup := api.Group("/accounts")
	accountGroup.POST("/register", p.Accounts.Register)
	accountGroup.POST("/login", p.Accounts.Login)

	aiGroup := api.Group("/ai", auth)
	aiGroup.POST("/itineraries/generate", limited, p.AI.Generate)
	aiGroup.GET("/itineraries", p.AI.List)
	aiGroup.GET("/itineraries/:id", p.AI.Get)
	aiGroup.PATCH("/itineraries/:id", p.AI.Update)
	aiGroup.DELETE("/itineraries/:id", p.AI.Delete)
	aiGroup.PATCH("/itineraries/:id/reorder", p.AI.Reorder)
	aiGroup.PATCH("/itineraries/:id/move", p.AI.Move)
	aiGroup.POST("/itineraries/:id/copy", p.AI.Copy)
	aiGroup.POST("/itineraries/:id/share", p.AI.Share)
	aiGroup.GET("/itineraries/:id/export", p.AI.Export)
	aiGroup.POST("/chatbot", limited, p.AI.Chatbot)

	itineraryGroup := api.Group("/itineraries", auth)
	itineraryGroup.POST("", p.Itineraries.CreateFromRoute)
	itineraryGroup.GET("", middleware.RoleMiddleware(utils.RoleAdmin), p.Itineraries.List)
	itineraryGroup.GET("/user/:userId", p.Itineraries.ListByUser)
	itineraryGroup.GET("/:id", p.Itineraries.Get)
	itineraryGroup.PATCH("/:id", p.Itineraries.Update)
	itineraryGroup.PATCH("/:id/visibility", p.Itineraries.ToggleVisibility)
	itineraryGroup.DELETE("/:id", p.Itineraries.Delete)

	routeGroup := api.Group("/routes")
	routeGroup.GET("", optional, p.Routes.List)
	routeGroup.GET("/:id", optional, p.Routes.Get)
	routeGroup.GET("/:id/qr", optional, p.Routes.QRCode)
	routeGroup.POST("", auth, p.Routes.Create)
	routeGroup.POST("/from-itinerary", auth, p.Routes.CreateFromItinerary)
	routeGroup.PATCH("/:id", auth, p.Routes.Update)
	routeGroup.DELETE("/:id", auth, p.Routes.Delete)
	routeGroup.POST("/:id/like", auth, p.Routes.Like)
	routeGroup.POST("/:id/fork", auth, p.Routes.Fork)

	adminGroup := api.Group("/admin", auth, middleware.RoleMiddleware(utils.RoleAdmin))
	adminGroup.GET("/dashboard", p.Dashboard.GetDashboard)
}
