package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"routescout/cmd/fx/aifx"
	"routescout/cmd/fx/dbfx"
	"routescout/cmd/fx/discoveryfx"
	"routescout/cmd/fx/providersfx"
	"routescout/cmd/fx/routingfx"
	"routescout/internal/api/controllers"
	"routescout/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		dbfx.Module,
		routingfx.Module,
		aifx.Module,
		providersfx.Module,
		discoveryfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(discoveryController *controllers.DiscoveryController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, discoveryController)

	return r
}

func RegisterRoutes(r *gin.Engine, discoveryController *controllers.DiscoveryController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	discoveryGroup := r.Group("/discovery")
	discoveryGroup.POST("/route", discoveryController.DiscoverRoutePOIs)
}
