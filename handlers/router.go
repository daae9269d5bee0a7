package handlers

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/gm-socius/review-restaurants/config"
	"github.com/gm-socius/review-restaurants/utils"
)

// NewRouter wires the HTML pages, their form actions and the JSON API.
func NewRouter(h *Handler, cfg config.Config) *gin.Engine {
	router := gin.Default()
	router.Use(utils.RequestID())

	if corsConfig, ok := corsConfigFor(cfg); ok {
		router.Use(cors.New(corsConfig))
	} else {
		log.Println("Warning: CORS_ALLOWED_ORIGINS not set. Cross-origin requests are not allowed.")
	}

	router.SetHTMLTemplate(pageTemplates)

	// --- Pages and form actions ---
	router.GET("/", h.IndexPage)
	router.POST("/restaurants", h.SubmitRestaurant)
	router.POST("/reviews", h.SubmitReview)
	router.POST("/reviews/delete", h.SubmitDeleteAllReviews)
	router.POST("/sample-data", h.SubmitSampleData)

	// --- JSON API ---
	api := router.Group("/api")
	{
		restaurantRoutes := api.Group("/restaurants")
		{
			restaurantRoutes.GET("", h.ListRestaurantsHandler)
			restaurantRoutes.POST("", h.CreateRestaurantHandler)
			restaurantRoutes.POST("/:restaurant_id/reviews", h.CreateReviewHandler)
		}

		api.DELETE("/reviews", h.DeleteAllReviewsHandler)
		api.POST("/sample-data", h.SeedSampleDataHandler)
	}

	return router
}

func corsConfigFor(cfg config.Config) (cors.Config, bool) {
	if cfg.IsDevelopment() {
		// Development: Allow all origins
		return cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept", utils.RequestIDHeader},
			ExposeHeaders:   []string{"Content-Length", utils.RequestIDHeader},
			MaxAge:          12 * time.Hour,
		}, true
	}

	if len(cfg.AllowedOrigins) == 0 {
		return cors.Config{}, false
	}

	return cors.Config{
		AllowOrigins:  cfg.AllowedOrigins,
		AllowMethods:  []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", utils.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", utils.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}, true
}
