package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gm-socius/review-restaurants/models"
	"github.com/gm-socius/review-restaurants/utils"
)

// CreateRestaurantRequest defines the request body (JSON) for adding a restaurant
type CreateRestaurantRequest struct {
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url"`
}

// CreateRestaurantForm is the add-restaurant form on the index page.
type CreateRestaurantForm struct {
	Name     string `form:"name"`
	ImageURL string `form:"image_url"`
}

func (h *Handler) ListRestaurantsHandler(c *gin.Context) {
	restaurants, err := h.Store.ListRestaurants(c.Request.Context())
	if err != nil {
		log.Printf("[%s] Failed to list restaurants: %v", utils.GetRequestID(c), err)
		status, code, message := classifyError(err)
		utils.JSONError(c, status, code, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{"restaurants": models.SummarizeAll(restaurants)})
}

func (h *Handler) CreateRestaurantHandler(c *gin.Context) {
	var request CreateRestaurantRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.JSONError(c, http.StatusBadRequest, errCodeInvalidInput, "JSON error: "+err.Error())
		return
	}

	restaurant, err := h.Store.AddRestaurant(c.Request.Context(), request.Name, request.ImageURL)
	if err != nil {
		log.Printf("[%s] Failed to create restaurant %q: %v", utils.GetRequestID(c), request.Name, err)
		status, code, message := classifyError(err)
		utils.JSONError(c, status, code, message)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"restaurant": models.Summarize(*restaurant)})
}

func (h *Handler) SeedSampleDataHandler(c *gin.Context) {
	if err := h.Store.SeedSampleData(c.Request.Context()); err != nil {
		log.Printf("[%s] Failed to seed sample data: %v", utils.GetRequestID(c), err)
		status, code, message := classifyError(err)
		utils.JSONError(c, status, code, message)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Sample data added"})
}

// SubmitRestaurant handles the add-restaurant form.
func (h *Handler) SubmitRestaurant(c *gin.Context) {
	var form CreateRestaurantForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderIndex(c, http.StatusBadRequest, "Could not read the restaurant form: "+err.Error())
		return
	}

	if _, err := h.Store.AddRestaurant(c.Request.Context(), form.Name, &form.ImageURL); err != nil {
		h.renderFailure(c, "create restaurant", err)
		return
	}

	redirectToIndex(c)
}

// SubmitSampleData handles the "Add sample data" button.
func (h *Handler) SubmitSampleData(c *gin.Context) {
	if err := h.Store.SeedSampleData(c.Request.Context()); err != nil {
		h.renderFailure(c, "seed sample data", err)
		return
	}

	redirectToIndex(c)
}
