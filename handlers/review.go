package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gm-socius/review-restaurants/utils"
)

type CreateReviewRequest struct {
	Stars int    `json:"stars"`
	Body  string `json:"body"`
}

// CreateReviewForm is the leave-a-review form. Restaurants are selected by
// id because names are not unique.
type CreateReviewForm struct {
	RestaurantID uint   `form:"restaurant_id" binding:"required"`
	Stars        int    `form:"stars"`
	Body         string `form:"body"`
}

func (h *Handler) CreateReviewHandler(c *gin.Context) {
	restaurantID, err := strconv.ParseUint(c.Param("restaurant_id"), 10, 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, errCodeInvalidInput, "Invalid restaurant ID")
		return
	}

	var request CreateReviewRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.JSONError(c, http.StatusBadRequest, errCodeInvalidInput, "JSON error: "+err.Error())
		return
	}

	review, err := h.Store.AddReview(c.Request.Context(), uint(restaurantID), request.Stars, request.Body)
	if err != nil {
		log.Printf("[%s] Failed to create review for restaurant %d: %v", utils.GetRequestID(c), restaurantID, err)
		status, code, message := classifyError(err)
		utils.JSONError(c, status, code, message)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"review": review})
}

func (h *Handler) DeleteAllReviewsHandler(c *gin.Context) {
	deleted, err := h.Store.DeleteAllReviews(c.Request.Context())
	if err != nil {
		log.Printf("[%s] Failed to delete reviews: %v", utils.GetRequestID(c), err)
		status, code, message := classifyError(err)
		utils.JSONError(c, status, code, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// SubmitReview handles the leave-a-review form.
func (h *Handler) SubmitReview(c *gin.Context) {
	var form CreateReviewForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderIndex(c, http.StatusBadRequest, "Pick a restaurant and a star rating before submitting.")
		return
	}

	if _, err := h.Store.AddReview(c.Request.Context(), form.RestaurantID, form.Stars, form.Body); err != nil {
		h.renderFailure(c, "create review", err)
		return
	}

	redirectToIndex(c)
}

// SubmitDeleteAllReviews handles the maintenance button that wipes every
// review. There is no confirmation step.
func (h *Handler) SubmitDeleteAllReviews(c *gin.Context) {
	deleted, err := h.Store.DeleteAllReviews(c.Request.Context())
	if err != nil {
		h.renderFailure(c, "delete reviews", err)
		return
	}

	log.Printf("[%s] Deleted %d reviews", utils.GetRequestID(c), deleted)
	redirectToIndex(c)
}
