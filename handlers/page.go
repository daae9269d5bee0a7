package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gm-socius/review-restaurants/models"
	"github.com/gm-socius/review-restaurants/utils"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const indexTemplate = "index.tmpl"

var pageTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"rating": func(avg *float64) string { return fmt.Sprintf("%.1f", *avg) },
		"deref":  func(s *string) string { return *s },
	}).ParseFS(templateFS, "templates/*.tmpl"),
)

type indexPage struct {
	Restaurants   []models.RestaurantSummary
	Error         string
	MinStars      int
	MaxStars      int
	MaxNameLength int
}

// IndexPage renders the forms and the current restaurant listing.
func (h *Handler) IndexPage(c *gin.Context) {
	h.renderIndex(c, http.StatusOK, "")
}

// renderIndex re-queries the store and renders the page, with an inline
// error message when errMessage is set.
func (h *Handler) renderIndex(c *gin.Context, status int, errMessage string) {
	page := indexPage{
		Error:         errMessage,
		MinStars:      models.MinStars,
		MaxStars:      models.MaxStars,
		MaxNameLength: models.MaxRestaurantNameLength,
	}

	restaurants, err := h.Store.ListRestaurants(c.Request.Context())
	if err != nil {
		log.Printf("[%s] Failed to list restaurants: %v", utils.GetRequestID(c), err)
		status = http.StatusInternalServerError
		page.Error = "Could not load restaurants, please try again"
	}
	page.Restaurants = models.SummarizeAll(restaurants)

	c.HTML(status, indexTemplate, page)
}

func (h *Handler) renderFailure(c *gin.Context, action string, err error) {
	log.Printf("[%s] Failed to %s: %v", utils.GetRequestID(c), action, err)
	status, _, message := classifyError(err)
	h.renderIndex(c, status, message)
}

// redirectToIndex finishes a successful form submission. The browser then
// re-requests the page, which re-queries the listing.
func redirectToIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
