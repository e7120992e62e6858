package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namecard/backend/internal/httputil"
	"github.com/namecard/backend/internal/models"
)

// RegisterWidgetRoutes registers the routes for the home screen
// widgets with the RouterGroup that is passed.
func RegisterWidgetRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/random-contact", OptionsWidgetRandomContact)
		r.GET("/random-contact", GetWidgetRandomContact)
	}

	{
		r.OPTIONS("/category-distribution", OptionsWidgetCategoryDistribution)
		r.GET("/category-distribution", GetWidgetCategoryDistribution)
	}

	{
		r.OPTIONS("/summary", OptionsWidgetSummary)
		r.GET("/summary", GetWidgetSummary)
	}
}

type WidgetContactResponse struct {
	Data  *Contact `json:"data"`                                                   // A random contact, null when the store is empty
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type WidgetDistributionResponse struct {
	Data  []CategoryDistributionData `json:"data"`                                                   // Contacts per category
	Error *string                    `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// WidgetSummary is the payload for the summary widget.
type WidgetSummary struct {
	TotalContacts int64 `json:"totalContacts" example:"17"` // Number of contacts in the store
}

type WidgetSummaryResponse struct {
	Data  *WidgetSummary `json:"data"`                                                   // The summary data
	Error *string        `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Widgets
// @Success		204
// @Router			/v1/widget/random-contact [options]
func OptionsWidgetRandomContact(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Widgets
// @Success		204
// @Router			/v1/widget/category-distribution [options]
func OptionsWidgetCategoryDistribution(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Widgets
// @Success		204
// @Router			/v1/widget/summary [options]
func OptionsWidgetSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get random contact
// @Description	Returns a random contact for the featured contact widget. The data is null when the store is empty.
// @Tags			Widgets
// @Produce		json
// @Success		200	{object}	WidgetContactResponse
// @Failure		500	{object}	WidgetContactResponse
// @Router			/v1/widget/random-contact [get]
func GetWidgetRandomContact(c *gin.Context) {
	contact, err := models.RandomContact(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WidgetContactResponse{
			Error: &s,
		})
		return
	}

	// An empty store is a valid state for the widget
	if contact == nil {
		c.JSON(http.StatusOK, WidgetContactResponse{})
		return
	}

	data := newContact(c, *contact)
	c.JSON(http.StatusOK, WidgetContactResponse{Data: &data})
}

// @Summary		Get category distribution
// @Description	Returns the contact counts per category for the distribution widget
// @Tags			Widgets
// @Produce		json
// @Success		200	{object}	WidgetDistributionResponse
// @Failure		500	{object}	WidgetDistributionResponse
// @Router			/v1/widget/category-distribution [get]
func GetWidgetCategoryDistribution(c *gin.Context) {
	contacts, err := models.Contacts(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WidgetDistributionResponse{
			Error: &s,
		})
		return
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WidgetDistributionResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WidgetDistributionResponse{
		Data: categoryDistribution(contacts, categories),
	})
}

// @Summary		Get summary
// @Description	Returns the total contact count for the summary widget
// @Tags			Widgets
// @Produce		json
// @Success		200	{object}	WidgetSummaryResponse
// @Failure		500	{object}	WidgetSummaryResponse
// @Router			/v1/widget/summary [get]
func GetWidgetSummary(c *gin.Context) {
	count, err := models.TotalContactCount(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WidgetSummaryResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, WidgetSummaryResponse{
		Data: &WidgetSummary{TotalContacts: count},
	})
}
