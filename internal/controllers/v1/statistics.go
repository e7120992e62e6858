package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namecard/backend/internal/directory"
	"github.com/namecard/backend/internal/httputil"
	"github.com/namecard/backend/internal/models"
	"github.com/namecard/backend/internal/stats"
	"github.com/shopspring/decimal"
)

// RegisterStatisticsRoutes registers the routes for statistics with
// the RouterGroup that is passed.
func RegisterStatisticsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsStatistics)
		r.GET("", GetStatistics)
	}

	{
		r.OPTIONS("/types", OptionsTypeDistribution)
		r.GET("/types", GetTypeDistribution)
	}
}

// CategoryDistributionData is a category distribution bucket together
// with its share of all contacts.
type CategoryDistributionData struct {
	stats.CategoryData
	Percentage decimal.Decimal `json:"percentage" example:"25"` // Share of all contacts in percent
}

// FieldCompletenessData is a field completeness row together with the
// completeness in percent.
type FieldCompletenessData struct {
	stats.FieldCompletenessData
	Percentage decimal.Decimal `json:"percentage" example:"70.6"` // Completeness in percent
}

// Statistics is the aggregate chart data for the statistics screen.
type Statistics struct {
	TotalContacts         int64                      `json:"totalContacts" example:"17"`  // Number of contacts in the store
	TotalCategories       int64                      `json:"totalCategories" example:"8"` // Number of categories in the store
	CategoryDistribution  []CategoryDistributionData `json:"categoryDistribution"`        // Contacts per category
	ContactsAddedOverTime []stats.TimeSeriesData     `json:"contactsAddedOverTime"`       // Contacts added per calendar month
	FieldCompleteness     []FieldCompletenessData    `json:"fieldCompleteness"`           // How complete the contact records are
}

type StatisticsResponse struct {
	Data  *Statistics `json:"data"`                                                   // The statistics data
	Error *string     `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

type TypeDistributionResponse struct {
	Data  []stats.ContactTypeData `json:"data"`                                                   // People in the directory per type
	Error *string                 `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/statistics [options]
func OptionsStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Statistics
// @Success		204
// @Router			/v1/statistics/types [options]
func OptionsTypeDistribution(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get statistics
// @Description	Returns the aggregate chart data for all contacts and categories
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	StatisticsResponse
// @Failure		500	{object}	StatisticsResponse
// @Router			/v1/statistics [get]
func GetStatistics(c *gin.Context) {
	contacts, err := models.Contacts(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatisticsResponse{
			Error: &s,
		})
		return
	}

	categories, err := models.Categories(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), StatisticsResponse{
			Error: &s,
		})
		return
	}

	data := Statistics{
		TotalContacts:         int64(len(contacts)),
		TotalCategories:       int64(len(categories)),
		CategoryDistribution:  categoryDistribution(contacts, categories),
		ContactsAddedOverTime: stats.ContactsAddedOverTime(contacts),
		FieldCompleteness:     fieldCompleteness(contacts),
	}

	c.JSON(http.StatusOK, StatisticsResponse{Data: &data})
}

// @Summary		Get type distribution
// @Description	Returns the number of people in the directory per person type
// @Tags			Statistics
// @Produce		json
// @Success		200	{object}	TypeDistributionResponse
// @Router			/v1/statistics/types [get]
func GetTypeDistribution(c *gin.Context) {
	c.JSON(http.StatusOK, TypeDistributionResponse{
		Data: stats.TypeDistribution(directory.People()),
	})
}

func categoryDistribution(contacts []models.Contact, categories []models.Category) []CategoryDistributionData {
	distribution := stats.CategoryDistribution(contacts, categories)

	data := make([]CategoryDistributionData, 0, len(distribution))
	for _, bucket := range distribution {
		data = append(data, CategoryDistributionData{
			CategoryData: bucket,
			Percentage:   bucket.Percentage(len(contacts)),
		})
	}

	return data
}

func fieldCompleteness(contacts []models.Contact) []FieldCompletenessData {
	completeness := stats.FieldCompleteness(contacts)

	data := make([]FieldCompletenessData, 0, len(completeness))
	for _, row := range completeness {
		data = append(data, FieldCompletenessData{
			FieldCompletenessData: row,
			Percentage:            row.Percentage(),
		})
	}

	return data
}
