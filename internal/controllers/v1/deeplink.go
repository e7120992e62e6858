package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namecard/backend/internal/deeplink"
	"github.com/namecard/backend/internal/httputil"
	"github.com/namecard/backend/internal/models"
)

// RegisterDeeplinkRoutes registers the routes for deep link
// resolution with the RouterGroup that is passed.
func RegisterDeeplinkRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDeeplink)
	r.GET("", GetDeeplink)
}

type DeeplinkResponse struct {
	Data  []deeplink.Frame `json:"data"`                                           // The navigation stack the deep link resolves to
	Error *string          `json:"error" example:"the deep link could not be resolved"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Deeplinks
// @Success		204
// @Router			/v1/deeplink [options]
func OptionsDeeplink(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Resolve deep link
// @Description	Resolves a namecard:// URL into the navigation stack it requests
// @Tags			Deeplinks
// @Produce		json
// @Success		200	{object}	DeeplinkResponse
// @Failure		400	{object}	DeeplinkResponse
// @Failure		404	{object}	DeeplinkResponse
// @Param			url	query		string	true	"The deep link URL to resolve"
// @Router			/v1/deeplink [get]
func GetDeeplink(c *gin.Context) {
	raw := c.Query("url")
	if raw == "" {
		s := errDeeplinkURLMissing.Error()
		c.JSON(http.StatusBadRequest, DeeplinkResponse{
			Error: &s,
		})
		return
	}

	frames, ok := deeplink.Resolve(models.DB, raw)
	if !ok {
		s := errDeeplinkNotResolvable.Error()
		c.JSON(http.StatusNotFound, DeeplinkResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, DeeplinkResponse{Data: frames})
}
