package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/namecard/backend/internal/directory"
	"github.com/namecard/backend/internal/httputil"
)

// RegisterDirectoryRoutes registers the routes for the people
// directory with the RouterGroup that is passed.
func RegisterDirectoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDirectory)
	r.GET("", GetDirectory)
}

type DirectoryResponse struct {
	Data  []directory.Person `json:"data"`                                                   // The people in the directory
	Error *string            `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Directory
// @Success		204
// @Router			/v1/directory [options]
func OptionsDirectory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get directory
// @Description	Returns the static people directory for the name card gallery
// @Tags			Directory
// @Produce		json
// @Success		200	{object}	DirectoryResponse
// @Router			/v1/directory [get]
func GetDirectory(c *gin.Context) {
	c.JSON(http.StatusOK, DirectoryResponse{
		Data: directory.People(),
	})
}
