package v1

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/namecard/backend/internal/httputil"
	"github.com/namecard/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// RegisterContactRoutes registers the routes for contacts with
// the RouterGroup that is passed.
func RegisterContactRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsContactList)
		r.GET("", GetContacts)
		r.POST("", CreateContacts)
	}

	// Contact with ID
	{
		r.OPTIONS("/:id", OptionsContactDetail)
		r.GET("/:id", GetContact)
		r.PATCH("/:id", UpdateContact)
		r.DELETE("/:id", DeleteContact)
	}

	// vCard export
	{
		r.OPTIONS("/:id/vcard", OptionsContactVCard)
		r.GET("/:id/vcard", GetContactVCard)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contacts
// @Success		204
// @Router			/v1/contacts [options]
func OptionsContactList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contacts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contacts/{id} [options]
func OptionsContactDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Contact{})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Contacts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contacts/{id}/vcard [options]
func OptionsContactVCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Contact{}, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Create contact
// @Description	Creates a new contact
// @Tags			Contacts
// @Produce		json
// @Success		201			{object}	ContactCreateResponse
// @Failure		400			{object}	ContactCreateResponse
// @Failure		404			{object}	ContactCreateResponse
// @Failure		500			{object}	ContactCreateResponse
// @Param			contacts	body		[]ContactEditable	true	"Contacts"
// @Router			/v1/contacts [post]
func CreateContacts(c *gin.Context) {
	var editables []ContactEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ContactCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := ContactCreateResponse{}

	for _, editable := range editables {
		contact := editable.model()

		err = models.DB.Create(&contact).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newContact(c, contact)
		r.Data = append(r.Data, ContactResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get contacts
// @Description	Returns a list of contacts
// @Tags			Contacts
// @Produce		json
// @Success		200	{object}	ContactListResponse
// @Failure		400	{object}	ContactListResponse
// @Failure		500	{object}	ContactListResponse
// @Router			/v1/contacts [get]
// @Param			name			query	string	false	"Filter by name"
// @Param			search			query	string	false	"Glob pattern matched against name, email, phone and organization"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			uncategorized	query	bool	false	"Only return contacts without a category"
// @Param			cardStyle		query	string	false	"Filter by card style"
// @Param			offset			query	uint	false	"The offset of the first Contact returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Contacts to return. Defaults to 50."
func GetContacts(c *gin.Context) {
	var filter ContactQueryFilter

	// Every parameter is bound into a string, so this will always succeed
	_ = c.Bind(&filter)

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	filterModel := filter.model()

	q := models.DB.
		Order("last_name ASC, first_name ASC").
		Where(&filterModel, queryFields...)

	if filter.Uncategorized {
		q = q.Where("category_id IS NULL")
	}

	if filter.Name != "" {
		q = q.Where("first_name || ' ' || last_name LIKE ?", fmt.Sprintf("%%%s%%", filter.Name))
	} else if slices.Contains(setFields, "Name") {
		q = q.Where("first_name = '' AND last_name = ''")
	}

	var contacts []models.Contact
	err := q.Find(&contacts).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactListResponse{
			Error: &s,
		})
		return
	}

	// The search filter uses glob matching, which SQLite does not
	// support in a case insensitive way, so it is applied here
	if filter.Search != "" {
		matched := make([]models.Contact, 0)
		for _, contact := range contacts {
			if matchesSearch(contact, filter.Search) {
				matched = append(matched, contact)
			}
		}
		contacts = matched
	}

	count := int64(len(contacts))

	// Set the offset. Does not need checking since the default is 0
	if int(filter.Offset) < len(contacts) {
		contacts = contacts[filter.Offset:]
	} else {
		contacts = []models.Contact{}
	}

	// Default to 50 Contacts and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	if limit >= 0 && limit < len(contacts) {
		contacts = contacts[:limit]
	}

	data := make([]Contact, 0)
	for _, contact := range contacts {
		data = append(data, newContact(c, contact))
	}

	c.JSON(http.StatusOK, ContactListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// matchesSearch reports whether the contact matches the glob pattern.
// Patterns without a wildcard are wrapped so that they match anywhere.
func matchesSearch(contact models.Contact, pattern string) bool {
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}
	pattern = strings.ToLower(pattern)

	for _, field := range []string{contact.FullName(), contact.Email, contact.Phone, contact.Organization} {
		if glob.Glob(pattern, strings.ToLower(field)) {
			return true
		}
	}

	return false
}

// @Summary		Get contact
// @Description	Returns a specific contact
// @Tags			Contacts
// @Produce		json
// @Success		200	{object}	ContactResponse
// @Failure		400	{object}	ContactResponse
// @Failure		404	{object}	ContactResponse
// @Failure		500	{object}	ContactResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contacts/{id} [get]
func GetContact(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	var contact models.Contact
	err = models.DB.First(&contact, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	data := newContact(c, contact)
	c.JSON(http.StatusOK, ContactResponse{Data: &data})
}

// @Summary		Get vCard
// @Description	Returns the contact as a vCard 3.0 document
// @Tags			Contacts
// @Produce		plain
// @Success		200	{string}	string
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contacts/{id}/vcard [get]
func GetContactVCard(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contact models.Contact
	err = models.DB.First(&contact, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "text/vcard; charset=utf-8", []byte(contact.VCard()))
}

// @Summary		Update contact
// @Description	Update an existing contact. Only values to be updated need to be specified.
// @Tags			Contacts
// @Accept			json
// @Produce		json
// @Success		200		{object}	ContactResponse
// @Failure		400		{object}	ContactResponse
// @Failure		404		{object}	ContactResponse
// @Failure		500		{object}	ContactResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			contact	body		ContactEditable	true	"Contact"
// @Router			/v1/contacts/{id} [patch]
func UpdateContact(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	var contact models.Contact
	err = models.DB.First(&contact, uri.ID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, ContactEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	var data ContactEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	err = models.DB.Model(&contact).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ContactResponse{
			Error: &s,
		})
		return
	}

	r := newContact(c, contact)
	c.JSON(http.StatusOK, ContactResponse{Data: &r})
}

// @Summary		Delete contact
// @Description	Deletes a contact
// @Tags			Contacts
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/contacts/{id} [delete]
func DeleteContact(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var contact models.Contact
	err = models.DB.First(&contact, uri.ID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&contact).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
