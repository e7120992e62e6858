package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/namecard/backend/internal/models"
	ez_uuid "github.com/namecard/backend/internal/uuid"
)

type ContactEditable struct {
	FirstName    string `json:"firstName" example:"John" default:""`                                // First name
	LastName     string `json:"lastName" example:"Smith" default:""`                                // Last name
	Title        string `json:"title" example:"Software Engineer" default:""`                       // Job title
	Organization string `json:"organization" example:"TechCorp Inc." default:""`                    // Organization or company
	Email        string `json:"email" example:"john.smith@techcorp.com" default:""`                 // Email address
	Phone        string `json:"phone" example:"+1-555-0101" default:""`                             // Phone number
	Address      string `json:"address" example:"123 Tech Street, San Francisco, CA 94102" default:""` // Postal address
	Website      string `json:"website" example:"https://techcorp.com" default:""`                  // Website URL
	Department   string `json:"department" example:"Engineering" default:""`                        // Department within the organization

	DateAdded time.Time `json:"dateAdded" example:"2025-08-02T19:28:44.491514Z"` // When the contact was added. Defaults to the current time.

	CategoryID *uuid.UUID       `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91d71772f"` // ID of the category, null for uncategorized contacts
	CardStyle  models.CardStyle `json:"cardStyle" example:"classic" default:"classic"`             // The name card rendering for this contact
}

// model returns the database resource for the API representation of the editable fields
func (editable ContactEditable) model() models.Contact {
	return models.Contact{
		FirstName:    editable.FirstName,
		LastName:     editable.LastName,
		Title:        editable.Title,
		Organization: editable.Organization,
		Email:        editable.Email,
		Phone:        editable.Phone,
		Address:      editable.Address,
		Website:      editable.Website,
		Department:   editable.Department,
		DateAdded:    editable.DateAdded,
		CategoryID:   editable.CategoryID,
		CardStyle:    editable.CardStyle,
	}
}

type ContactLinks struct {
	Self  string `json:"self" example:"https://example.com/api/v1/contacts/d430d7c3-d14c-4712-9336-ee56965a6673"`       // The contact itself
	VCard string `json:"vcard" example:"https://example.com/api/v1/contacts/d430d7c3-d14c-4712-9336-ee56965a6673/vcard"` // The vCard for the contact
}

// Contact is the representation of a Contact in API v1.
type Contact struct {
	models.DefaultModel
	ContactEditable
	Links ContactLinks `json:"links"`

	// These fields are computed
	DisplayName string `json:"displayName" example:"JOHN SMITH"` // Full name in upper case, as rendered on the name card
}

// newContact returns the API v1 representation of the resource
func newContact(c *gin.Context, model models.Contact) Contact {
	url := c.GetString(string(models.DBContextURL))

	return Contact{
		DefaultModel: model.DefaultModel,
		ContactEditable: ContactEditable{
			FirstName:    model.FirstName,
			LastName:     model.LastName,
			Title:        model.Title,
			Organization: model.Organization,
			Email:        model.Email,
			Phone:        model.Phone,
			Address:      model.Address,
			Website:      model.Website,
			Department:   model.Department,
			DateAdded:    model.DateAdded,
			CategoryID:   model.CategoryID,
			CardStyle:    model.CardStyle,
		},
		Links: ContactLinks{
			Self:  fmt.Sprintf("%s/v1/contacts/%s", url, model.ID),
			VCard: fmt.Sprintf("%s/v1/contacts/%s/vcard", url, model.ID),
		},
		DisplayName: model.DisplayName(),
	}
}

type ContactListResponse struct {
	Data       []Contact   `json:"data"`                                                          // List of contacts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ContactCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ContactResponse `json:"data"`                                                          // List of created Contacts
}

func (t *ContactCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, ContactResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ContactResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this contact
	Data  *Contact `json:"data"`                                                          // The Contact data, if creation was successful
}

type ContactQueryFilter struct {
	Name          string           `form:"name" filterField:"false"`          // Full name contains this string
	Search        string           `form:"search" filterField:"false"`        // Glob pattern matched against name, email, phone and organization
	CategoryID    ez_uuid.UUID     `form:"category"`                          // ID of the category
	Uncategorized bool             `form:"uncategorized" filterField:"false"` // Only return contacts without a category
	CardStyle     models.CardStyle `form:"cardStyle"`                         // The name card rendering
	Offset        uint             `form:"offset" filterField:"false"`        // The offset of the first Contact returned. Defaults to 0.
	Limit         int              `form:"limit" filterField:"false"`         // Maximum number of Contacts to return. Defaults to 50.
}

func (f ContactQueryFilter) model() models.Contact {
	// If the categoryID is nil, use an actual nil, not uuid.Nil
	var cID *uuid.UUID
	if f.CategoryID != ez_uuid.Nil {
		cID = &f.CategoryID.UUID
	}

	// This does not set the string fields since they are
	// handled in the controller function
	return ContactEditable{
		CategoryID: cID,
		CardStyle:  f.CardStyle,
	}.model()
}
