package v1_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/namecard/backend/internal/controllers/v1"
	"github.com/namecard/backend/internal/deeplink"
	"github.com/namecard/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDeeplinkOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/deeplink", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDeeplinkStatistics() {
	r := test.Request(suite.T(), http.MethodGet, deeplinkPath("namecard://statistics"), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DeeplinkResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 1)
	assert.Equal(suite.T(), deeplink.FrameKindStatistics, response.Data[0].Kind)
}

// TestDeeplinkContact verifies that a link to a categorized contact
// resolves to the category frame below the contact frame.
func (suite *TestSuiteStandard) TestDeeplinkContact() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Work"})
	contact := createTestContact(suite.T(), v1.ContactEditable{FirstName: "John", CategoryID: &category.Data.ID})

	r := test.Request(suite.T(), http.MethodGet, deeplinkPath(fmt.Sprintf("namecard://contact/%s", contact.Data.ID)), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DeeplinkResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)

	assert.Equal(suite.T(), deeplink.FrameKindCategory, response.Data[0].Kind)
	require.NotNil(suite.T(), response.Data[0].Category)
	assert.Equal(suite.T(), category.Data.ID, response.Data[0].Category.ID)

	assert.Equal(suite.T(), deeplink.FrameKindContact, response.Data[1].Kind)
	require.NotNil(suite.T(), response.Data[1].Contact)
	assert.Equal(suite.T(), contact.Data.ID, response.Data[1].Contact.ID)
}

func (suite *TestSuiteStandard) TestDeeplinkFails() {
	tests := []struct {
		name   string
		url    string
		status int
	}{
		{"Missing url parameter", "", http.StatusBadRequest},
		{"Wrong scheme", "https://contact/3b1ea324-d438-4419-882a-2fc91d71772f", http.StatusNotFound},
		{"Unknown host", "namecard://settings", http.StatusNotFound},
		{"Not a UUID", "namecard://contact/john-smith", http.StatusNotFound},
		{"Contact does not exist", fmt.Sprintf("namecard://contact/%s", uuid.New()), http.StatusNotFound},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := "http://example.com/v1/deeplink"
			if tt.url != "" {
				path = deeplinkPath(tt.url)
			}

			r := test.Request(t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DeeplinkResponse
			test.DecodeResponse(t, &r, &response)
			assert.NotNil(t, response.Error)
		})
	}
}

func deeplinkPath(link string) string {
	return fmt.Sprintf("http://example.com/v1/deeplink?url=%s", url.QueryEscape(link))
}
