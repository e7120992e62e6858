package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/namecard/backend/internal/controllers/v1"
	"github.com/namecard/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestWidgetOptions() {
	tests := []string{
		"http://example.com/v1/widget/random-contact",
		"http://example.com/v1/widget/category-distribution",
		"http://example.com/v1/widget/summary",
	}

	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

// TestWidgetRandomContactEmpty verifies that an empty store yields a
// successful response with null data.
func (suite *TestSuiteStandard) TestWidgetRandomContactEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/widget/random-contact", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WidgetContactResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Nil(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestWidgetRandomContact() {
	contact := createTestContact(suite.T(), v1.ContactEditable{FirstName: "John"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/widget/random-contact", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WidgetContactResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), contact.Data.ID, response.Data.ID, "with a single contact in the store the draw is deterministic")
	assert.NotEmpty(suite.T(), response.Data.Links.Self)
}

func (suite *TestSuiteStandard) TestWidgetCategoryDistribution() {
	work := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Work"})
	_ = createTestContact(suite.T(), v1.ContactEditable{FirstName: "John", CategoryID: &work.Data.ID})
	_ = createTestContact(suite.T(), v1.ContactEditable{FirstName: "Anna"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/widget/category-distribution", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WidgetDistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Work", response.Data[0].Name)
	assert.Equal(suite.T(), 1, response.Data[0].Count)
	assert.True(suite.T(), response.Data[0].Percentage.IsPositive())
}

func (suite *TestSuiteStandard) TestWidgetSummary() {
	_ = createTestContact(suite.T(), v1.ContactEditable{})
	_ = createTestContact(suite.T(), v1.ContactEditable{})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/widget/summary", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.WidgetSummaryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(2), response.Data.TotalContacts)
}

// TestWidgetDBClosed verifies that all widget endpoints report database
// errors.
func (suite *TestSuiteStandard) TestWidgetDBClosed() {
	suite.CloseDB()

	tests := []string{
		"http://example.com/v1/widget/random-contact",
		"http://example.com/v1/widget/category-distribution",
		"http://example.com/v1/widget/summary",
	}

	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusInternalServerError)
		})
	}
}
