package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/namecard/backend/internal/controllers/v1"
	"github.com/namecard/backend/internal/stats"
	"github.com/namecard/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestStatisticsOptions() {
	tests := []string{
		"http://example.com/v1/statistics",
		"http://example.com/v1/statistics/types",
	}

	for _, path := range tests {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

// TestStatisticsEmpty verifies the degenerate shape for an empty store:
// counts of zero and empty lists, never null.
func (suite *TestSuiteStandard) TestStatisticsEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/statistics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatisticsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), int64(0), response.Data.TotalContacts)
	assert.Equal(suite.T(), int64(0), response.Data.TotalCategories)
	assert.Empty(suite.T(), response.Data.CategoryDistribution)
	assert.Empty(suite.T(), response.Data.ContactsAddedOverTime)
	assert.Empty(suite.T(), response.Data.FieldCompleteness)
}

func (suite *TestSuiteStandard) TestStatistics() {
	work := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Work", ColorHex: "007AFF"})
	family := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Family", ColorHex: "FF2D55"})
	_ = createTestCategory(suite.T(), v1.CategoryEditable{Name: "Friends"})

	_ = createTestContact(suite.T(), v1.ContactEditable{FirstName: "John", Email: "john@techcorp.com", CategoryID: &work.Data.ID})
	_ = createTestContact(suite.T(), v1.ContactEditable{FirstName: "Sarah", Email: "sarah@innovatex.com", CategoryID: &work.Data.ID})
	_ = createTestContact(suite.T(), v1.ContactEditable{FirstName: "Emma", CategoryID: &family.Data.ID})
	_ = createTestContact(suite.T(), v1.ContactEditable{FirstName: "Anna"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/statistics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.StatisticsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	data := *response.Data

	assert.Equal(suite.T(), int64(4), data.TotalContacts)
	assert.Equal(suite.T(), int64(3), data.TotalCategories)

	// Friends has no contacts and is dropped, Uncategorized comes last
	require.Len(suite.T(), data.CategoryDistribution, 3)
	assert.Equal(suite.T(), "Family", data.CategoryDistribution[0].Name)
	assert.Equal(suite.T(), 1, data.CategoryDistribution[0].Count)
	assert.Equal(suite.T(), "Work", data.CategoryDistribution[1].Name)
	assert.Equal(suite.T(), 2, data.CategoryDistribution[1].Count)
	assert.True(suite.T(), data.CategoryDistribution[1].Percentage.Equal(decimal.NewFromInt(50)), "got %s", data.CategoryDistribution[1].Percentage)
	assert.Equal(suite.T(), stats.UncategorizedName, data.CategoryDistribution[2].Name)
	assert.Equal(suite.T(), stats.UncategorizedColor, data.CategoryDistribution[2].Color)

	// All contacts were added just now, so there is exactly one month
	require.Len(suite.T(), data.ContactsAddedOverTime, 1)
	assert.Equal(suite.T(), 4, data.ContactsAddedOverTime[0].Count)
	assert.NotEmpty(suite.T(), data.ContactsAddedOverTime[0].Period)

	require.Len(suite.T(), data.FieldCompleteness, 5)
	assert.Equal(suite.T(), "Email", data.FieldCompleteness[0].Field)
	assert.Equal(suite.T(), 2, data.FieldCompleteness[0].CompletedCount)
	assert.Equal(suite.T(), 4, data.FieldCompleteness[0].TotalCount)
	assert.True(suite.T(), data.FieldCompleteness[0].Percentage.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestStatisticsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/statistics", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}

// TestStatisticsTypes verifies the type distribution for the static
// people directory: one teacher, seven students.
func (suite *TestSuiteStandard) TestStatisticsTypes() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/statistics/types", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TypeDistributionResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Student", response.Data[0].Type)
	assert.Equal(suite.T(), 7, response.Data[0].Count)
	assert.Equal(suite.T(), "Teacher", response.Data[1].Type)
	assert.Equal(suite.T(), 1, response.Data[1].Count)
}
