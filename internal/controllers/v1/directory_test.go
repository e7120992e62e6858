package v1_test

import (
	"net/http"

	v1 "github.com/namecard/backend/internal/controllers/v1"
	"github.com/namecard/backend/internal/directory"
	"github.com/namecard/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDirectoryOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/directory", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "OPTIONS, GET", r.Header().Get("allow"))
}

// TestDirectoryGet verifies that the static people directory is served.
// The directory does not touch the database, so it works with a closed
// connection, too.
func (suite *TestSuiteStandard) TestDirectoryGet() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/directory", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DirectoryResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, len(directory.People()))
	for _, person := range response.Data {
		assert.NotEmpty(suite.T(), person.Name)
		assert.True(suite.T(), person.CardStyle.Valid())
	}
}
