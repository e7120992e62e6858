package models_test

import (
	"time"

	"github.com/namecard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSeed() {
	require.Nil(suite.T(), models.Seed(models.DB))

	categories, err := models.Categories(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 8)

	contacts, err := models.Contacts(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), contacts, 17)

	uncategorized, err := models.UncategorizedContacts(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), uncategorized, 2)

	// Every contact is backdated for the timeline statistics
	now := time.Now()
	for _, contact := range contacts {
		assert.False(suite.T(), contact.DateAdded.IsZero())
		assert.True(suite.T(), contact.DateAdded.Before(now.Add(time.Minute)))
	}

	var work models.Category
	require.Nil(suite.T(), models.DB.Where("name = ?", "Work").First(&work).Error)
	assert.Equal(suite.T(), "007AFF", work.ColorHex)

	inWork, err := work.Contacts(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), inWork, 3)
}

// TestSeedIdempotent verifies that running the seed twice does not
// duplicate the fixtures.
func (suite *TestSuiteStandard) TestSeedIdempotent() {
	require.Nil(suite.T(), models.Seed(models.DB))
	require.Nil(suite.T(), models.Seed(models.DB))

	count, err := models.TotalContactCount(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(17), count)
}

// TestSeedSkipsNonEmpty verifies that any existing data disables the
// seed, even when only one of the collections has records.
func (suite *TestSuiteStandard) TestSeedSkipsNonEmpty() {
	_ = suite.createTestCategory(models.Category{Name: "Existing"})

	require.Nil(suite.T(), models.Seed(models.DB))

	categories, err := models.Categories(models.DB)
	require.Nil(suite.T(), err)
	assert.Len(suite.T(), categories, 1)

	count, err := models.TotalContactCount(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)
}
