package models_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/namecard/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestContactTrimWhitespace() {
	contact := suite.createTestContact(models.Contact{
		FirstName:    " John ",
		LastName:     "\tSmith",
		Organization: "TechCorp Inc. ",
		Email:        " john.smith@techcorp.com",
	})

	assert.Equal(suite.T(), "John", contact.FirstName)
	assert.Equal(suite.T(), "Smith", contact.LastName)
	assert.Equal(suite.T(), "TechCorp Inc.", contact.Organization)
	assert.Equal(suite.T(), "john.smith@techcorp.com", contact.Email)
}

func (suite *TestSuiteStandard) TestContactCardStyleDefault() {
	contact := suite.createTestContact(models.Contact{FirstName: "John"})

	assert.Equal(suite.T(), models.CardStyleClassic, contact.CardStyle)
}

func (suite *TestSuiteStandard) TestContactCardStyleInvalid() {
	err := models.DB.Create(&models.Contact{FirstName: "John", CardStyle: "sparkly"}).Error
	assert.ErrorIs(suite.T(), err, models.ErrContactCardStyleInvalid)
}

func (suite *TestSuiteStandard) TestContactDateAddedDefault() {
	contact := suite.createTestContact(models.Contact{FirstName: "John"})

	assert.False(suite.T(), contact.DateAdded.IsZero())
	assert.LessOrEqual(suite.T(), time.Since(contact.DateAdded), time.Minute)
}

// TestContactDateAddedKept verifies that an explicitly set DateAdded
// survives creation. The seed data uses this to backdate contacts.
func (suite *TestSuiteStandard) TestContactDateAddedKept() {
	date := time.Date(2024, 11, 17, 12, 0, 0, 0, time.UTC)
	contact := suite.createTestContact(models.Contact{FirstName: "John", DateAdded: date})

	assert.True(suite.T(), contact.DateAdded.Equal(date))
}

func (suite *TestSuiteStandard) TestContactCategoryIntegrity() {
	nonexistent := uuid.New()
	err := models.DB.Create(&models.Contact{FirstName: "John", CategoryID: &nonexistent}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestContactUpdateCategoryIntegrity() {
	category := suite.createTestCategory(models.Category{Name: "Work"})
	contact := suite.createTestContact(models.Contact{FirstName: "John", CategoryID: &category.ID})

	nonexistent := uuid.New()
	err := models.DB.Model(&contact).Select("CategoryID").Updates(models.Contact{CategoryID: &nonexistent}).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	err = models.DB.Model(&contact).Select("CategoryID").Updates(models.Contact{CategoryID: nil}).Error
	assert.Nil(suite.T(), err, "clearing the category must be allowed")
}

func (suite *TestSuiteStandard) TestContactNames() {
	contact := models.Contact{FirstName: "John", LastName: "Smith"}

	assert.Equal(suite.T(), "John Smith", contact.FullName())
	assert.Equal(suite.T(), "JOHN SMITH", contact.DisplayName())
}

func (suite *TestSuiteStandard) TestContactVCard() {
	contact := models.Contact{
		FirstName:    "John",
		LastName:     "Smith",
		Title:        "Software Engineer",
		Organization: "TechCorp Inc.",
		Email:        "john.smith@techcorp.com",
		Phone:        "+1-555-0101",
		Address:      "123 Tech Street, San Francisco, CA 94102",
		Website:      "https://techcorp.com",
		Department:   "Engineering",
	}

	expected := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:John Smith",
		"N:Smith;John;;;",
		"ORG:TechCorp Inc.",
		"TITLE:Software Engineer",
		"EMAIL:john.smith@techcorp.com",
		"TEL:+1-555-0101",
		"ADR:;;123 Tech Street, San Francisco, CA 94102;;;",
		"URL:https://techcorp.com",
		"NOTE:Engineering",
		"END:VCARD",
	}, "\n")

	assert.Equal(suite.T(), expected, contact.VCard())
}

// TestContactVCardEmptyFields verifies that empty fields are rendered
// as empty values, the lines are never dropped.
func (suite *TestSuiteStandard) TestContactVCardEmptyFields() {
	contact := models.Contact{FirstName: "Anna", LastName: "Taylor"}

	vcard := contact.VCard()
	assert.Contains(suite.T(), vcard, "ORG:\n")
	assert.Contains(suite.T(), vcard, "EMAIL:\n")
	assert.Contains(suite.T(), vcard, "ADR:;;;;;\n")
}

func (suite *TestSuiteStandard) TestUncategorizedContacts() {
	category := suite.createTestCategory(models.Category{Name: "Work"})

	_ = suite.createTestContact(models.Contact{FirstName: "John", CategoryID: &category.ID})
	anna := suite.createTestContact(models.Contact{FirstName: "Anna"})

	contacts, err := models.UncategorizedContacts(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), contacts, 1)
	assert.Equal(suite.T(), anna.ID, contacts[0].ID)
}

func (suite *TestSuiteStandard) TestContactsByCategory() {
	work := suite.createTestCategory(models.Category{Name: "Work"})
	family := suite.createTestCategory(models.Category{Name: "Family"})

	john := suite.createTestContact(models.Contact{FirstName: "John", CategoryID: &work.ID})
	_ = suite.createTestContact(models.Contact{FirstName: "Emma", CategoryID: &family.ID})
	_ = suite.createTestContact(models.Contact{FirstName: "Anna"})

	contacts, err := models.ContactsByCategory(models.DB, work.ID)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), contacts, 1)
	assert.Equal(suite.T(), john.ID, contacts[0].ID)
}

func (suite *TestSuiteStandard) TestRandomContactEmpty() {
	contact, err := models.RandomContact(models.DB)

	require.Nil(suite.T(), err)
	assert.Nil(suite.T(), contact, "an empty store must not produce an error")
}

func (suite *TestSuiteStandard) TestRandomContact() {
	created := make(map[uuid.UUID]bool)
	for _, name := range []string{"John", "Sarah", "Michael"} {
		contact := suite.createTestContact(models.Contact{FirstName: name})
		created[contact.ID] = true
	}

	for i := 0; i < 5; i++ {
		contact, err := models.RandomContact(models.DB)
		require.Nil(suite.T(), err)
		require.NotNil(suite.T(), contact)
		assert.True(suite.T(), created[contact.ID], "random contact must be one of the stored contacts")
	}
}

func (suite *TestSuiteStandard) TestTotalContactCount() {
	count, err := models.TotalContactCount(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(0), count)

	_ = suite.createTestContact(models.Contact{FirstName: "John"})
	_ = suite.createTestContact(models.Contact{FirstName: "Sarah"})

	count, err = models.TotalContactCount(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), int64(2), count)
}

func (suite *TestSuiteStandard) TestIsEmpty() {
	empty, err := models.IsEmpty(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), empty)

	tests := []struct {
		name   string
		create func()
	}{
		{"Only a category", func() { _ = suite.createTestCategory(models.Category{Name: "Work"}) }},
		{"Only a contact", func() { _ = suite.createTestContact(models.Contact{FirstName: "John"}) }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.TearDownTest()
			suite.SetupTest()

			tt.create()

			empty, err := models.IsEmpty(models.DB)
			require.Nil(t, err)
			assert.False(t, empty)
		})
	}
}
