package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Contact represents a stored person or organization record.
type Contact struct {
	DefaultModel
	FirstName    string     `example:"John"`
	LastName     string     `example:"Smith"`
	Title        string     `example:"Software Engineer"`
	Organization string     `example:"TechCorp Inc."`
	Email        string     `example:"john.smith@techcorp.com"`
	Phone        string     `example:"+1-555-0101"`
	Address      string     `example:"123 Tech Street, San Francisco, CA 94102"`
	Website      string     `example:"https://techcorp.com"`
	Department   string     `example:"Engineering"`
	DateAdded    time.Time  `example:"2025-08-02T19:28:44.491514Z"` // Used for the time based statistics
	CategoryID   *uuid.UUID // The category the contact belongs to, nil for uncategorized contacts
	Category     *Category  `json:"-"`
	CardStyle    CardStyle  `example:"classic"` // Which name card rendering the contact uses
}

var upperCaser = cases.Upper(language.Und)

// BeforeSave trims whitespace from all strings and verifies the
// card style.
func (c *Contact) BeforeSave(_ *gorm.DB) error {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Title = strings.TrimSpace(c.Title)
	c.Organization = strings.TrimSpace(c.Organization)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
	c.Website = strings.TrimSpace(c.Website)
	c.Department = strings.TrimSpace(c.Department)

	if c.CardStyle == "" {
		c.CardStyle = CardStyleClassic
	}

	if !c.CardStyle.Valid() {
		return ErrContactCardStyleInvalid
	}

	return nil
}

// BeforeCreate sets the DateAdded timestamp and verifies that the
// referenced category exists.
//
// DateAdded is only defaulted when it is unset so that the seed data
// can backdate contacts for the timeline statistics.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	_ = c.DefaultModel.BeforeCreate(tx)

	if c.DateAdded.IsZero() {
		c.DateAdded = time.Now().In(time.UTC)
	}

	toSave := tx.Statement.Dest.(*Contact)
	return c.checkIntegrity(tx, *toSave)
}

// BeforeUpdate verifies the state of the contact before
// committing an update to the database.
func (c *Contact) BeforeUpdate(tx *gorm.DB) error {
	if tx.Statement.Changed("CategoryID") {
		var toSave Contact
		switch dest := tx.Statement.Dest.(type) {
		case Contact:
			toSave = dest
		case *Contact:
			toSave = *dest
		default:
			return nil
		}

		return c.checkIntegrity(tx, toSave)
	}

	return nil
}

// checkIntegrity verifies references to other resources
func (c *Contact) checkIntegrity(tx *gorm.DB, toSave Contact) error {
	if toSave.CategoryID == nil {
		return nil
	}

	return tx.First(&Category{}, *toSave.CategoryID).Error
}

// FullName returns the first and last name joined with a space.
func (c Contact) FullName() string {
	return c.FirstName + " " + c.LastName
}

// DisplayName is the full name in upper case, as rendered on the
// name cards.
func (c Contact) DisplayName() string {
	return upperCaser.String(c.FullName())
}

// VCard returns the contact serialized as a VCARD 3.0 text blob.
//
// The output is the payload for the QR code rendering, it is never
// parsed back by the backend.
func (c Contact) VCard() string {
	return strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"FN:" + c.FullName(),
		fmt.Sprintf("N:%s;%s;;;", c.LastName, c.FirstName),
		"ORG:" + c.Organization,
		"TITLE:" + c.Title,
		"EMAIL:" + c.Email,
		"TEL:" + c.Phone,
		fmt.Sprintf("ADR:;;%s;;;", c.Address),
		"URL:" + c.Website,
		"NOTE:" + c.Department,
		"END:VCARD",
	}, "\n")
}

// Contacts returns all contacts.
func Contacts(db *gorm.DB) ([]Contact, error) {
	var contacts []Contact

	err := db.Find(&contacts).Error
	if err != nil {
		return []Contact{}, err
	}

	return contacts, nil
}

// ContactsByCategory returns all contacts in the category with the ID
// passed in.
func ContactsByCategory(db *gorm.DB, id uuid.UUID) ([]Contact, error) {
	return Category{DefaultModel: DefaultModel{ID: id}}.Contacts(db)
}

// UncategorizedContacts returns all contacts that do not belong to
// any category.
func UncategorizedContacts(db *gorm.DB) ([]Contact, error) {
	var contacts []Contact

	err := db.Where("category_id IS NULL").Find(&contacts).Error
	if err != nil {
		return []Contact{}, err
	}

	return contacts, nil
}

// RandomContact returns a single random contact. When the store holds
// no contacts, it returns nil without an error since an empty store is
// a valid state for the widget.
func RandomContact(db *gorm.DB) (*Contact, error) {
	var contact Contact

	err := db.Order("RANDOM()").Limit(1).Find(&contact).Error
	if err != nil {
		return nil, err
	}

	if contact.ID == uuid.Nil {
		return nil, nil
	}

	return &contact, nil
}

// TotalContactCount returns the number of contacts in the store.
func TotalContactCount(db *gorm.DB) (int64, error) {
	var count int64

	err := db.Model(&Contact{}).Count(&count).Error
	if err != nil {
		return 0, err
	}

	return count, nil
}

// IsEmpty is true if both the category and the contact collection are
// empty. It is the idempotence check for the seed loader.
func IsEmpty(db *gorm.DB) (bool, error) {
	var categories, contacts int64

	err := db.Model(&Category{}).Count(&categories).Error
	if err != nil {
		return false, err
	}

	err = db.Model(&Contact{}).Count(&contacts).Error
	if err != nil {
		return false, err
	}

	return categories == 0 && contacts == 0, nil
}

// Returns all contacts on this instance for export
func (Contact) Export() (json.RawMessage, error) {
	var contacts []Contact
	err := DB.Unscoped().Where(&Contact{}).Find(&contacts).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&contacts)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
