package models

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// seedCategories is the fixture category set inserted on first run.
func seedCategories() []Category {
	return []Category{
		{Name: "Work", ColorHex: "007AFF"},
		{Name: "Family", ColorHex: "FF3B30"},
		{Name: "Friends", ColorHex: "34C759"},
		{Name: "Clients", ColorHex: "FF9500"},
		{Name: "Vendors", ColorHex: "AF52DE"},
		{Name: "Medical", ColorHex: "FF2D92"},
		{Name: "Education", ColorHex: "5856D6"},
		{Name: "Services", ColorHex: "00C7BE"},
	}
}

type seedContact struct {
	contact  Contact
	category string // Name of the fixture category, empty for uncategorized contacts
}

// seedContacts is the fixture contact set. Contacts reference their
// category by name, the name is resolved against the categories that
// were just inserted.
func seedContacts() []seedContact {
	return []seedContact{
		{Contact{FirstName: "John", LastName: "Smith", Title: "Software Engineer", Organization: "TechCorp Inc.", Email: "john.smith@techcorp.com", Phone: "+1-555-0101", Address: "123 Tech Street, San Francisco, CA 94102", Website: "https://techcorp.com", Department: "Engineering"}, "Work"},
		{Contact{FirstName: "Sarah", LastName: "Johnson", Title: "Product Manager", Organization: "InnovateX", Email: "sarah.j@innovatex.com", Phone: "+1-555-0102", Address: "456 Innovation Ave, Austin, TX 78701", Website: "https://innovatex.com", Department: "Product"}, "Work"},
		{Contact{FirstName: "Michael", LastName: "Chen", Title: "DevOps Engineer", Organization: "CloudTech Solutions", Email: "m.chen@cloudtech.io", Phone: "+1-555-0103", Address: "789 Cloud Lane, Seattle, WA 98101", Website: "https://cloudtech.io", Department: "Infrastructure"}, "Work"},
		{Contact{FirstName: "Mom", LastName: "Davis", Email: "mom@family.com", Phone: "+1-555-0201", Address: "321 Family Street, Portland, OR 97201"}, "Family"},
		{Contact{FirstName: "Dad", LastName: "Davis", Email: "dad@family.com", Phone: "+1-555-0202", Address: "321 Family Street, Portland, OR 97201"}, "Family"},
		{Contact{FirstName: "Emma", LastName: "Davis", Email: "emma.davis@email.com", Phone: "+1-555-0203", Address: "654 College Ave, Boston, MA 02101"}, "Family"},
		{Contact{FirstName: "Alex", LastName: "Turner", Title: "Graphic Designer", Organization: "Creative Studio", Email: "alex.turner@gmail.com", Phone: "+1-555-0301", Address: "987 Art District, Los Angeles, CA 90210", Website: "https://alexturner.design"}, "Friends"},
		{Contact{FirstName: "Jessica", LastName: "Wilson", Title: "Marketing Specialist", Organization: "BrandCo", Email: "jess.wilson@brandco.com", Phone: "+1-555-0302", Address: "147 Marketing Blvd, New York, NY 10001"}, "Friends"},
		{Contact{FirstName: "Robert", LastName: "Anderson", Title: "CEO", Organization: "StartupVenture", Email: "robert@startupventure.com", Phone: "+1-555-0401", Address: "258 Startup Lane, San Jose, CA 95101", Website: "https://startupventure.com", Department: "Executive"}, "Clients"},
		{Contact{FirstName: "Linda", LastName: "Brown", Title: "Operations Director", Organization: "MegaCorp", Email: "l.brown@megacorp.com", Phone: "+1-555-0402", Address: "369 Corporate Plaza, Chicago, IL 60601", Website: "https://megacorp.com", Department: "Operations"}, "Clients"},
		{Contact{FirstName: "David", LastName: "Kim", Title: "Account Manager", Organization: "SupplyChain Pro", Email: "david.kim@supplychain.com", Phone: "+1-555-0501", Address: "741 Supply Street, Denver, CO 80201", Website: "https://supplychainpro.com", Department: "Sales"}, "Vendors"},
		{Contact{FirstName: "Dr. Maria", LastName: "Garcia", Title: "Primary Care Physician", Organization: "HealthCare Clinic", Email: "dr.garcia@healthcare.com", Phone: "+1-555-0601", Address: "852 Health Ave, Miami, FL 33101", Website: "https://healthcareclinic.com", Department: "Internal Medicine"}, "Medical"},
		{Contact{FirstName: "Dr. James", LastName: "Thompson", Title: "Dentist", Organization: "Smile Dental", Email: "dr.thompson@smiledental.com", Phone: "+1-555-0602", Address: "963 Dental Drive, Phoenix, AZ 85001", Website: "https://smiledental.com", Department: "Dentistry"}, "Medical"},
		{Contact{FirstName: "Professor Lisa", LastName: "Martinez", Title: "Computer Science Professor", Organization: "State University", Email: "l.martinez@stateuni.edu", Phone: "+1-555-0701", Address: "174 University Circle, Atlanta, GA 30301", Website: "https://stateuni.edu", Department: "Computer Science"}, "Education"},
		{Contact{FirstName: "Tom", LastName: "Wilson", Title: "Plumber", Organization: "Quick Fix Services", Email: "tom@quickfixservices.com", Phone: "+1-555-0801", Address: "285 Service Road, Houston, TX 77001"}, "Services"},
		{Contact{FirstName: "Anna", LastName: "Taylor", Title: "Freelance Writer", Email: "anna.taylor@writer.com", Phone: "+1-555-0901", Address: "396 Creative Street, Nashville, TN 37201", Website: "https://annataylor.blog"}, ""},
		{Contact{FirstName: "Mark", LastName: "Johnson", Title: "Photographer", Organization: "Johnson Photography", Email: "mark@johnsonphoto.com", Phone: "+1-555-0902", Address: "507 Photo Lane, Minneapolis, MN 55401", Website: "https://johnsonphoto.com"}, ""},
	}
}

// Seed populates an empty store with the fixture set.
//
// The check and the inserts run in a single transaction. Together with
// the single connection pool this is the mutual exclusion scope that
// keeps two concurrent cold starts from inserting the fixtures twice:
// the second caller only gets to run its emptiness check after the
// first transaction committed, sees data and becomes a no-op.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		empty, err := IsEmpty(tx)
		if err != nil {
			return fmt.Errorf("error during seed check: %w", err)
		}

		if !empty {
			log.Debug().Msg("store already has data, skipping seed")
			return nil
		}

		byName := make(map[string]Category)
		for _, category := range seedCategories() {
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("error inserting seed category %q: %w", category.Name, err)
			}

			byName[category.Name] = category
		}

		// Spread the creation dates backwards over the past weeks with
		// some randomness so the timeline statistics have data to show.
		now := time.Now().In(time.UTC)
		for i, seed := range seedContacts() {
			contact := seed.contact
			contact.DateAdded = now.AddDate(0, 0, -(i*7 + rand.IntN(7)))

			if seed.category != "" {
				category, ok := byName[seed.category]
				if !ok {
					return fmt.Errorf("seed contact %q references unknown category %q", contact.FullName(), seed.category)
				}

				id := category.ID
				contact.CategoryID = &id
			}

			if err := tx.Create(&contact).Error; err != nil {
				return fmt.Errorf("error inserting seed contact %q: %w", contact.FullName(), err)
			}
		}

		log.Info().Msg("seed data inserted")
		return nil
	})
}
