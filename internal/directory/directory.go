// Package directory holds the static people directory that the name
// card gallery and the type distribution chart are built from.
//
// Unlike contacts, the directory is not stored in the database. It is
// a fixed list compiled into the binary.
package directory

import (
	"github.com/namecard/backend/internal/models"
)

// PersonType groups the directory into teachers and students.
type PersonType string

const (
	PersonTypeTeacher PersonType = "Teachers"
	PersonTypeStudent PersonType = "Students"
)

// Person is one entry of the directory.
//
// CardStyle is an explicit tag selecting the name card rendering, the
// renderer is resolved through a lookup table on the presentation
// side. Dispatching on the person's name would silently fall back to a
// default when a name changes, so the tag is set at data entry time.
type Person struct {
	Name      string           `json:"name" example:"Harry"`
	Type      PersonType       `json:"type" example:"Teachers"`
	CardStyle models.CardStyle `json:"cardStyle" example:"classic"`
}

// People returns the directory.
func People() []Person {
	return []Person{
		{Name: "Harry", Type: PersonTypeTeacher, CardStyle: models.CardStyleClassic},
		{Name: "Leo", Type: PersonTypeStudent, CardStyle: models.CardStyleGradient},
		{Name: "Zoe", Type: PersonTypeStudent, CardStyle: models.CardStyleMinimal},
		{Name: "Roger", Type: PersonTypeStudent, CardStyle: models.CardStyleModern},
		{Name: "Willium", Type: PersonTypeStudent, CardStyle: models.CardStyleBrutalist},
		{Name: "YM", Type: PersonTypeStudent, CardStyle: models.CardStyleNeon},
		{Name: "CY", Type: PersonTypeStudent, CardStyle: models.CardStyleRetro},
		{Name: "MC", Type: PersonTypeStudent, CardStyle: models.CardStyleElegant},
	}
}
