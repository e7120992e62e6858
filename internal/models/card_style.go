package models

import (
	"errors"

	"golang.org/x/exp/slices"
)

// CardStyle selects which of the name card renderings is used for a
// contact. It is an explicit tag set at data entry time, the renderer
// is resolved through a lookup on the presentation side instead of
// matching on the contact's name.
type CardStyle string

const (
	CardStyleClassic   CardStyle = "classic"
	CardStyleModern    CardStyle = "modern"
	CardStyleGradient  CardStyle = "gradient"
	CardStyleBrutalist CardStyle = "brutalist"
	CardStyleNeon      CardStyle = "neon"
	CardStyleRetro     CardStyle = "retro"
	CardStyleMinimal   CardStyle = "minimal"
	CardStyleElegant   CardStyle = "elegant"
)

var ErrContactCardStyleInvalid = errors.New("the specified card style does not exist")

// CardStyles returns all known card styles.
func CardStyles() []CardStyle {
	return []CardStyle{
		CardStyleClassic,
		CardStyleModern,
		CardStyleGradient,
		CardStyleBrutalist,
		CardStyleNeon,
		CardStyleRetro,
		CardStyleMinimal,
		CardStyleElegant,
	}
}

// Valid reports whether the card style is one of the known styles.
func (s CardStyle) Valid() bool {
	return slices.Contains(CardStyles(), s)
}
