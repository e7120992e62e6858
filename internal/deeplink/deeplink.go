// Package deeplink resolves inbound namecard:// URLs into navigation
// targets.
package deeplink

import (
	"errors"
	"net/url"
	"path"

	"github.com/google/uuid"
	"github.com/namecard/backend/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Scheme is the URL scheme the app is registered for.
const Scheme = "namecard"

// Hosts the resolver dispatches on.
const (
	hostContact    = "contact"
	hostStatistics = "statistics"
)

// FrameKind discriminates the frames of a navigation stack.
type FrameKind string

const (
	FrameKindCategory   FrameKind = "category"
	FrameKindContact    FrameKind = "contact"
	FrameKindStatistics FrameKind = "statistics"
)

// Frame is one entry of the navigation stack that replaces the current
// navigation state when a deep link resolves.
type Frame struct {
	Kind     FrameKind        `json:"kind" example:"contact"`
	Category *models.Category `json:"category,omitempty"`
	Contact  *models.Contact  `json:"contact,omitempty"`
}

// Resolve maps a raw URL to the navigation stack it requests.
//
// Malformed or unresolvable links are rejected silently: Resolve logs
// the reason and returns ok = false, the caller keeps its current
// navigation state. There are no retries, resolution is a single
// synchronous lookup against local storage.
func Resolve(db *gorm.DB, raw string) (frames []Frame, ok bool) {
	u, err := url.Parse(raw)
	if err != nil {
		log.Debug().Str("url", raw).Err(err).Msg("deep link is not a parseable URL")
		return nil, false
	}

	if u.Scheme != Scheme {
		log.Debug().Str("url", raw).Str("scheme", u.Scheme).Msg("deep link has wrong scheme")
		return nil, false
	}

	switch u.Host {
	case hostContact:
		return resolveContact(db, u)

	case hostStatistics:
		return []Frame{{Kind: FrameKindStatistics}}, true

	default:
		log.Debug().Str("url", raw).Str("host", u.Host).Msg("deep link has unknown host")
		return nil, false
	}
}

// resolveContact resolves a namecard://contact/{uuid} link.
//
// The stack is built so that navigating back from the contact lands on
// its category listing: [category, contact] for categorized contacts,
// [contact] for uncategorized ones.
func resolveContact(db *gorm.DB, u *url.URL) ([]Frame, bool) {
	id, err := uuid.Parse(path.Base(u.Path))
	if err != nil {
		log.Debug().Str("url", u.String()).Err(err).Msg("deep link does not contain a valid UUID")
		return nil, false
	}

	var contact models.Contact
	err = db.First(&contact, id).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) {
			log.Debug().Str("id", id.String()).Msg("deep link references a contact that does not exist")
		} else {
			log.Error().Err(err).Msg("contact lookup for deep link failed")
		}
		return nil, false
	}

	var frames []Frame
	if contact.CategoryID != nil {
		var category models.Category
		err = db.First(&category, *contact.CategoryID).Error
		if err != nil {
			log.Error().Err(err).Msg("category lookup for deep link failed")
			return nil, false
		}

		frames = append(frames, Frame{Kind: FrameKindCategory, Category: &category})
	}

	frames = append(frames, Frame{Kind: FrameKindContact, Contact: &contact})
	return frames, true
}
