package archive

import (
	"errors"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
)

var (
	// ErrNothingToArchive is returned when the active pool is empty.
	ErrNothingToArchive = errors.New("no active players to archive")
	// ErrArchiveNotFound is returned for an unknown archive id.
	ErrArchiveNotFound = errors.New("archive not found")
)

// DefaultPageSize is used when a request does not set a limit.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// CreateArchiveRequest closes the current season into a named archive.
type CreateArchiveRequest struct {
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
}

// Page selects a window of an archive listing.
type Page struct {
	Limit  int
	Offset int
}

func (p Page) normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// ArchivedBid is a historical bid with the player it was placed on.
type ArchivedBid struct {
	models.BidDetail
	PlayerName string `json:"player_name"`
}

// resultBid is an archived bid joined with what the archive summary records.
type resultBid struct {
	models.Bid
	PlayerName string
	Position   models.Position
	TeamName   string
}
