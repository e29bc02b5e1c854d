package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Position is the numeric roster position code used by the roster export.
type Position int

const (
	PositionCatcher     Position = 2
	PositionFirstBase   Position = 3
	PositionSecondBase  Position = 4
	PositionThirdBase   Position = 5
	PositionShortstop   Position = 6
	PositionLeftField   Position = 7
	PositionCenterField Position = 8
	PositionRightField  Position = 9
	PositionStarter     Position = 11
	PositionReliever    Position = 12
	PositionCloser      Position = 13
)

var positionAbbrev = map[Position]string{
	PositionCatcher:     "C",
	PositionFirstBase:   "1B",
	PositionSecondBase:  "2B",
	PositionThirdBase:   "3B",
	PositionShortstop:   "SS",
	PositionLeftField:   "LF",
	PositionCenterField: "CF",
	PositionRightField:  "RF",
	PositionStarter:     "SP",
	PositionReliever:    "RP",
	PositionCloser:      "CL",
}

// String returns the abbreviation, or the raw code for unknown positions.
func (p Position) String() string {
	if s, ok := positionAbbrev[p]; ok {
		return s
	}
	return fmt.Sprintf("%d", int(p))
}

// IsPitcher reports whether the position is on the pitching staff.
func (p Position) IsPitcher() bool {
	return p == PositionStarter || p == PositionReliever || p == PositionCloser
}

// ParsePosition maps an abbreviation back to its code.
func ParsePosition(s string) (Position, bool) {
	for code, abbrev := range positionAbbrev {
		if abbrev == s {
			return code, true
		}
	}
	return 0, false
}

// Player is a free agent. ArchiveID is nil while the player is in the active pool.
type Player struct {
	ID           uuid.UUID  `json:"id"`
	ArchiveID    *uuid.UUID `json:"archive_id,omitempty"`
	PlayerNumber string     `json:"player_number"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Nickname     *string    `json:"nickname,omitempty"`
	Position     Position   `json:"position"`
	BirthDay     *int       `json:"birth_day,omitempty"`
	BirthMonth   *int       `json:"birth_month,omitempty"`
	BirthYear    *int       `json:"birth_year,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// FullName returns "First Last".
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// IsActive reports whether the player is still in the active pool.
func (p Player) IsActive() bool {
	return p.ArchiveID == nil
}

// Age returns the player's age on the given date, or nil without a full birth date.
func (p Player) Age(on time.Time) *int {
	if p.BirthDay == nil || p.BirthMonth == nil || p.BirthYear == nil {
		return nil
	}
	age := on.Year() - *p.BirthYear
	if int(on.Month()) < *p.BirthMonth || (int(on.Month()) == *p.BirthMonth && on.Day() < *p.BirthDay) {
		age--
	}
	return &age
}
