package player

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mcdev12/faauction/go/internal/models"
)

// Roster export column layout.
const (
	colNumber    = 0
	colLastName  = 5
	colFirstName = 6
	colNickname  = 7
	colBirthDay  = 9
	colBirthMon  = 10
	colBirthYear = 11
	colPosition  = 21

	rosterMinColumns = 22
)

var validPositions = map[models.Position]bool{
	models.PositionCatcher:     true,
	models.PositionFirstBase:   true,
	models.PositionSecondBase:  true,
	models.PositionThirdBase:   true,
	models.PositionShortstop:   true,
	models.PositionLeftField:   true,
	models.PositionCenterField: true,
	models.PositionRightField:  true,
	models.PositionStarter:     true,
	models.PositionReliever:    true,
	models.PositionCloser:      true,
}

// RosterRow is one importable player from a roster export.
type RosterRow struct {
	Line         int
	PlayerNumber string
	FirstName    string
	LastName     string
	Nickname     *string
	Position     models.Position
	BirthDay     *int
	BirthMonth   *int
	BirthYear    *int
}

// RosterSkip records a data row that was rejected and why.
type RosterSkip struct {
	Line   int
	Reason string
}

// ParseRosterCSV reads a roster export. Short rows and rows whose first cell starts with
// "//" are ignored silently; rows with a bad number, missing names, or an unknown
// position are returned as skips.
func ParseRosterCSV(r io.Reader) ([]RosterRow, []RosterSkip, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var (
		rows  []RosterRow
		skips []RosterSkip
		line  int
	)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read roster line %d: %w", line, err)
		}
		if len(record) < rosterMinColumns {
			continue
		}
		if strings.HasPrefix(strings.TrimSpace(record[colNumber]), "//") {
			continue
		}

		row, reason := parseRosterRecord(record)
		if reason != "" {
			skips = append(skips, RosterSkip{Line: line, Reason: reason})
			continue
		}
		row.Line = line
		rows = append(rows, row)
	}
	return rows, skips, nil
}

func parseRosterRecord(record []string) (RosterRow, string) {
	number := strings.TrimSpace(record[colNumber])
	if n, err := strconv.Atoi(number); err != nil || n <= 0 {
		return RosterRow{}, "invalid player number"
	}

	row := RosterRow{
		PlayerNumber: number,
		LastName:     strings.TrimSpace(record[colLastName]),
		FirstName:    strings.TrimSpace(record[colFirstName]),
		BirthDay:     optionalInt(record[colBirthDay]),
		BirthMonth:   optionalInt(record[colBirthMon]),
		BirthYear:    optionalInt(record[colBirthYear]),
	}
	if row.LastName == "" || row.FirstName == "" {
		return RosterRow{}, "missing name"
	}
	if nick := strings.TrimSpace(record[colNickname]); nick != "" {
		row.Nickname = &nick
	}

	pos, err := strconv.Atoi(strings.TrimSpace(record[colPosition]))
	if err != nil || !validPositions[models.Position(pos)] {
		return RosterRow{}, "invalid position"
	}
	row.Position = models.Position(pos)
	return row, ""
}

func optionalInt(s string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n == 0 {
		return nil
	}
	return &n
}
