package archive

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/xuri/excelize/v2"
)

const (
	playersSheet = "Players"
	bidsSheet    = "Bids"
)

var (
	playersHeader = []interface{}{"Number", "Player", "Position", "Winning Team", "Amount/Year", "Years", "Total Value"}
	bidsHeader    = []interface{}{"Player", "Team", "Member", "Amount/Year", "Years", "Total Value", "Opening", "Placed At"}
)

// ExportXLSX writes the archive as a workbook with a Players sheet (one row per player with
// the winning contract) and a Bids sheet (full bid history).
func (a *App) ExportXLSX(ctx context.Context, id uuid.UUID, w io.Writer) error {
	archive, err := a.repo.GetArchive(ctx, id)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", playersSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}
	if _, err := f.NewSheet(bidsSheet); err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	if err := a.writePlayers(ctx, f, archive); err != nil {
		return err
	}
	if err := a.writeBids(ctx, f, archive.ID); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (a *App) writePlayers(ctx context.Context, f *excelize.File, archive *models.Archive) error {
	winners := make(map[uuid.UUID]models.ArchiveResult, len(archive.Results))
	for _, r := range archive.Results {
		winners[r.PlayerID] = r
	}

	if err := setRow(f, playersSheet, 1, playersHeader); err != nil {
		return err
	}
	row := 2
	page := Page{Limit: MaxPageSize}
	for {
		players, err := a.repo.ListArchivePlayers(ctx, archive.ID, page)
		if err != nil {
			return err
		}
		for _, p := range players {
			values := []interface{}{p.PlayerNumber, p.FullName(), p.Position.String()}
			if win, ok := winners[p.ID]; ok {
				values = append(values, win.TeamName, win.AmountPerYear.InexactFloat64(), win.Years, win.TotalValue.InexactFloat64())
			}
			if err := setRow(f, playersSheet, row, values); err != nil {
				return err
			}
			row++
		}
		if len(players) < page.Limit {
			return nil
		}
		page.Offset += page.Limit
	}
}

func (a *App) writeBids(ctx context.Context, f *excelize.File, archiveID uuid.UUID) error {
	if err := setRow(f, bidsSheet, 1, bidsHeader); err != nil {
		return err
	}
	row := 2
	page := Page{Limit: MaxPageSize}
	for {
		bids, err := a.repo.ListArchiveBids(ctx, archiveID, page)
		if err != nil {
			return err
		}
		for _, b := range bids {
			values := []interface{}{
				b.PlayerName,
				b.TeamName,
				b.MemberName,
				b.AmountPerYear.InexactFloat64(),
				b.Years,
				b.TotalValue.InexactFloat64(),
				b.IsOpeningBid,
				b.CreatedAt.UTC(),
			}
			if err := setRow(f, bidsSheet, row, values); err != nil {
				return err
			}
			row++
		}
		if len(bids) < page.Limit {
			return nil
		}
		page.Offset += page.Limit
	}
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("failed to write %s row %d: %w", sheet, row, err)
	}
	return nil
}
