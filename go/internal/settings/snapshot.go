package settings

import (
	"strconv"
	"strings"
	"time"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

// Bounds enforced on auction settings.
const (
	MinIncrementPercent = 1
	MaxIncrementPercent = 100
	MinContractYears    = 2
	MaxContractYears    = 15
	MinBidsPerPlayer    = 1
	MaxBidsPerPlayer    = 99
)

// deadlineLayouts are tried in order. The last two are the datetime-local forms older
// installs stored without a zone; they are read as UTC.
var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

// ParseSnapshot builds auction settings from raw key/value rows.
// Missing or malformed values fall back to defaults and out-of-range values are clamped.
// A datetime deadline that cannot be parsed leaves Deadline nil.
func ParseSnapshot(values map[string]string) models.AuctionSettings {
	s := models.DefaultAuctionSettings()

	if v, ok := values[models.SettingMinBidIncrementPercent]; ok {
		if d, err := decimal.NewFromString(strings.TrimSpace(v)); err == nil {
			s.MinBidIncrementPercent = clampDecimal(d, MinIncrementPercent, MaxIncrementPercent)
		}
	}
	if v, ok := values[models.SettingMaxContractYears]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			s.MaxContractYears = clampInt(n, MinContractYears, MaxContractYears)
		}
	}
	if v, ok := values[models.SettingMaxBidsPerPlayer]; ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			s.MaxBidsPerPlayer = clampInt(n, MinBidsPerPlayer, MaxBidsPerPlayer)
		}
	}
	if v := values[models.SettingDeadlineType]; models.DeadlineType(v) == models.DeadlineTypeDatetime {
		s.DeadlineType = models.DeadlineTypeDatetime
	}
	s.AuctionClosed = parseFlag(values[models.SettingAuctionClosed])
	s.Deadline = ParseDeadline(values[models.SettingDeadlineDatetime])

	return s
}

// ParseDeadline parses a stored deadline, returning nil when empty or malformed.
func ParseDeadline(raw string) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range deadlineLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return &t
		}
	}
	return nil
}

// FormatDeadline is the storage form of a deadline.
func FormatDeadline(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampDecimal(v decimal.Decimal, lo, hi int64) decimal.Decimal {
	if v.LessThan(decimal.NewFromInt(lo)) {
		return decimal.NewFromInt(lo)
	}
	if v.GreaterThan(decimal.NewFromInt(hi)) {
		return decimal.NewFromInt(hi)
	}
	return v
}

// parseFlag reads a stored boolean. Values strconv.ParseBool rejects read as false.
func parseFlag(v string) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	return err == nil && b
}

func boolSetting(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
