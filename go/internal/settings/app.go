package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// SettingsRepository defines what the app layer needs from the repository
type SettingsRepository interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	ListSettings(ctx context.Context) (map[string]string, error)
	SetSettings(ctx context.Context, values map[string]string) error
}

// App handles auction settings
type App struct {
	repo SettingsRepository
}

// NewApp creates a new settings App
func NewApp(repo SettingsRepository) *App {
	return &App{repo: repo}
}

// Get returns the stored value for key or def when it is not set.
func (a *App) Get(ctx context.Context, key, def string) (string, error) {
	value, ok, err := a.repo.GetSetting(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return def, nil
	}
	return value, nil
}

// Set stores a single setting. Values for the auction keys are checked and stored in the
// same form UpdateAuctionSettings writes; other keys are stored as given.
func (a *App) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return fmt.Errorf("%w: key is required", models.ErrInvalidRequest)
	}
	value, err := normalizeSetting(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}
	return a.repo.SetSettings(ctx, map[string]string{key: value})
}

// Snapshot loads the current auction settings.
func (a *App) Snapshot(ctx context.Context) (models.AuctionSettings, error) {
	values, err := a.repo.ListSettings(ctx)
	if err != nil {
		return models.AuctionSettings{}, fmt.Errorf("failed to load auction settings: %w", err)
	}
	return ParseSnapshot(values), nil
}

// UpdateAuctionSettings clamps and stores the provided settings and returns the new snapshot.
func (a *App) UpdateAuctionSettings(ctx context.Context, req UpdateAuctionSettingsRequest) (models.AuctionSettings, error) {
	if err := a.validateUpdateRequest(req); err != nil {
		return models.AuctionSettings{}, fmt.Errorf("%w: %w", models.ErrInvalidRequest, err)
	}

	values := make(map[string]string)
	if req.MinBidIncrementPercent != nil {
		pct := clampDecimal(*req.MinBidIncrementPercent, MinIncrementPercent, MaxIncrementPercent)
		values[models.SettingMinBidIncrementPercent] = pct.String()
	}
	if req.MaxContractYears != nil {
		values[models.SettingMaxContractYears] = fmt.Sprint(clampInt(*req.MaxContractYears, MinContractYears, MaxContractYears))
	}
	if req.MaxBidsPerPlayer != nil {
		values[models.SettingMaxBidsPerPlayer] = fmt.Sprint(clampInt(*req.MaxBidsPerPlayer, MinBidsPerPlayer, MaxBidsPerPlayer))
	}
	if req.DeadlineType != nil {
		values[models.SettingDeadlineType] = string(*req.DeadlineType)
	}
	if req.Deadline != nil {
		values[models.SettingDeadlineDatetime] = FormatDeadline(*req.Deadline)
	}
	if req.AuctionClosed != nil {
		values[models.SettingAuctionClosed] = boolSetting(*req.AuctionClosed)
	}

	if len(values) > 0 {
		if err := a.repo.SetSettings(ctx, values); err != nil {
			return models.AuctionSettings{}, err
		}
		log.Info().Interface("values", values).Msg("auction settings updated")
	}

	return a.Snapshot(ctx)
}

// ToggleAuction flips the manual closed flag and returns the new value.
func (a *App) ToggleAuction(ctx context.Context) (bool, error) {
	current, err := a.Get(ctx, models.SettingAuctionClosed, "0")
	if err != nil {
		return false, err
	}
	closed := !parseFlag(current)
	if err := a.repo.SetSettings(ctx, map[string]string{
		models.SettingAuctionClosed: boolSetting(closed),
	}); err != nil {
		return false, err
	}

	log.Info().Bool("auction_closed", closed).Msg("auction toggled")
	return closed, nil
}

func (a *App) validateUpdateRequest(req UpdateAuctionSettingsRequest) error {
	if req.DeadlineType != nil {
		switch *req.DeadlineType {
		case models.DeadlineTypeManual, models.DeadlineTypeDatetime:
		default:
			return fmt.Errorf("deadline_type must be %q or %q", models.DeadlineTypeManual, models.DeadlineTypeDatetime)
		}
	}
	if req.Deadline != nil && req.Deadline.IsZero() {
		return fmt.Errorf("deadline cannot be zero")
	}
	return nil
}

func normalizeSetting(key, value string) (string, error) {
	value = strings.TrimSpace(value)
	switch key {
	case models.SettingAuctionClosed:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", fmt.Errorf("%s must be a boolean", key)
		}
		return boolSetting(b), nil
	case models.SettingMaxContractYears, models.SettingMaxBidsPerPlayer:
		if _, err := strconv.Atoi(value); err != nil {
			return "", fmt.Errorf("%s must be an integer", key)
		}
	case models.SettingMinBidIncrementPercent:
		if _, err := decimal.NewFromString(value); err != nil {
			return "", fmt.Errorf("%s must be a number", key)
		}
	case models.SettingDeadlineType:
		switch models.DeadlineType(value) {
		case models.DeadlineTypeManual, models.DeadlineTypeDatetime:
		default:
			return "", fmt.Errorf("%s must be %q or %q", key, models.DeadlineTypeManual, models.DeadlineTypeDatetime)
		}
	case models.SettingDeadlineDatetime:
		if value != "" && ParseDeadline(value) == nil {
			return "", fmt.Errorf("%s is not a valid date and time", key)
		}
	}
	return value, nil
}
