package bidding

import (
	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

// MaxAmountPerYear is the largest amount the bids table can store.
var MaxAmountPerYear = decimal.RequireFromString("999999999999.99")

var hundred = decimal.NewFromInt(100)

func validateAmount(amount decimal.Decimal) error {
	switch {
	case !amount.IsPositive():
		return &InvalidAmountError{Amount: amount, Detail: "must be greater than zero"}
	case !amount.Equal(amount.Round(2)):
		return &InvalidAmountError{Amount: amount, Detail: "at most two decimal places"}
	case amount.GreaterThan(MaxAmountPerYear):
		return &InvalidAmountError{Amount: amount, Detail: "exceeds the maximum of " + MaxAmountPerYear.StringFixed(2)}
	}
	return nil
}

func validateTerm(years, maxYears int) error {
	if years < 1 || years > maxYears {
		return &InvalidTermError{Years: years, MaxYears: maxYears}
	}
	return nil
}

// TotalValue is amount × years.
func TotalValue(amount decimal.Decimal, years int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(years)))
}

// RequiredTotal is the smallest total value that beats leaderTotal by pct percent.
func RequiredTotal(leaderTotal, pct decimal.Decimal) decimal.Decimal {
	return leaderTotal.Mul(hundred.Add(pct)).Div(hundred)
}

// DisplayMinimum is RequiredTotal rounded up to a whole unit, the figure shown to bidders.
func DisplayMinimum(leaderTotal, pct decimal.Decimal) decimal.Decimal {
	return RequiredTotal(leaderTotal, pct).Ceil()
}

// MinimumPerYear is the per-year amount, rounded up to cents, that reaches required over years.
func MinimumPerYear(required decimal.Decimal, years int) decimal.Decimal {
	if years < 1 {
		return required
	}
	return required.Div(decimal.NewFromInt(int64(years))).RoundCeil(2)
}

// BudgetDelta is the additional per-year money a bid commits. A team that already leads the
// player is charged only the difference from its own leading amount.
func BudgetDelta(teamID uuid.UUID, amount decimal.Decimal, leader *models.Bid) decimal.Decimal {
	if leader != nil && leader.TeamID == teamID {
		return amount.Sub(leader.AmountPerYear)
	}
	return amount
}

// checkIncrement enforces the minimum raise over the current leader.
func checkIncrement(leader models.Bid, offered, pct decimal.Decimal, years int) error {
	required := RequiredTotal(leader.TotalValue, pct)
	if offered.LessThan(required) {
		return &BelowMinimumIncrementError{
			CurrentTotal:     leader.TotalValue,
			RequiredTotal:    required,
			OfferedTotal:     offered,
			IncrementPercent: pct,
			MinimumPerYear:   MinimumPerYear(required, years),
		}
	}
	return nil
}
