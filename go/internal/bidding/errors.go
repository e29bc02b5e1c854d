package bidding

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/shopspring/decimal"
)

// RejectionReason is the machine-readable code for a rejected bid.
type RejectionReason string

const (
	ReasonAuctionClosed         RejectionReason = "AUCTION_CLOSED"
	ReasonInvalidAmount         RejectionReason = "INVALID_AMOUNT"
	ReasonInvalidTerm           RejectionReason = "INVALID_TERM"
	ReasonBidLimitExceeded      RejectionReason = "BID_LIMIT_EXCEEDED"
	ReasonBelowMinimumIncrement RejectionReason = "BELOW_MINIMUM_INCREMENT"
	ReasonInsufficientBudget    RejectionReason = "INSUFFICIENT_BUDGET"
	ReasonNotFound              RejectionReason = "NOT_FOUND"
)

// Rejection is implemented by every error that reports a business-rule refusal.
// Errors that do not implement it are infrastructure failures.
type Rejection interface {
	error
	Reason() RejectionReason
}

// AsRejection unwraps err to a Rejection if it is one.
func AsRejection(err error) (Rejection, bool) {
	var r Rejection
	if errors.As(err, &r) {
		return r, true
	}
	return nil, false
}

// AuctionClosedError is returned when the gate is closed.
type AuctionClosedError struct {
	DeadlineType models.DeadlineType
	Deadline     *time.Time
}

func (e *AuctionClosedError) Error() string {
	if e.DeadlineType == models.DeadlineTypeDatetime && e.Deadline != nil {
		return fmt.Sprintf("the auction closed at %s", e.Deadline.UTC().Format(time.RFC3339))
	}
	return "the auction is closed"
}

func (e *AuctionClosedError) Reason() RejectionReason { return ReasonAuctionClosed }

// InvalidAmountError is returned for a non-positive or malformed per-year amount.
type InvalidAmountError struct {
	Amount decimal.Decimal
	Detail string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount per year %s: %s", e.Amount.String(), e.Detail)
}

func (e *InvalidAmountError) Reason() RejectionReason { return ReasonInvalidAmount }

// InvalidTermError is returned when the contract length is outside 1..MaxYears.
type InvalidTermError struct {
	Years    int
	MaxYears int
}

func (e *InvalidTermError) Error() string {
	return fmt.Sprintf("contract length must be between 1 and %d years, got %d", e.MaxYears, e.Years)
}

func (e *InvalidTermError) Reason() RejectionReason { return ReasonInvalidTerm }

// BidLimitExceededError is returned when the team has used all follow-up bids on a player.
type BidLimitExceededError struct {
	Limit  int
	Placed int
}

func (e *BidLimitExceededError) Error() string {
	return fmt.Sprintf("maximum of %d bids on this player reached", e.Limit)
}

func (e *BidLimitExceededError) Reason() RejectionReason { return ReasonBidLimitExceeded }

// Remaining is the number of follow-up bids the team may still place.
func (e *BidLimitExceededError) Remaining() int {
	if e.Placed >= e.Limit {
		return 0
	}
	return e.Limit - e.Placed
}

// BelowMinimumIncrementError is returned when the offered total does not beat the leader by
// the configured percentage.
type BelowMinimumIncrementError struct {
	CurrentTotal     decimal.Decimal
	RequiredTotal    decimal.Decimal
	OfferedTotal     decimal.Decimal
	IncrementPercent decimal.Decimal
	// MinimumPerYear is the smallest per-year amount that qualifies at the offered term.
	MinimumPerYear decimal.Decimal
}

func (e *BelowMinimumIncrementError) Error() string {
	return fmt.Sprintf("bid total must be at least %s (current highest %s + %s%%), offered %s",
		e.RequiredTotal.StringFixed(2), e.CurrentTotal.StringFixed(2),
		e.IncrementPercent.String(), e.OfferedTotal.StringFixed(2))
}

func (e *BelowMinimumIncrementError) Reason() RejectionReason { return ReasonBelowMinimumIncrement }

// InsufficientBudgetError is returned when the per-year commitment exceeds what the team has left.
type InsufficientBudgetError struct {
	Needed    decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientBudgetError) Error() string {
	return fmt.Sprintf("insufficient budget: need %s per year but only %s available",
		e.Needed.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientBudgetError) Reason() RejectionReason { return ReasonInsufficientBudget }

// NotFoundError is returned when a referenced entity is missing, archived, or not usable.
type NotFoundError struct {
	Entity string
	ID     uuid.UUID
	Detail string
}

func (e *NotFoundError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s not found: %s", e.Entity, e.ID, e.Detail)
	}
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

func (e *NotFoundError) Reason() RejectionReason { return ReasonNotFound }
