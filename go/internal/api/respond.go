package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/mcdev12/faauction/go/internal/archive"
	"github.com/mcdev12/faauction/go/internal/bidadmin"
	"github.com/mcdev12/faauction/go/internal/bidding"
	"github.com/mcdev12/faauction/go/internal/models"
	"github.com/mcdev12/faauction/go/internal/player"
	"github.com/mcdev12/faauction/go/internal/teams"
	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// Error codes for failures that are not bid rejections.
const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeConflict       = "CONFLICT"
	CodeUnauthorized   = "UNAUTHORIZED"
	CodeRateLimited    = "RATE_LIMITED"
	CodeInternal       = "INTERNAL"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Reason  string         `json:"reason"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeProblem(w http.ResponseWriter, status int, reason, message string) {
	writeJSON(w, status, ErrorResponse{Reason: reason, Message: message})
}

// writeError maps an app error to a response. Bid rejections carry their details; anything
// unrecognized is an infrastructure failure and its message is not exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if rej, ok := bidding.AsRejection(err); ok {
		status := http.StatusUnprocessableEntity
		if rej.Reason() == bidding.ReasonNotFound {
			status = http.StatusNotFound
		}
		writeJSON(w, status, ErrorResponse{
			Reason:  string(rej.Reason()),
			Message: rej.Error(),
			Details: rejectionDetails(rej),
		})
		return
	}

	switch {
	case errors.Is(err, models.ErrInvalidRequest):
		writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, err.Error())
	case errors.Is(err, teams.ErrTeamNotFound),
		errors.Is(err, teams.ErrMemberNotFound),
		errors.Is(err, player.ErrPlayerNotFound),
		errors.Is(err, archive.ErrArchiveNotFound),
		errors.Is(err, bidadmin.ErrBidNotFound):
		writeProblem(w, http.StatusNotFound, string(bidding.ReasonNotFound), err.Error())
	case errors.Is(err, teams.ErrTeamHasBids),
		errors.Is(err, teams.ErrBudgetBelowCommitments),
		errors.Is(err, archive.ErrNothingToArchive):
		writeProblem(w, http.StatusConflict, CodeConflict, err.Error())
	case isConstraintViolation(err):
		writeProblem(w, http.StatusConflict, CodeConflict, "request conflicts with existing data")
	default:
		log.Error().
			Err(err).
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, CodeInternal, "internal server error")
	}
}

// isConstraintViolation reports unique and foreign key violations.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code.Name() {
	case "unique_violation", "foreign_key_violation":
		return true
	}
	return false
}

func rejectionDetails(rej bidding.Rejection) map[string]any {
	switch e := rej.(type) {
	case *bidding.AuctionClosedError:
		d := map[string]any{"deadline_type": e.DeadlineType}
		if e.Deadline != nil {
			d["deadline"] = e.Deadline.UTC()
		}
		return d
	case *bidding.InvalidAmountError:
		return map[string]any{"amount_per_year": e.Amount, "detail": e.Detail}
	case *bidding.InvalidTermError:
		return map[string]any{"years": e.Years, "max_years": e.MaxYears}
	case *bidding.BidLimitExceededError:
		return map[string]any{"limit": e.Limit, "placed": e.Placed, "remaining": e.Remaining()}
	case *bidding.BelowMinimumIncrementError:
		return map[string]any{
			"current_total":     e.CurrentTotal,
			"required_total":    e.RequiredTotal,
			"offered_total":     e.OfferedTotal,
			"increment_percent": e.IncrementPercent,
			"minimum_per_year":  e.MinimumPerYear,
		}
	case *bidding.InsufficientBudgetError:
		return map[string]any{"needed": e.Needed, "available": e.Available}
	case *bidding.NotFoundError:
		d := map[string]any{"entity": e.Entity, "id": e.ID}
		if e.Detail != "" {
			d["detail"] = e.Detail
		}
		return d
	}
	return nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf("invalid request body: %v", err))
		return false
	}
	return true
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf("invalid %s", param))
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(w http.ResponseWriter, r *http.Request, key string) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, CodeInvalidRequest, fmt.Sprintf("%s must be an integer", key))
		return 0, false
	}
	return n, true
}
