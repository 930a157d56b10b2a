// Package lifecycle holds the state rules of personal reagents and reagent requests.
// Everything here is pure: callers pass the current state and receive a new value.
package lifecycle

import (
	"time"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/model"
)

type ArchiveTransition int

const (
	ArchiveNone ArchiveTransition = iota
	// ArchiveSet is active to archived.
	ArchiveSet
	// ArchiveCleared is archived back to active.
	ArchiveCleared
)

// StockState is the lifecycle part of a personal reagent.
type StockState struct {
	Archived             bool
	DisposalDate         *time.Time
	UsageRecordGenerated bool
}

func StateOf(p *model.PersonalReagent) StockState {
	return StockState{
		Archived:             p.IsArchived,
		DisposalDate:         p.DisposalUtilizationDate,
		UsageRecordGenerated: p.IsUsageRecordGenerated,
	}
}

// Archive resolves a requested archive flag against the current state. A nil request keeps the
// state. The disposal date follows the flag: today on archive, nil on restore. Client supplied
// disposal dates never reach this function.
func Archive(cur StockState, requested *bool, now time.Time) (StockState, ArchiveTransition) {
	next := cur
	if requested == nil || *requested == cur.Archived {
		return next, ArchiveNone
	}
	if *requested {
		today := Today(now)
		next.Archived = true
		next.DisposalDate = &today
		return next, ArchiveSet
	}
	next.Archived = false
	next.DisposalDate = nil
	return next, ArchiveCleared
}

// GenerateUsageRecord flips the usage record flag. It never goes back to false.
func GenerateUsageRecord(cur StockState) StockState {
	next := cur
	next.UsageRecordGenerated = true
	return next
}

// Today truncates now to a calendar date in its own location.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// ChangeStatus validates a request transition. Only awaiting requests move, and only to a
// terminal status.
func ChangeStatus(from, to model.RequestStatus) error {
	if !to.Valid() || !to.Terminal() {
		return code.ValidationErr.WithField("status", "status must be AP or RE")
	}
	if from != model.RequestAwaiting {
		return code.RequestStatusErr.WithField("status", "request was already answered")
	}
	return nil
}

// CanRequest checks the creation preconditions of a reagent request against a fresh read of the
// target and its awaiting requests.
func CanRequest(requesterID, ownerID int64, awaiting int64) error {
	if requesterID == ownerID {
		return code.RequestOwnReagentErr.WithField("personal_reagent", code.RequestOwnReagentErr.String())
	}
	if awaiting > 0 {
		return code.RequestDuplicateErr.WithField("personal_reagent", code.RequestDuplicateErr.String())
	}
	return nil
}
