package personal

import (
	"strings"
	"time"

	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/lifecycle"
	core "github.com/reagentlab/tracker/pkg/core/personal"
	"github.com/reagentlab/tracker/pkg/model"
)

// refs are the associations of an edit, looked up before apply runs.
type refs struct {
	reagentID    int64
	ownerID      int64
	laboratoryID int64
	project      *model.ProjectProcedure
}

func keep[T any](shape access.Shape, field string, v *T) *T {
	if shape != access.ShapeManagerPatch {
		return v
	}
	if _, ok := access.ManagerPatchFields[field]; ok {
		return v
	}
	return nil
}

// filter drops what the shape may not write. Derived fields are always dropped.
func filter(shape access.Shape, in *core.PersonalReagentReq) *core.PersonalReagentReq {
	out := &core.PersonalReagentReq{
		Reagent:             keep(shape, "reagent", in.Reagent),
		ProjectProcedure:    keep(shape, "project_procedure", in.ProjectProcedure),
		Laboratory:          keep(shape, "laboratory", in.Laboratory),
		Room:                keep(shape, "room", in.Room),
		DetailedLocation:    keep(shape, "detailed_location", in.DetailedLocation),
		LotNo:               keep(shape, "lot_no", in.LotNo),
		ReceiptPurchaseDate: keep(shape, "receipt_purchase_date", in.ReceiptPurchaseDate),
		ExpirationDate:      keep(shape, "expiration_date", in.ExpirationDate),
		Comment:             keep(shape, "comment", in.Comment),
		IsCritical:          keep(shape, "is_critical", in.IsCritical),
		IsArchived:          keep(shape, "is_archived", in.IsArchived),
	}
	if shape == access.ShapeAdmin {
		out.MainOwner = in.MainOwner
	}
	return out
}

func optional(cur *string, v *string, partial bool) *string {
	if v == nil {
		if partial {
			return cur
		}
		return nil
	}
	s := strings.TrimSpace(*v)
	if s == "" {
		return nil
	}
	return &s
}

// apply computes the next row from the current one. cur and in are not modified; the result
// carries no associations so it can be written as is.
func apply(cur *model.PersonalReagent, in *core.PersonalReagentReq, r *refs, partial bool, prefix string, now time.Time) (*model.PersonalReagent, lifecycle.ArchiveTransition, error) {
	next := *cur
	next.Reagent, next.MainOwner, next.ProjectProcedure, next.Laboratory = nil, nil, nil, nil

	errs := map[string]string{}
	if !partial {
		for field, missing := range map[string]bool{
			"reagent":               in.Reagent == nil,
			"laboratory":            in.Laboratory == nil,
			"room":                  in.Room == nil,
			"receipt_purchase_date": in.ReceiptPurchaseDate == nil,
		} {
			if missing {
				errs[field] = "this field is required"
			}
		}
	}

	next.ReagentID = r.reagentID
	next.MainOwnerID = r.ownerID
	next.LaboratoryID = r.laboratoryID
	next.ProjectProcedureID = nil
	if r.project != nil {
		id := r.project.ID
		next.ProjectProcedureID = &id
	}

	if in.Room != nil {
		next.Room = strings.TrimSpace(*in.Room)
		if next.Room == "" {
			errs["room"] = "this field may not be blank"
		}
	}
	next.DetailedLocation = optional(cur.DetailedLocation, in.DetailedLocation, partial)
	next.LotNo = optional(cur.LotNo, in.LotNo, partial)
	next.Comment = optional(cur.Comment, in.Comment, partial)

	if in.ReceiptPurchaseDate != nil {
		if in.ReceiptPurchaseDate.IsZero() {
			errs["receipt_purchase_date"] = "this field may not be null"
		} else {
			next.ReceiptPurchaseDate = in.ReceiptPurchaseDate.Time
		}
	}
	switch {
	case in.ExpirationDate != nil:
		next.ExpirationDate = in.ExpirationDate.Ptr()
	case !partial:
		next.ExpirationDate = nil
	}
	if next.ExpirationDate != nil && !next.ReceiptPurchaseDate.IsZero() && next.ExpirationDate.Before(next.ReceiptPurchaseDate) {
		errs["expiration_date"] = "expiration date is before the receipt date"
	}

	switch {
	case in.IsCritical != nil:
		next.IsCritical = *in.IsCritical
	case !partial:
		next.IsCritical = false
	}

	state, transition := lifecycle.Archive(lifecycle.StateOf(cur), in.IsArchived, now)
	next.IsArchived = state.Archived
	next.DisposalUtilizationDate = state.DisposalDate

	if len(errs) > 0 {
		return nil, lifecycle.ArchiveNone, code.ValidationErr.WithFields(errs)
	}

	if r.project != nil {
		if !r.project.HasWorker(next.MainOwnerID) {
			return nil, lifecycle.ArchiveNone, code.PersonalReagentProjectErr.WithField("project_procedure",
				"the owner must be a worker of the project procedure")
		}
		if prefix != "" && strings.HasPrefix(r.project.Name, prefix) && next.DetailedLocation == nil {
			return nil, lifecycle.ArchiveNone, code.PersonalReagentLocationErr.WithField("detailed_location",
				"detailed location is required for "+prefix+" project procedures")
		}
	}
	return &next, transition, nil
}

// columns are the writable columns of a stock row. The owner column is only written when the edit
// changed it, ownership otherwise moves through request approval.
func columns(cur, p *model.PersonalReagent) map[string]any {
	values := map[string]any{
		"reagent_id":                p.ReagentID,
		"project_procedure_id":      p.ProjectProcedureID,
		"laboratory_id":             p.LaboratoryID,
		"room":                      p.Room,
		"detailed_location":         p.DetailedLocation,
		"lot_no":                    p.LotNo,
		"receipt_purchase_date":     p.ReceiptPurchaseDate,
		"expiration_date":           p.ExpirationDate,
		"disposal_utilization_date": p.DisposalUtilizationDate,
		"comment":                   p.Comment,
		"is_critical":               p.IsCritical,
		"is_archived":               p.IsArchived,
	}
	if p.MainOwnerID != cur.MainOwnerID {
		values["main_owner_id"] = p.MainOwnerID
	}
	return values
}
