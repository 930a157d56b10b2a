// Package audit appends history records for every mutating command. Records are written on the
// caller's context so they commit or roll back with the change they describe.
package audit

import (
	"context"
	"encoding/json"
	"reflect"

	"gorm.io/datatypes"

	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/middleware/auth"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
)

// entity names used in history urls
const (
	EntityUser                   = "user"
	EntityLaboratory             = "laboratory"
	EntityReagentField           = "reagent_field"
	EntityPictogram              = "pictogram"
	EntityClpClassification      = "clp_classification"
	EntityHazardStatement        = "hazard_statement"
	EntityPrecautionaryStatement = "precautionary_statement"
	EntityReagent                = "reagent"
	EntityProjectProcedure       = "project_procedure"
	EntityPersonalReagent        = "personal_reagent"
	EntityReagentRequest         = "reagent_request"
)

// Change is the old and new value of one field.
type Change struct {
	Old any `json:"old"`
	New any `json:"new"`
}

type Recorder struct {
	store repo.AuditRepo
}

func NewRecorder(store repo.AuditRepo) *Recorder {
	return &Recorder{store: store}
}

func (r *Recorder) Created(ctx context.Context, entity string, id uuid.UUID, after any) error {
	return r.append(ctx, entity, id, model.ChangeCreate, Snapshot(after))
}

// Updated records the fields that differ between two snapshots. Nothing is written when no
// field changed.
func (r *Recorder) Updated(ctx context.Context, entity string, id uuid.UUID, before, after map[string]any) error {
	diff := Diff(before, after)
	if len(diff) == 0 {
		return nil
	}
	return r.append(ctx, entity, id, model.ChangeUpdate, diff)
}

func (r *Recorder) Deleted(ctx context.Context, entity string, id uuid.UUID, before any) error {
	return r.append(ctx, entity, id, model.ChangeDelete, Snapshot(before))
}

func (r *Recorder) append(ctx context.Context, entity string, id uuid.UUID, change model.ChangeType, diff any) error {
	raw, err := json.Marshal(diff)
	if err != nil {
		return err
	}
	rec := &model.AuditRecord{
		Entity:     entity,
		EntityUUID: id,
		ChangeType: change,
		Diff:       datatypes.JSON(raw),
	}
	if u := auth.GetCurrentUser(ctx); u != nil {
		actor := u.ID
		rec.ActorID = &actor
	}
	return r.store.Append(ctx, rec)
}

// Snapshot flattens v to its json field map.
func Snapshot(v any) map[string]any {
	out := map[string]any{}
	raw, err := json.Marshal(v)
	if err != nil {
		return out
	}
	_ = json.Unmarshal(raw, &out)
	return out
}

func Diff(before, after map[string]any) map[string]Change {
	diff := map[string]Change{}
	for k, nv := range after {
		if ov, ok := before[k]; !ok || !reflect.DeepEqual(ov, nv) {
			diff[k] = Change{Old: before[k], New: nv}
		}
	}
	for k, ov := range before {
		if _, ok := after[k]; !ok {
			diff[k] = Change{Old: ov}
		}
	}
	delete(diff, "updated_at")
	return diff
}
