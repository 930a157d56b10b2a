package reagent

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/reagentlab/tracker/pkg/common"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/common/uuid"
	"github.com/reagentlab/tracker/pkg/core/access"
	"github.com/reagentlab/tracker/pkg/core/audit"
	core "github.com/reagentlab/tracker/pkg/core/reagent"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/repo"
	repoAudit "github.com/reagentlab/tracker/pkg/repo/audit"
	repoHazard "github.com/reagentlab/tracker/pkg/repo/hazard"
	repoPubchem "github.com/reagentlab/tracker/pkg/repo/pubchem"
	repoReagent "github.com/reagentlab/tracker/pkg/repo/reagent"
	repoReference "github.com/reagentlab/tracker/pkg/repo/reference"
)

var casPattern = regexp.MustCompile(`^(\d{2,7})-(\d{2})-(\d)$`)

type reagentImpl struct {
	reagentStore repo.ReagentRepo
	refStore     repo.ReferenceRepo
	hazardStore  repo.HazardRepo
	pubchem      repo.PubChemRepo
	recorder     *audit.Recorder
}

func New() core.Service {
	return &reagentImpl{
		reagentStore: repoReagent.NewReagentRepo(),
		refStore:     repoReference.New(),
		hazardStore:  repoHazard.New(),
		pubchem:      repoPubchem.NewPubChemRepo(),
		recorder:     audit.NewRecorder(repoAudit.New()),
	}
}

func (r *reagentImpl) List(ctx context.Context, req *core.ListReq) (*common.PageResp[[]*core.ReagentResp], error) {
	if err := access.Authorize(access.Current(ctx), access.ResReagent, access.ActList, nil); err != nil {
		return nil, err
	}
	req.Normalize()
	q := repo.ReagentQuery{
		NameLike:  strings.TrimSpace(req.Search),
		CAS:       strings.TrimSpace(req.CAS),
		Validated: req.Validated,
		Offset:    req.Offest(),
		Limit:     req.PageSize,
	}
	if req.Ordering != "" {
		order, ok := core.Orderings[req.Ordering]
		if !ok {
			return nil, code.ParamErr.WithField("ordering", fmt.Sprintf("unsupported ordering %q", req.Ordering))
		}
		q.OrderBy = order
	}
	if req.Producer != nil {
		producer, err := r.refStore.GetField(ctx, model.FieldProducer, *req.Producer)
		if err != nil {
			return nil, err
		}
		q.ProducerID = producer.ID
	}

	reagents, total, err := r.reagentStore.ListReagents(ctx, q)
	if err != nil {
		return nil, err
	}
	datas := make([]*core.ReagentResp, 0, len(reagents))
	for _, item := range reagents {
		datas = append(datas, core.ToResp(item))
	}
	return &common.PageResp[[]*core.ReagentResp]{Data: datas, Total: total, Page: req.Page, PageSize: req.PageSize}, nil
}

func (r *reagentImpl) Get(ctx context.Context, id uuid.UUID) (*core.ReagentResp, error) {
	if err := access.Authorize(access.Current(ctx), access.ResReagent, access.ActRetrieve, nil); err != nil {
		return nil, err
	}
	data, err := r.reagentStore.GetReagent(ctx, id)
	if err != nil {
		return nil, err
	}
	return core.ToResp(data), nil
}

func (r *reagentImpl) Create(ctx context.Context, req *core.ReagentReq) (*core.ReagentResp, error) {
	c := access.Current(ctx)
	if err := access.Authorize(c, access.ResReagent, access.ActCreate, nil); err != nil {
		return nil, err
	}
	shape := access.SelectShape(c, access.ResReagent, access.ActCreate, nil)

	data, links, err := r.resolve(ctx, shape, &model.Reagent{}, req, false)
	if err != nil {
		return nil, err
	}
	if err := r.reagentStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.reagentStore.SaveReagent(txCtx, data, links); err != nil {
			return catalogConflict(err)
		}
		fresh, err := r.reagentStore.GetReagentByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		data = fresh
		return r.recorder.Created(txCtx, audit.EntityReagent, data.UUID, core.ToResp(data))
	}); err != nil {
		logger.Errorf(ctx, "create reagent err: %+v", err)
		return nil, err
	}
	return core.ToResp(data), nil
}

func (r *reagentImpl) Update(ctx context.Context, id uuid.UUID, req *core.ReagentReq, partial bool) (*core.ReagentResp, error) {
	c := access.Current(ctx)
	act := access.ActUpdate
	if partial {
		act = access.ActPartialUpdate
	}
	if err := access.Authorize(c, access.ResReagent, act, nil); err != nil {
		return nil, err
	}
	cur, err := r.reagentStore.GetReagent(ctx, id)
	if err != nil {
		return nil, err
	}
	data, links, err := r.resolve(ctx, access.SelectShape(c, access.ResReagent, act, nil), cur, req, partial)
	if err != nil {
		return nil, err
	}

	before := audit.Snapshot(core.ToResp(cur))
	if err := r.reagentStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.reagentStore.SaveReagent(txCtx, data, links); err != nil {
			return catalogConflict(err)
		}
		fresh, err := r.reagentStore.GetReagentByID(txCtx, data.ID)
		if err != nil {
			return err
		}
		data = fresh
		return r.recorder.Updated(txCtx, audit.EntityReagent, cur.UUID, before, audit.Snapshot(core.ToResp(fresh)))
	}); err != nil {
		logger.Errorf(ctx, "update reagent %s err: %+v", id, err)
		return nil, err
	}
	return core.ToResp(data), nil
}

func (r *reagentImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := access.Authorize(access.Current(ctx), access.ResReagent, access.ActDestroy, nil); err != nil {
		return err
	}
	cur, err := r.reagentStore.GetReagent(ctx, id)
	if err != nil {
		return err
	}
	return r.reagentStore.ExecTx(ctx, func(txCtx context.Context) error {
		if err := r.reagentStore.DeleteReagent(txCtx, cur.ID); err != nil {
			return err
		}
		return r.recorder.Deleted(txCtx, audit.EntityReagent, cur.UUID, core.ToResp(cur))
	})
}

func (r *reagentImpl) QueryCAS(ctx context.Context, req *core.CasReq) (*core.CasResp, error) {
	if err := access.Authorize(access.Current(ctx), access.ResReagent, access.ActCASLookup, nil); err != nil {
		return nil, err
	}
	cas := strings.TrimSpace(req.CAS)
	if err := checkCAS(cas); err != nil {
		return nil, err
	}
	compound, err := r.pubchem.GetCompoundByCAS(ctx, cas)
	if err != nil {
		return nil, err
	}
	known, _, err := r.reagentStore.ListReagents(ctx, repo.ReagentQuery{CAS: cas, Limit: 50})
	if err != nil {
		return nil, err
	}
	resp := &core.CasResp{CAS: cas, Compound: compound, Reagents: make([]*core.ReagentResp, 0, len(known))}
	for _, item := range known {
		resp.Reagents = append(resp.Reagents, core.ToResp(item))
	}
	return resp, nil
}

func checkCAS(cas string) error {
	if problem := casProblem(cas); problem != "" {
		return code.ValidationErr.WithField("cas", problem)
	}
	return nil
}

// casProblem validates the registry number format and its check digit.
func casProblem(cas string) string {
	m := casPattern.FindStringSubmatch(cas)
	if m == nil {
		return "expected the form 1234567-12-1"
	}
	digits := m[1] + m[2]
	sum := 0
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]-'0') * (len(digits) - i)
	}
	if sum%10 != int(m[3][0]-'0') {
		return "check digit does not match"
	}
	return ""
}

func catalogConflict(err error) error {
	if code.Of(err) == code.ConflictErr {
		return code.ValidationErr.WithField("catalog_no", "this producer already lists the catalog number")
	}
	return err
}

// resolve builds the row and link set to save from cur and req. cur and req are left untouched.
func (r *reagentImpl) resolve(ctx context.Context, shape access.Shape, cur *model.Reagent, req *core.ReagentReq, partial bool) (*model.Reagent, *repo.ReagentLinks, error) {
	isNew := cur.ID == 0
	required := isNew || !partial
	// a full update of an existing reagent replaces it, absent optional fields are cleared
	replace := !isNew && !partial
	next := *cur
	next.Producer, next.ReagentType, next.Unit, next.Concentration, next.PurityQuality = nil, nil, nil, nil, nil
	next.StorageConditions, next.HazardStatements, next.PrecautionaryStatements = nil, nil, nil
	links := &repo.ReagentLinks{
		StorageConditions:       cur.StorageConditions,
		HazardStatements:        cur.HazardStatements,
		PrecautionaryStatements: cur.PrecautionaryStatements,
	}

	fields := map[string]string{}
	text := func(field string, dst *string, v *string) {
		switch {
		case v == nil && required:
			fields[field] = "this field is required"
		case v != nil && strings.TrimSpace(*v) == "":
			fields[field] = "this field may not be blank"
		case v != nil:
			*dst = strings.TrimSpace(*v)
		}
	}
	text("name", &next.Name, req.Name)
	text("catalog_no", &next.CatalogNo, req.CatalogNo)

	lookup := func(field string, kind model.FieldKind, v *uuid.UUID, mandatory bool) *model.ReagentField {
		if v == nil {
			if mandatory && required {
				fields[field] = "this field is required"
			}
			return nil
		}
		f, err := r.refStore.GetField(ctx, kind, *v)
		if err != nil {
			fields[field] = fmt.Sprintf("unknown %s", kind)
			return nil
		}
		return f
	}
	if f := lookup("producer", model.FieldProducer, req.Producer, true); f != nil {
		next.ProducerID = f.ID
	}
	if f := lookup("reagent_type", model.FieldReagentType, req.ReagentType, true); f != nil {
		next.ReagentTypeID = f.ID
	}
	if f := lookup("unit", model.FieldUnit, req.Unit, true); f != nil {
		next.UnitID = f.ID
	}
	if f := lookup("concentration", model.FieldConcentration, req.Concentration, false); f != nil {
		next.ConcentrationID = &f.ID
	} else if req.Concentration == nil && replace {
		next.ConcentrationID = nil
	}
	if f := lookup("purity_quality", model.FieldPurityQuality, req.PurityQuality, false); f != nil {
		next.PurityQualityID = &f.ID
	} else if req.PurityQuality == nil && replace {
		next.PurityQualityID = nil
	}

	if req.Volume != nil {
		if req.Volume.IsNegative() {
			fields["volume"] = "must not be negative"
		}
		next.Volume = *req.Volume
	}
	if req.CAS != nil {
		cas := strings.TrimSpace(*req.CAS)
		if cas == "" {
			next.CAS = nil
		} else if problem := casProblem(cas); problem != "" {
			fields["cas_no"] = problem
		} else {
			next.CAS = &cas
		}
	}
	if req.SafetyDataSheet != nil || replace {
		next.SafetyDataSheet = req.SafetyDataSheet
	}
	if req.SafetyInstruction != nil || replace {
		next.SafetyInstruction = req.SafetyInstruction
	}
	if req.CAS == nil && replace {
		next.CAS = nil
	}

	if req.StorageConditions != nil {
		found, err := r.refStore.GetFieldsByUUIDs(ctx, model.FieldStorageCondition, *req.StorageConditions)
		if err != nil {
			return nil, nil, err
		}
		if len(found) != len(distinct(*req.StorageConditions)) {
			fields["storage_conditions"] = "unknown storage condition"
		}
		links.StorageConditions = found
	} else if replace {
		links.StorageConditions = []*model.ReagentField{}
	}
	if req.HazardStatements != nil {
		found, err := r.hazardStore.GetHazardStatements(ctx, *req.HazardStatements)
		if err != nil {
			return nil, nil, err
		}
		if len(found) != len(distinct(*req.HazardStatements)) {
			fields["hazard_statements"] = "unknown hazard statement"
		}
		links.HazardStatements = found
	} else if replace {
		links.HazardStatements = []*model.HazardStatement{}
	}
	if req.PrecautionaryStatements != nil {
		found, err := r.hazardStore.GetPrecautionaryStatements(ctx, *req.PrecautionaryStatements)
		if err != nil {
			return nil, nil, err
		}
		if len(found) != len(distinct(*req.PrecautionaryStatements)) {
			fields["precautionary_statements"] = "unknown precautionary statement"
		}
		links.PrecautionaryStatements = found
	} else if replace {
		links.PrecautionaryStatements = []*model.PrecautionaryStatement{}
	}

	if req.IsUsageRecordRequired != nil {
		next.IsUsageRecordRequired = *req.IsUsageRecordRequired
	}
	if model.UsageRecordForced(links.HazardStatements) && !next.IsUsageRecordRequired {
		if len(fields) == 0 {
			return nil, nil, code.ReagentUsageRecordErr.WithField("is_usage_record_required",
				"must be true, a selected hazard statement requires a usage record")
		}
		fields["is_usage_record_required"] = "must be true, a selected hazard statement requires a usage record"
	}

	switch {
	case shape == access.ShapeContributor:
		next.IsValidatedByAdmin = false
	case req.IsValidatedByAdmin != nil:
		next.IsValidatedByAdmin = *req.IsValidatedByAdmin
	case isNew:
		next.IsValidatedByAdmin = shape.Validated()
	}

	if len(fields) > 0 {
		return nil, nil, code.ValidationErr.WithFields(fields)
	}
	return &next, links, nil
}

func distinct(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
