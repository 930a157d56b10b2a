package document

import (
	"fmt"
	"strings"
	"time"

	"github.com/reagentlab/tracker/pkg/model"
)

const usageRecordRows = 25

func dateOf(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

func deref(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func fieldName(f *model.ReagentField) string {
	if f == nil {
		return "-"
	}
	return f.Name
}

func location(pr *model.PersonalReagent) string {
	parts := make([]string, 0, 3)
	if pr.Laboratory != nil {
		parts = append(parts, pr.Laboratory.Name)
	}
	if pr.Room != "" {
		parts = append(parts, pr.Room)
	}
	if pr.DetailedLocation != nil && *pr.DetailedLocation != "" {
		parts = append(parts, *pr.DetailedLocation)
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " / ")
}

func ownerName(pr *model.PersonalReagent) string {
	if pr.MainOwner == nil {
		return "-"
	}
	return pr.MainOwner.FullName()
}

// UsageRecord is the withdrawal log kept next to a hazardous reagent. The table is left blank
// for hand written entries.
func UsageRecord(pr *model.PersonalReagent, institution string, now time.Time) *Document {
	r := pr.Reagent
	if r == nil {
		r = &model.Reagent{}
	}
	codes := make([]string, 0, len(r.HazardStatements))
	for _, h := range r.HazardStatements {
		codes = append(codes, h.Code)
	}
	project := "-"
	if pr.ProjectProcedure != nil {
		project = pr.ProjectProcedure.Name
	}
	return &Document{
		Title:       "Usage record " + r.Name,
		Subtitle:    fmt.Sprintf("%s, %s %s", fieldName(r.Producer), r.CatalogNo, deref(pr.LotNo)),
		Institution: institution,
		Meta: []Field{
			{Label: "Reagent", Value: r.Name},
			{Label: "CAS", Value: deref(r.CAS)},
			{Label: "Signal word", Value: string(r.SignalWord())},
			{Label: "Hazard statements", Value: strings.Join(codes, ", ")},
			{Label: "Owner", Value: ownerName(pr)},
			{Label: "Project procedure", Value: project},
			{Label: "Location", Value: location(pr)},
			{Label: "Received", Value: pr.ReceiptPurchaseDate.Format("2006-01-02")},
			{Label: "Expires", Value: dateOf(pr.ExpirationDate)},
			{Label: "Stock id", Value: pr.UUID.String()},
		},
		Columns:     []string{"Date", "Amount taken", "Unit", "Purpose", "Name", "Signature"},
		BlankRows:   usageRecordRows,
		Signatures:  []string{"Owner", "Lab manager"},
		GeneratedAt: now,
	}
}

// Report lists stock for lab managers.
func Report(items []*model.PersonalReagent, total int64, filters []Field, institution, requester string, now time.Time) *Document {
	rows := make([][]string, 0, len(items))
	for _, pr := range items {
		name, producer, catalog := "-", "-", "-"
		if pr.Reagent != nil {
			name, producer, catalog = pr.Reagent.Name, fieldName(pr.Reagent.Producer), pr.Reagent.CatalogNo
		}
		flags := make([]string, 0, 3)
		if pr.IsCritical {
			flags = append(flags, "critical")
		}
		if pr.IsArchived {
			flags = append(flags, "archived "+dateOf(pr.DisposalUtilizationDate))
		}
		if pr.IsUsageRecordGenerated {
			flags = append(flags, "usage record")
		}
		rows = append(rows, []string{
			name, producer, catalog, deref(pr.LotNo), ownerName(pr), location(pr),
			dateOf(pr.ExpirationDate), strings.Join(flags, ", "),
		})
	}
	meta := append([]Field{
		{Label: "Requested by", Value: requester},
		{Label: "Entries", Value: fmt.Sprintf("%d of %d", len(items), total)},
	}, filters...)
	return &Document{
		Title:       "Reagent stock report " + now.Format("2006-01-02"),
		Institution: institution,
		Meta:        meta,
		Columns:     []string{"Reagent", "Producer", "Catalog no", "Lot", "Owner", "Location", "Expires", "Status"},
		Rows:        rows,
		GeneratedAt: now,
	}
}
