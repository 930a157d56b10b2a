package document

import (
	"strings"
	"testing"
	"time"

	"github.com/reagentlab/tracker/pkg/model"
	"github.com/reagentlab/tracker/pkg/utils"
)

func TestHTMLEscapesValues(t *testing.T) {
	html, err := HTML(&Document{
		Title:     "Usage record <Benzene>",
		Meta:      []Field{{Label: "Owner", Value: "a&b"}},
		Columns:   []string{"Date", "Amount"},
		Rows:      [][]string{{"2024-01-01", "5 ml"}},
		BlankRows: 2,
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(html, "<Benzene>") || !strings.Contains(html, "&lt;Benzene&gt;") {
		t.Fatalf("title not escaped: %s", html)
	}
	if !strings.Contains(html, "a&amp;b") {
		t.Fatalf("meta not escaped")
	}
	if got := strings.Count(html, `<td class="blank">`); got != 4 {
		t.Fatalf("expected 4 blank cells, got %d", got)
	}
}

func TestUsageRecordSheet(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	pr := &model.PersonalReagent{
		Reagent: &model.Reagent{
			Name:      "Benzene",
			CatalogNo: "B-1",
			CAS:       utils.Ptr("71-43-2"),
			HazardStatements: []*model.HazardStatement{
				{Code: "H350", SignalWord: model.SignalDanger},
				{Code: "H225", SignalWord: model.SignalWarning},
			},
		},
		MainOwner:           &model.User{Username: "alice", FirstName: "Alice"},
		Laboratory:          &model.Laboratory{Name: "B1"},
		Room:                "101",
		ReceiptPurchaseDate: now,
	}
	doc := UsageRecord(pr, "Institute", now)
	if doc.BlankRows != usageRecordRows || len(doc.Rows) != 0 {
		t.Fatalf("usage record should be a blank log, got %+v", doc)
	}
	meta := map[string]string{}
	for _, f := range doc.Meta {
		meta[f.Label] = f.Value
	}
	if meta["Signal word"] != "Danger" || meta["Hazard statements"] != "H350, H225" || meta["Location"] != "B1 / 101" {
		t.Fatalf("unexpected meta %+v", meta)
	}
	if Filename(doc.Title) != "Usage-record-Benzene.pdf" {
		t.Fatalf("unexpected filename %s", Filename(doc.Title))
	}
}

func TestReportRows(t *testing.T) {
	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []*model.PersonalReagent{
		{Reagent: &model.Reagent{Name: "Ethanol"}, IsCritical: true, IsArchived: true, DisposalUtilizationDate: &now},
		{Reagent: &model.Reagent{Name: "Acetone"}},
	}
	doc := Report(items, 7, []Field{{Label: "Laboratory", Value: "B1"}}, "Institute", "lm", now)
	if len(doc.Rows) != 2 || doc.Rows[0][7] != "critical, archived 2024-03-01" {
		t.Fatalf("unexpected rows %+v", doc.Rows)
	}
	if doc.Meta[1].Value != "2 of 7" || doc.Meta[2].Label != "Laboratory" {
		t.Fatalf("unexpected meta %+v", doc.Meta)
	}
}

func TestPercentEncode(t *testing.T) {
	if got := percentEncode("a b<é"); got != "a%20b%3C%C3%A9" {
		t.Fatalf("unexpected encoding %s", got)
	}
}
