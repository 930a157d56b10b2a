package pubchem

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reagentlab/tracker/pkg/common/code"
)

func TestGetCompoundByCAS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "/name/0-0-0/") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"PropertyTable":{"Properties":[{"CID":702,"Title":"Ethanol","MolecularFormula":"C2H6O","CanonicalSMILES":"CCO"}]}}`))
	}))
	defer srv.Close()

	client := NewWithAddr(srv.URL)
	info, err := client.GetCompoundByCAS(context.Background(), "64-17-5")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if info.Name != "Ethanol" || info.SMILES != "CCO" || info.CID != 702 {
		t.Fatalf("unexpected compound %+v", info)
	}

	if _, err := client.GetCompoundByCAS(context.Background(), "0-0-0"); !errors.Is(err, code.ReagentCASNotFindErr) {
		t.Fatalf("expected not found, got %v", err)
	}
}
