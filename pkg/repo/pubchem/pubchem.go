package pubchem

import (
	"context"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/reagentlab/tracker/internal/config"
	"github.com/reagentlab/tracker/pkg/common/code"
	"github.com/reagentlab/tracker/pkg/middleware/logger"
	"github.com/reagentlab/tracker/pkg/repo"
)

type property struct {
	CID              int64  `json:"CID"`
	Title            string `json:"Title"`
	MolecularFormula string `json:"MolecularFormula"`
	IUPACName        string `json:"IUPACName"`
	IsomericSMILES   string `json:"IsomericSMILES"`
	CanonicalSMILES  string `json:"CanonicalSMILES"`
	SMILES           string `json:"SMILES"`
}

type PropertyResponse struct {
	PropertyTable struct {
		Properties []property `json:"Properties"`
	} `json:"PropertyTable"`
}

type pubchemImpl struct {
	client *resty.Client
}

func NewPubChemRepo() repo.PubChemRepo {
	return NewWithAddr(config.Global().RPC.PubChem.Addr)
}

func NewWithAddr(baseURL string) repo.PubChemRepo {
	return &pubchemImpl{
		client: resty.New().
			SetTimeout(30*time.Second).
			SetBaseURL(baseURL).
			SetHeader("Content-Type", "application/json"),
	}
}

func (p *pubchemImpl) GetCompoundByCAS(ctx context.Context, cas string) (*repo.CompoundInfo, error) {
	properties := "Title,MolecularFormula,IUPACName,IsomericSMILES,CanonicalSMILES,SMILES"
	urlPath := "/rest/pug/compound/name/{cas}/property/{props}/JSON"

	propResp := &PropertyResponse{}
	res, err := p.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"props": properties,
			"cas":   cas,
		}).
		SetResult(propResp).
		Get(urlPath)
	if err != nil {
		logger.Errorf(ctx, "request pubchem properties cas: %s err: %+v", cas, err)
		return nil, code.ReagentCASQueryErr.WithErr(err)
	}

	if res.StatusCode() == http.StatusNotFound {
		return nil, code.ReagentCASNotFindErr.WithMsgf("cas: %s", cas)
	}
	if res.StatusCode() != http.StatusOK {
		return nil, code.RPCHttpCodeErr.WithMsgf("pubchem property query failed: status %d", res.StatusCode())
	}
	if len(propResp.PropertyTable.Properties) == 0 {
		return nil, code.ReagentCASNotFindErr.WithMsgf("cas: %s", cas)
	}

	propData := propResp.PropertyTable.Properties[0]

	name := propData.Title
	if name == "" {
		name = propData.IUPACName
	}

	smiles := propData.IsomericSMILES
	if smiles == "" {
		smiles = propData.CanonicalSMILES
	}
	if smiles == "" {
		smiles = propData.SMILES
	}

	return &repo.CompoundInfo{
		CID:              propData.CID,
		Name:             name,
		MolecularFormula: propData.MolecularFormula,
		SMILES:           smiles,
	}, nil
}
