package repo

import "context"

// CompoundInfo holds the basic information for a chemical compound.
type CompoundInfo struct {
	CID              int64  `json:"cid"`
	Name             string `json:"name"`
	MolecularFormula string `json:"molecular_formula"`
	SMILES           string `json:"smiles"`
}

// PubChemRepo looks compounds up by CAS registry number.
type PubChemRepo interface {
	GetCompoundByCAS(ctx context.Context, cas string) (*CompoundInfo, error)
}
