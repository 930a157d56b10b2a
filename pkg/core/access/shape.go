package access

// Shape names the field rules applied to a payload or a response. It shapes data only;
// Authorize is the security boundary.
type Shape int

const (
	ShapeDefault Shape = iota
	// ShapeAdmin may write every field, validated flags default to true.
	ShapeAdmin
	// ShapeValidator creates validated records without being an administrator.
	ShapeValidator
	// ShapeContributor creates records that wait for admin validation.
	ShapeContributor
	// ShapeOwner edits its own stock, ownership and lifecycle flags stay read-only.
	ShapeOwner
	// ShapeManagerPatch is a lab manager patching stock it does not own.
	ShapeManagerPatch
	// ShapeSelf is a user editing their own account.
	ShapeSelf
)

var shapeNames = map[Shape]string{
	ShapeDefault:      "default",
	ShapeAdmin:        "admin",
	ShapeValidator:    "validator",
	ShapeContributor:  "contributor",
	ShapeOwner:        "owner",
	ShapeManagerPatch: "manager_patch",
	ShapeSelf:         "self",
}

func (s Shape) String() string {
	return shapeNames[s]
}

// Validated reports whether records written under this shape start validated.
func (s Shape) Validated() bool {
	return s == ShapeAdmin || s == ShapeValidator
}

// ManagerPatchFields are the personal reagent fields a non-owning lab manager may patch.
var ManagerPatchFields = map[string]struct{}{
	"is_critical":       {},
	"comment":           {},
	"laboratory":        {},
	"room":              {},
	"detailed_location": {},
}
