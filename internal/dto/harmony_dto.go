package dto

// Note lists travel as comma-separated query values, e.g. notes=C,E,G.
// Limit is an optional second note list results must stay compatible with.

type ChordLookupRequest struct {
	Root     string `query:"root" validate:"required"`
	Category string `query:"category" validate:"required"`
	Limit    string `query:"limit"`
}

type ChordExtensionsRequest struct {
	Notes     string `query:"notes" validate:"required"`
	Root      string `query:"root"`
	Category  string `query:"category" validate:"required"`
	TriadBase string `query:"triad_base"`
	Limit     string `query:"limit"`
}

type ChordCategoryRequest struct {
	Root  string `query:"root" validate:"required"`
	Notes string `query:"notes" validate:"required"`
}

// RelationRequest serves alterations, appendments and deductions.
type RelationRequest struct {
	Notes string `query:"notes" validate:"required"`
	Limit string `query:"limit"`
}

type RotationRequest struct {
	Notes string `query:"notes" validate:"required"`
	Root  string `query:"root"`
	Limit string `query:"limit"`
}

type ScaleLookupRequest struct {
	Root    string `query:"root" validate:"required"`
	GroupID string `query:"group_id" validate:"required"`
	Limit   string `query:"limit"`
}

type ScaleGroupsRequest struct {
	Root  string `query:"root" validate:"required"`
	Type  string `query:"type" validate:"required"`
	Limit string `query:"limit"`
}

type ScaleModesRequest struct {
	Root  string `query:"root" validate:"required"`
	Mode  string `query:"mode" validate:"required"`
	Limit string `query:"limit"`
}

type SubscalesRequest struct {
	Notes    string `query:"notes" validate:"required"`
	AlterBy  int    `query:"alter_by" validate:"required,min=1"`
	LeaveOut int    `query:"leave_out" validate:"min=0"`
	Limit    string `query:"limit"`
}

type ScaleSearchRequest struct {
	Query string `query:"q"`
	Notes string `query:"notes"`
	Limit string `query:"limit"`
}
