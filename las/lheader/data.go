// Package lheader holds the header sections of a LAS well log: a type tag,
// a prefix, and an ordered list of descriptors addressable by name.
package lheader

type (
	// Descriptor is one entry of a header section. Name is the lookup key,
	// the other fields are carried as given.
	Descriptor struct {
		Name        string `json:"name"`
		Unit        string `json:"unit"`
		Value       string `json:"value"`
		Description string `json:"description"`
	}
	Type string
)

const (
	TypeVersion   = Type("VersionHeader")
	TypeWell      = Type("WellHeader")
	TypeCurve     = Type("CurveHeader")
	TypeParameter = Type("ParameterHeader")
	TypeOther     = Type("OtherHeader")
)
