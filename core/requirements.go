package core

import "strings"

// Requirement field names. These are the canonical identifiers used in
// missing-field reporting, relaxation reporting, and persisted records.
const (
	FieldCurrentProvider = "current_provider"
	FieldTargetPrice     = "target_price"
	FieldTargetData      = "target_data"
	FieldRoaming         = "roaming"
	FieldMinDataGB       = "min_data_gb"
	FieldBYOD            = "byod"
)

// RequirementFields enumerates the six requirement fields in canonical order.
// Merge, validation, and missing-field reporting all work off this list so
// the field contract stays exhaustive in one place.
var RequirementFields = []string{
	FieldCurrentProvider,
	FieldTargetPrice,
	FieldTargetData,
	FieldRoaming,
	FieldMinDataGB,
	FieldBYOD,
}

// RequirementState holds the accumulated structured constraints for one
// conversation session. Every field is optional; a nil field means
// "unconstrained", never a default value. The state is immutable by
// convention: it is created empty at session start and changed only through
// Merge, which returns a new value.
type RequirementState struct {
	CurrentProvider *string
	TargetPrice     *float64
	TargetData      *float64 // GB
	Roaming         []string // lowercased country names; nil = unconstrained
	MinDataGB       *float64
	BYOD            *bool
}

// isFieldSet reports whether the named field carries a value.
// Kept as a single switch over RequirementFields so a new field cannot be
// added without the compiler-adjacent tests catching the omission.
func (r *RequirementState) isFieldSet(field string) bool {
	switch field {
	case FieldCurrentProvider:
		return r.CurrentProvider != nil
	case FieldTargetPrice:
		return r.TargetPrice != nil
	case FieldTargetData:
		return r.TargetData != nil
	case FieldRoaming:
		return r.Roaming != nil
	case FieldMinDataGB:
		return r.MinDataGB != nil
	case FieldBYOD:
		return r.BYOD != nil
	}
	return false
}

// Merge combines an existing state with a partial delta. For every field set
// in delta the delta value wins; fields absent from delta are left untouched.
// If existing is nil the result is built solely from delta.
// Merge is pure: neither input is modified and no I/O is performed.
func Merge(existing *RequirementState, delta RequirementState) RequirementState {
	var merged RequirementState
	if existing != nil {
		merged = existing.Clone()
	}

	if delta.CurrentProvider != nil {
		v := strings.ToLower(*delta.CurrentProvider)
		merged.CurrentProvider = &v
	}
	if delta.TargetPrice != nil {
		v := *delta.TargetPrice
		merged.TargetPrice = &v
	}
	if delta.TargetData != nil {
		v := *delta.TargetData
		merged.TargetData = &v
	}
	if delta.Roaming != nil {
		roaming := make([]string, len(delta.Roaming))
		for i, country := range delta.Roaming {
			roaming[i] = strings.ToLower(country)
		}
		merged.Roaming = roaming
	}
	if delta.MinDataGB != nil {
		v := *delta.MinDataGB
		merged.MinDataGB = &v
	}
	if delta.BYOD != nil {
		v := *delta.BYOD
		merged.BYOD = &v
	}

	return merged
}

// Clone returns a deep copy of the state.
func (r *RequirementState) Clone() RequirementState {
	var c RequirementState
	if r.CurrentProvider != nil {
		v := *r.CurrentProvider
		c.CurrentProvider = &v
	}
	if r.TargetPrice != nil {
		v := *r.TargetPrice
		c.TargetPrice = &v
	}
	if r.TargetData != nil {
		v := *r.TargetData
		c.TargetData = &v
	}
	if r.Roaming != nil {
		c.Roaming = make([]string, len(r.Roaming))
		copy(c.Roaming, r.Roaming)
	}
	if r.MinDataGB != nil {
		v := *r.MinDataGB
		c.MinDataGB = &v
	}
	if r.BYOD != nil {
		v := *r.BYOD
		c.BYOD = &v
	}
	return c
}

// WithoutFields returns a copy of the state with the named fields unset.
// The receiver is never modified; relaxation depends on this.
func (r *RequirementState) WithoutFields(fields ...string) RequirementState {
	c := r.Clone()
	for _, field := range fields {
		switch field {
		case FieldCurrentProvider:
			c.CurrentProvider = nil
		case FieldTargetPrice:
			c.TargetPrice = nil
		case FieldTargetData:
			c.TargetData = nil
		case FieldRoaming:
			c.Roaming = nil
		case FieldMinDataGB:
			c.MinDataGB = nil
		case FieldBYOD:
			c.BYOD = nil
		}
	}
	return c
}

// MissingFields returns the requirement fields that are currently unset,
// in canonical order.
func (r *RequirementState) MissingFields() []string {
	missing := make([]string, 0, len(RequirementFields))
	for _, field := range RequirementFields {
		if !r.isFieldSet(field) {
			missing = append(missing, field)
		}
	}
	return missing
}

// IsEmpty reports whether no field carries a value.
func (r *RequirementState) IsEmpty() bool {
	for _, field := range RequirementFields {
		if r.isFieldSet(field) {
			return false
		}
	}
	return true
}
