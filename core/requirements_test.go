package core

import (
	"reflect"
	"testing"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }
func boolPtr(b bool) *bool      { return &b }

func TestMerge_FromNil(t *testing.T) {
	delta := RequirementState{
		TargetPrice: f64Ptr(50),
		Roaming:     []string{"China", "USA"},
	}

	merged := Merge(nil, delta)

	if merged.TargetPrice == nil || *merged.TargetPrice != 50 {
		t.Errorf("TargetPrice = %v, want 50", merged.TargetPrice)
	}
	if !reflect.DeepEqual(merged.Roaming, []string{"china", "usa"}) {
		t.Errorf("Roaming = %v, want lowercased country names", merged.Roaming)
	}
	if merged.CurrentProvider != nil || merged.TargetData != nil || merged.MinDataGB != nil || merged.BYOD != nil {
		t.Errorf("fields absent from delta must stay unset")
	}
}

func TestMerge_LastWriteWinsPerField(t *testing.T) {
	existing := RequirementState{
		CurrentProvider: strPtr("rogers"),
		TargetPrice:     f64Ptr(40),
		TargetData:      f64Ptr(10),
	}
	delta := RequirementState{
		TargetPrice: f64Ptr(55),
	}

	merged := Merge(&existing, delta)

	if *merged.TargetPrice != 55 {
		t.Errorf("TargetPrice = %v, want delta value 55", *merged.TargetPrice)
	}
	if *merged.CurrentProvider != "rogers" {
		t.Errorf("CurrentProvider = %v, want untouched existing value", *merged.CurrentProvider)
	}
	if *merged.TargetData != 10 {
		t.Errorf("TargetData = %v, want untouched existing value", *merged.TargetData)
	}
}

func TestMerge_Idempotent(t *testing.T) {
	existing := RequirementState{
		CurrentProvider: strPtr("bell"),
		MinDataGB:       f64Ptr(20),
	}
	delta := RequirementState{
		TargetPrice: f64Ptr(45),
		BYOD:        boolPtr(true),
		Roaming:     []string{"Japan"},
	}

	once := Merge(&existing, delta)
	twice := Merge(&once, delta)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("merge is not idempotent: %+v vs %+v", once, twice)
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	existing := RequirementState{TargetPrice: f64Ptr(40)}
	delta := RequirementState{TargetPrice: f64Ptr(60), Roaming: []string{"USA"}}

	_ = Merge(&existing, delta)

	if *existing.TargetPrice != 40 {
		t.Errorf("existing state was mutated")
	}
	if delta.Roaming[0] != "USA" {
		t.Errorf("delta was mutated")
	}
}

func TestMerge_NormalizesProviderCase(t *testing.T) {
	delta := RequirementState{CurrentProvider: strPtr("Rogers")}
	merged := Merge(nil, delta)

	if *merged.CurrentProvider != "rogers" {
		t.Errorf("CurrentProvider = %q, want lowercased", *merged.CurrentProvider)
	}
}

func TestMissingFields_CanonicalOrder(t *testing.T) {
	tests := []struct {
		name string
		req  RequirementState
		want []string
	}{
		{
			name: "empty state lists all six fields",
			req:  RequirementState{},
			want: []string{
				FieldCurrentProvider, FieldTargetPrice, FieldTargetData,
				FieldRoaming, FieldMinDataGB, FieldBYOD,
			},
		},
		{
			name: "partially filled",
			req: RequirementState{
				TargetPrice:     f64Ptr(50),
				TargetData:      f64Ptr(10),
				CurrentProvider: strPtr("rogers"),
			},
			want: []string{FieldRoaming, FieldMinDataGB, FieldBYOD},
		},
		{
			name: "zero values still count as set",
			req: RequirementState{
				TargetPrice: f64Ptr(0),
				BYOD:        boolPtr(false),
				Roaming:     []string{},
			},
			want: []string{FieldCurrentProvider, FieldTargetData, FieldMinDataGB},
		},
		{
			name: "fully specified",
			req: RequirementState{
				CurrentProvider: strPtr("bell"),
				TargetPrice:     f64Ptr(50),
				TargetData:      f64Ptr(10),
				Roaming:         []string{"usa"},
				MinDataGB:       f64Ptr(5),
				BYOD:            boolPtr(true),
			},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.MissingFields()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingFields() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWithoutFields(t *testing.T) {
	req := RequirementState{
		CurrentProvider: strPtr("rogers"),
		TargetPrice:     f64Ptr(50),
		TargetData:      f64Ptr(10),
		Roaming:         []string{"usa"},
	}

	relaxed := req.WithoutFields(FieldTargetPrice, FieldCurrentProvider)

	if relaxed.TargetPrice != nil || relaxed.CurrentProvider != nil {
		t.Errorf("relaxed fields must be unset")
	}
	if relaxed.TargetData == nil || relaxed.Roaming == nil {
		t.Errorf("other fields must survive relaxation")
	}
	// Original untouched.
	if req.TargetPrice == nil || req.CurrentProvider == nil {
		t.Errorf("WithoutFields must not mutate the receiver")
	}
}

func TestClone_Independence(t *testing.T) {
	req := RequirementState{
		TargetPrice: f64Ptr(50),
		Roaming:     []string{"usa", "china"},
	}

	c := req.Clone()
	*c.TargetPrice = 99
	c.Roaming[0] = "japan"

	if *req.TargetPrice != 50 {
		t.Errorf("clone shares TargetPrice storage with original")
	}
	if req.Roaming[0] != "usa" {
		t.Errorf("clone shares Roaming storage with original")
	}
}

func TestIsEmpty(t *testing.T) {
	var empty RequirementState
	if !empty.IsEmpty() {
		t.Errorf("zero state must be empty")
	}

	set := RequirementState{BYOD: boolPtr(false)}
	if set.IsEmpty() {
		t.Errorf("a set field, even false, means the state is not empty")
	}
}
