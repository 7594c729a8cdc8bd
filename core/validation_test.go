package core

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRequirement(t *testing.T) {
	tests := []struct {
		name    string
		req     *RequirementState
		wantErr error
	}{
		{
			name:    "empty state is valid",
			req:     &RequirementState{},
			wantErr: nil,
		},
		{
			name: "fully specified valid state",
			req: &RequirementState{
				CurrentProvider: strPtr("rogers"),
				TargetPrice:     f64Ptr(50),
				TargetData:      f64Ptr(10),
				Roaming:         []string{"usa"},
				MinDataGB:       f64Ptr(5),
				BYOD:            boolPtr(true),
			},
			wantErr: nil,
		},
		{
			name:    "zero price is valid",
			req:     &RequirementState{TargetPrice: f64Ptr(0)},
			wantErr: nil,
		},
		{
			name:    "negative price",
			req:     &RequirementState{TargetPrice: f64Ptr(-1)},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "negative data",
			req:     &RequirementState{TargetData: f64Ptr(-0.5)},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "negative min data",
			req:     &RequirementState{MinDataGB: f64Ptr(-10)},
			wantErr: ErrNegativeValue,
		},
		{
			name:    "nil requirement",
			req:     nil,
			wantErr: ErrInvalidRequirement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequirement(tt.req)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateRequirement() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRequirement() = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidRequirement) {
				t.Errorf("validation errors must wrap ErrInvalidRequirement")
			}
		})
	}
}

func TestValidateRequirement_NamesOffendingField(t *testing.T) {
	err := ValidateRequirement(&RequirementState{TargetData: f64Ptr(-3)})
	if err == nil || !strings.Contains(err.Error(), FieldTargetData) {
		t.Errorf("error %v must name the offending field %q", err, FieldTargetData)
	}
}

func TestValidateCatalogItem(t *testing.T) {
	tests := []struct {
		name    string
		item    *CatalogItem
		wantErr error
	}{
		{
			name:    "valid item",
			item:    &CatalogItem{Name: "Essential 10GB", Provider: "bell"},
			wantErr: nil,
		},
		{
			name:    "empty name",
			item:    &CatalogItem{Provider: "bell"},
			wantErr: ErrEmptyItemName,
		},
		{
			name:    "empty provider",
			item:    &CatalogItem{Name: "Essential 10GB"},
			wantErr: ErrEmptyProvider,
		},
		{
			name:    "nil item",
			item:    nil,
			wantErr: ErrInvalidCatalogItem,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCatalogItem(tt.item)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateCatalogItem() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCatalogItem() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
