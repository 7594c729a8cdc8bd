// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateRequirement validates a RequirementState according to domain rules.
//
// Validation rules:
//   - target_price, target_data, and min_data_gb must each be absent or >= 0
//
// NOT validated:
//   - missing fields (absence means "unconstrained" and is always legal)
//   - roaming country names (normalized at merge time)
//
// The returned error names the offending field so callers can render a
// validation message.
func ValidateRequirement(req *RequirementState) error {
	if req == nil {
		return fmt.Errorf("%w: requirement is nil", ErrInvalidRequirement)
	}

	for _, field := range RequirementFields {
		var value *float64
		switch field {
		case FieldTargetPrice:
			value = req.TargetPrice
		case FieldTargetData:
			value = req.TargetData
		case FieldMinDataGB:
			value = req.MinDataGB
		default:
			continue
		}
		if value != nil && *value < 0 {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRequirement, field, ErrNegativeValue)
		}
	}

	return nil
}

// ValidateCatalogItem validates a CatalogItem according to domain rules.
//
// Validation rules:
//   - Name must not be empty
//   - Provider must not be empty
//
// NOT validated (populated by the ingestion pipeline):
//   - Vector (can be empty until the embedding processor runs)
//   - ID (derived from content when 0)
func ValidateCatalogItem(item *CatalogItem) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidCatalogItem)
	}

	if item.Name == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrEmptyItemName)
	}

	if item.Provider == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCatalogItem, ErrEmptyProvider)
	}

	return nil
}
