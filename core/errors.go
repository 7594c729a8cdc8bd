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

import "errors"

// Domain errors
var (
	// ErrInvalidRequirement indicates a RequirementState failed validation.
	ErrInvalidRequirement = errors.New("invalid requirement")

	// ErrNegativeValue indicates a numeric requirement field is negative.
	ErrNegativeValue = errors.New("value cannot be negative")

	// ErrExtraction indicates the external extractor returned unparseable output.
	ErrExtraction = errors.New("requirement extraction failed")

	// ErrNoResults indicates filtering produced zero items even after
	// exhausting every relaxation step.
	ErrNoResults = errors.New("no matching plans")

	// ErrCatalogUnavailable indicates the catalog collaborator failed.
	ErrCatalogUnavailable = errors.New("catalog unavailable")

	// ErrVectorDimension indicates a query embedding does not match the
	// dimensionality of the catalog's precomputed vectors. This is a
	// configuration error, not a per-call condition.
	ErrVectorDimension = errors.New("embedding dimension mismatch")

	// ErrInvalidCatalogItem indicates a CatalogItem failed validation.
	ErrInvalidCatalogItem = errors.New("invalid catalog item")

	// ErrEmptyItemName indicates the item Name field is empty.
	ErrEmptyItemName = errors.New("item name cannot be empty")

	// ErrEmptyProvider indicates the item Provider field is empty.
	ErrEmptyProvider = errors.New("provider cannot be empty")
)
