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


package search

import (
	"errors"
	"fmt"

	"github.com/poiesic/planmatch/core"
)

var (
	// ErrCatalogRepositoryRequired is returned when a catalog repository is not provided.
	ErrCatalogRepositoryRequired = errors.New("catalog repository required")

	// ErrAIProviderRequired is returned when an AI provider is not provided.
	ErrAIProviderRequired = errors.New("AI provider required")

	// ErrInvalidResultCount is returned when the requested result count is not positive.
	ErrInvalidResultCount = errors.New("result count must be positive")
)

// NoResultsError reports that filtering produced zero candidates even after
// every rung of the relaxation ladder was tried. Attempts holds the field
// sets that were dropped, in the order they were tried; the first entry is
// empty (the unrelaxed requirement).
type NoResultsError struct {
	Attempts [][]string
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no matching plans after %d filter attempts", len(e.Attempts))
}

func (e *NoResultsError) Unwrap() error {
	return core.ErrNoResults
}
