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


// Package search implements requirement-driven hybrid plan retrieval.
//
// The Engine type runs a two-stage search over the catalog:
//   - Hard predicate filtering with tolerance bands, walking a fixed
//     relaxation ladder when no item satisfies every constraint
//   - Semantic similarity ranking of the filtered candidates against the
//     embedded query text
//
// Only items that pass the hard predicate are ever ranked or returned;
// similarity is a re-ranking step, never a way to admit disqualified items.
// The final presentation order is price ascending, data descending, roaming
// coverage descending.
package search
