package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// CatalogItem represents a single service plan in the catalog.
// Items are written by the ingestion pipeline and read-only everywhere else.
type CatalogItem struct {
	Id               ID
	Name             string
	Provider         string
	Region           string
	Condition        string
	Channel          string
	LineType         string
	PromotionPrice   float64
	OriginalPrice    float64
	OverageRate      float64
	DataAmountGB     float64
	Roaming          []string // lowercased country names with free roaming
	BYODOrTerm       bool
	FreeLongDistance string
	ActivationFee    float64
	PromoStartDate   time.Time
	PromoEndDate     time.Time
	Code             string
	Tier             string
	Vector           []float32 // Embedding vector for semantic ranking (populated by the ingestion pipeline)
	InsertedAt       time.Time
	UpdatedAt        time.Time
}

// Key returns a string representation of the item as "(Provider,Name,Code)".
// This is used for generating deterministic IDs.
func (item *CatalogItem) Key() string {
	return "(" + item.Provider + "," + item.Name + "," + item.Code + ")"
}

// Candidate is a catalog item annotated with a similarity score for one
// particular search. Candidates are ephemeral and never persisted.
type Candidate struct {
	Item  *CatalogItem
	Score float32
}

// SearchOutcome is the result of one search call.
type SearchOutcome struct {
	// Plans holds the ranked candidates, best first.
	Plans []Candidate

	// FollowupNeeded is true when the requirement still has missing fields
	// the caller should ask the user about.
	FollowupNeeded bool

	// MissingFields lists the unset requirement fields in canonical order,
	// computed from the original (unrelaxed) requirement.
	MissingFields []string

	// RelaxedFields lists the requirement fields that were dropped to
	// produce a non-empty match. Empty when no relaxation was needed.
	RelaxedFields []string

	// Partial is true when fewer than the requested number of plans matched.
	Partial bool
}

// RequirementRecord is the persisted form of a session's accumulated
// requirements. One record per session, upserted after every successful merge.
type RequirementRecord struct {
	SessionID    string
	Requirements RequirementState
	UpdatedAt    time.Time
}
