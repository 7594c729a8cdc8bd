package badger

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/poiesic/planmatch/core"
)

// Key prefixes for different data types
const (
	catalogItemPrefix     = "planrec"
	catalogProviderPrefix = "planprov"
	requirementPrefix     = "sesreq"
)

// makeCatalogItemKey generates a key for a catalog item by ID.
func makeCatalogItemKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", catalogItemPrefix, id))
}

// makeProviderKey generates a composite key for the provider index.
// Format: prefix:provider:id
func makeProviderKey(provider string, id core.ID) []byte {
	prefix := catalogProviderPrefix + ":" + strings.ToLower(provider) + ":"
	prefixBytes := []byte(prefix)
	buf := make([]byte, len(prefixBytes)+8)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// providerFromIndexKey extracts the provider name back out of a provider
// index key. Returns "" for keys that do not fit the index format.
func providerFromIndexKey(key []byte) string {
	s := string(key)
	prefix := catalogProviderPrefix + ":"
	if !strings.HasPrefix(s, prefix) || len(s) < len(prefix)+9 {
		return ""
	}
	// Strip prefix and the trailing ":" + 8 ID bytes.
	return s[len(prefix) : len(s)-9]
}

// makeRequirementKey generates a key for a session's requirement record.
func makeRequirementKey(sessionID string) []byte {
	return []byte(fmt.Sprintf("%s:%s", requirementPrefix, sessionID))
}
