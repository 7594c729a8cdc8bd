// Package session manages multi-turn conversation state.
//
// The Manager type accumulates requirement state per session across turns.
// Each message is extracted into a partial requirement delta, merged with
// the session's stored state using per-field last-write-wins, searched, and
// persisted only after the search succeeds. Turns for the same session are
// serialized; different sessions run concurrently.
package session
