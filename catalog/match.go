// Package catalog holds the static eBay lookup tables: category-by-sport,
// phrase-triggered item-specific values, manufacturer countries, and the
// matching engine shared by all of them. Tables are initialized once and
// never mutated, so lookups are safe from any number of goroutines.
package catalog

import "strings"

// Entry pairs a canonical field value with its lowercase trigger phrases.
type Entry struct {
	Value    string
	Triggers []string
}

// PhraseTable is an ordered list of entries. Declaration order is
// significant: when two triggers of equal length both match, the earlier
// entry wins.
type PhraseTable []Entry

// Match scans text for every trigger in the table and returns the value of
// the longest matching trigger. Ties on length resolve to the
// earliest-declared entry. The second return is false when nothing matched.
func (t PhraseTable) Match(text string) (string, bool) {
	value, _, ok := t.MatchTrigger(text)
	return value, ok
}

// MatchTrigger is Match plus the trigger that won, for callers that need to
// know how specific the match was.
func (t PhraseTable) MatchTrigger(text string) (value, trigger string, ok bool) {
	text = strings.ToLower(text)
	bestLen := 0
	for _, e := range t {
		for _, trig := range e.Triggers {
			if len(trig) > bestLen && strings.Contains(text, trig) {
				value, trigger, ok = e.Value, trig, true
				bestLen = len(trig)
			}
		}
	}
	return value, trigger, ok
}

// Contains reports whether any trigger in the table matches text. Used by
// the boolean-derived item specifics.
func (t PhraseTable) Contains(text string) bool {
	_, ok := t.Match(text)
	return ok
}
