package placeholder

import (
	"sort"
	"strings"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Rehydrator replaces placeholders with their original text using a
// RehydrationMap plus the placeholder prefix/suffix its keys were built
// with; it needs no other part of the configuration that produced the
// map (§4.7).
type Rehydrator struct{}

// NewRehydrator constructs a Rehydrator.
func NewRehydrator() *Rehydrator { return &Rehydrator{} }

// Rehydrate replaces every occurrence of every key in rehydrationMap
// within masked with its mapped value. Keys are processed in
// descending-length order so no placeholder's replacement can be
// shadowed by a prefix collision with another (§4.7). Every key must
// conform to the <<...>> wire grammar (§6.2); otherwise Rehydrate fails
// with MalformedMap before making any substitution.
func (r *Rehydrator) Rehydrate(masked string, rehydrationMap sanitize.RehydrationMap, prefix, suffix string) (string, error) {
	grammar := Grammar(prefix, suffix)

	keys := make([]string, 0, len(rehydrationMap))
	for k := range rehydrationMap {
		if !grammar.MatchString(k) {
			return "", sanitize.NewError(sanitize.MalformedMap, "rehydration map key does not match placeholder grammar: "+k)
		}
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool { return len(keys[i]) > len(keys[j]) })

	out := masked
	for _, k := range keys {
		out = strings.ReplaceAll(out, k, rehydrationMap[k])
	}
	return out, nil
}
