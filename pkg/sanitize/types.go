// Package sanitize holds the data model shared by every stage of the
// sanitization pipeline: candidates, entity kinds, patterns, configuration,
// rehydration maps, and the final result.
package sanitize

// EntityKind is a semantic tag for a detected span. The built-in set is
// closed; pattern packs may introduce additional kinds by name.
type EntityKind string

const (
	KindEmail        EntityKind = "EMAIL"
	KindPhone        EntityKind = "PHONE"
	KindSSN          EntityKind = "SSN"
	KindCreditCard   EntityKind = "CREDIT_CARD"
	KindIPv4         EntityKind = "IPV4"
	KindIPv6         EntityKind = "IPV6"
	KindPerson       EntityKind = "PERSON"
	KindOrganization EntityKind = "ORGANIZATION"
	KindLocation     EntityKind = "LOCATION"
)

// nerAliases normalizes raw token-classification labels onto the closed
// EntityKind set at ingress, per §3 ("Aliases are normalized at ingress").
var nerAliases = map[string]EntityKind{
	"PER":          KindPerson,
	"PERSON":       KindPerson,
	"ORG":          KindOrganization,
	"ORGANIZATION": KindOrganization,
	"GPE":          KindLocation,
	"LOC":          KindLocation,
	"LOCATION":     KindLocation,
}

// NormalizeNERLabel maps a raw model label onto the closed EntityKind set.
// Unknown labels are returned unchanged so a caller can decide whether to
// keep or discard them.
func NormalizeNERLabel(label string) EntityKind {
	if kind, ok := nerAliases[label]; ok {
		return kind
	}
	return EntityKind(label)
}

// Source identifies which detector family produced a Candidate.
type Source string

const (
	SourceRegex Source = "regex"
	SourceNER   Source = "ner"
)

// Candidate is a single detected span before conflict resolution.
type Candidate struct {
	Kind       EntityKind
	Text       string
	Start      int
	End        int
	Confidence float32
	Source     Source
}

// Priority implements the tiered ordering from §4.4: structured kinds beat
// semi-structured kinds beat NER-sourced kinds beat anything unrecognized.
func (c Candidate) Priority() int {
	switch c.Kind {
	case KindEmail, KindSSN, KindCreditCard:
		return 10
	case KindPhone, KindIPv4, KindIPv6:
		return 8
	case KindPerson, KindOrganization, KindLocation:
		return 5
	default:
		if c.Source == SourceNER {
			return 5
		}
		return 1
	}
}

// RehydrationMap associates each placeholder token with the original text
// it replaced. Keys are unique by construction; values need not be.
type RehydrationMap map[string]string

// Merge folds other into m, giving other's entries precedence on key
// collision. Used when composing results across segments or documents.
func (m RehydrationMap) Merge(other RehydrationMap) {
	for k, v := range other {
		m[k] = v
	}
}

// Result is the outcome of a single sanitize call.
type Result struct {
	Sanitized string
	Map       RehydrationMap
}

// Format selects which structural parser governs a sanitize/rehydrate call.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatHTML Format = "html"
)

// Config is the immutable, enumerated configuration record described in
// §3. Build one with DefaultConfig and share it by reference
// across calls — it is never mutated after construction.
type Config struct {
	EnableRegex         bool
	EnableNER           bool
	ConfidenceThreshold float32
	Whitelist           []string
	PlaceholderPrefix   string
	PlaceholderSuffix   string
	MaxInputCharacters  int
	PatternPacks        []string
}

// DefaultConfig returns the configuration described in §3's defaults:
// confidence_threshold 0.85, <</>> affixes, 50,000 character ceiling.
func DefaultConfig() Config {
	return Config{
		EnableRegex:         true,
		EnableNER:           false,
		ConfidenceThreshold: 0.85,
		Whitelist:           nil,
		PlaceholderPrefix:   "<<",
		PlaceholderSuffix:   ">>",
		MaxInputCharacters:  50000,
		PatternPacks:        nil,
	}
}

// Validate enforces the InvalidConfig trigger conditions that apply to a
// Config: an out-of-range confidence threshold, a non-positive
// max_input_characters, or an empty placeholder prefix/suffix. Format
// names are checked separately, by ValidateFormat.
func (c Config) Validate() error {
	if c.ConfidenceThreshold < 0 || c.ConfidenceThreshold > 1 {
		return NewError(InvalidConfig, "confidence_threshold must be in [0,1]")
	}
	if c.MaxInputCharacters <= 0 {
		return NewError(InvalidConfig, "max_input_characters must be positive")
	}
	if c.PlaceholderPrefix == "" || c.PlaceholderSuffix == "" {
		return NewError(InvalidConfig, "placeholder prefix/suffix must be non-empty")
	}
	return nil
}

// ValidateFormat rejects any format string outside the closed set.
func ValidateFormat(f Format) error {
	switch f {
	case FormatText, FormatJSON, FormatHTML:
		return nil
	default:
		return NewError(InvalidConfig, "unknown format: "+string(f))
	}
}
