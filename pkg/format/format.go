// Package format implements the Format Parser (§4.5): three polymorphic
// variants — plain, json, html — each owning both directions of a
// parse/reconstruct pair and whatever metadata the reconstruction needs.
// No other component inspects that metadata (§9).
package format

import "github.com/MacAttak/pi-sanitizer/pkg/sanitize"

// Document is the parsed form of one input: an ordered list of
// masking-eligible text segments, plus enough retained structure to
// rebuild the original shape once those segments have been replaced with
// sanitized or rehydrated text.
type Document interface {
	// Segments returns the text segments eligible for detection, in a
	// stable order matching the order Reconstruct expects them back in.
	Segments() []string

	// Reconstruct rebuilds the document given replacement text for every
	// segment, in the same order Segments returned them. Supplying the
	// original, unchanged segments must reproduce the original document
	// exactly (§4.5 invariant).
	Reconstruct(replacements []string) (string, error)
}

// Parser parses one structural format into a Document.
type Parser interface {
	Parse(input string) (Document, error)
}

// New returns the Parser for the given format, or an InvalidConfig error
// if the format is not one of the closed set.
func New(f sanitize.Format) (Parser, error) {
	switch f {
	case sanitize.FormatText:
		return PlainParser{}, nil
	case sanitize.FormatJSON:
		return JSONParser{}, nil
	case sanitize.FormatHTML:
		return HTMLParser{}, nil
	default:
		return nil, sanitize.NewError(sanitize.InvalidConfig, "unknown format: "+string(f))
	}
}
