package format

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// HTMLParser tokenizes the document into tag-boundary events and yields
// each non-empty text node as a segment (§4.5 "HTML"). Attribute values
// are never masked (explicit non-goal, §9 Open Question (b)).
//
// Unlike the original implementation's lossy html.escape reconstruction
// (original_source/maskingengine/core/parsers.py), reconstruction here
// replays the exact token stream x/net/html.Tokenizer produced and only
// ever substitutes TextToken segments — tags, attributes, comments, and
// doctype tokens are re-emitted verbatim in their original order, so
// structure can never be corrupted by a masking pass (§9 Open Question
// (a), resolved in favor of faithful reconstruction).
type HTMLParser struct{}

type htmlToken struct {
	tokenType html.TokenType
	raw       string // verbatim source text, used for every non-text token
	leading   string // whitespace stripped from a text node's start
	trailing  string // whitespace stripped from a text node's end
	isText    bool
}

type htmlDocument struct {
	tokens     []htmlToken
	textIdxs   []int // indices into tokens that are text-bearing segments
	segments   []string
}

func (p HTMLParser) Parse(input string) (Document, error) {
	z := html.NewTokenizer(strings.NewReader(input))
	doc := &htmlDocument{}

	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); err != nil && err.Error() != "EOF" {
				return nil, sanitize.Wrap(sanitize.InvalidFormat, "html tokenize failed", err)
			}
			break
		}

		raw := string(z.Raw())

		if tt == html.TextToken {
			leading, core, trailing := splitWhitespace(raw)
			idx := len(doc.tokens)
			doc.tokens = append(doc.tokens, htmlToken{
				tokenType: tt,
				leading:   leading,
				trailing:  trailing,
				isText:    true,
			})
			if core != "" {
				doc.textIdxs = append(doc.textIdxs, idx)
				doc.segments = append(doc.segments, core)
			}
			continue
		}

		doc.tokens = append(doc.tokens, htmlToken{tokenType: tt, raw: raw})
	}

	return doc, nil
}

func (d *htmlDocument) Segments() []string {
	return d.segments
}

func (d *htmlDocument) Reconstruct(replacements []string) (string, error) {
	if len(replacements) != len(d.textIdxs) {
		return "", errWrongSegmentCount(len(d.textIdxs), len(replacements))
	}

	replacementByIdx := make(map[int]string, len(replacements))
	for i, tokenIdx := range d.textIdxs {
		replacementByIdx[tokenIdx] = replacements[i]
	}

	var sb strings.Builder
	for i, tok := range d.tokens {
		if !tok.isText {
			sb.WriteString(tok.raw)
			continue
		}
		if text, ok := replacementByIdx[i]; ok {
			sb.WriteString(tok.leading)
			sb.WriteString(text)
			sb.WriteString(tok.trailing)
			continue
		}
		// An empty-after-trim text node: nothing was ever extracted, so
		// its leading/trailing whitespace constitutes the whole node.
		sb.WriteString(tok.leading)
		sb.WriteString(tok.trailing)
	}
	return sb.String(), nil
}

// splitWhitespace separates a text node's surrounding whitespace from its
// core so reconstruction can restore exactly what extraction stripped,
// per §4.5's "leading/trailing whitespace stripped during extraction is
// restored from the original."
func splitWhitespace(s string) (leading, core, trailing string) {
	trimmedLeft := strings.TrimLeft(s, " \t\r\n")
	leading = s[:len(s)-len(trimmedLeft)]

	trimmed := strings.TrimRight(trimmedLeft, " \t\r\n")
	trailing = trimmedLeft[len(trimmed):]

	return leading, trimmed, trailing
}
