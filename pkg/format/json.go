package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// JSONParser decodes a JSON document, walks it depth-first, and treats
// every string leaf as an independent, masking-eligible segment (§4.5
// "JSON"). Non-string leaves are never touched.
type JSONParser struct{}

// pathStep is one component of a walk path: either a map key or an array
// index, used to re-locate a leaf during reconstruction without needing
// to expose that path to any other component (§9).
type pathStep struct {
	key     string
	index   int
	isIndex bool
}

type jsonDocument struct {
	root  interface{}
	paths []([]pathStep)
	texts []string
}

func (p JSONParser) Parse(input string) (Document, error) {
	var root interface{}
	if err := json.Unmarshal([]byte(input), &root); err != nil {
		return nil, sanitize.Wrap(sanitize.InvalidFormat, "json decode failed", err)
	}

	doc := &jsonDocument{}
	doc.root = root
	walkJSON(root, nil, func(path []pathStep, s string) {
		pathCopy := make([]pathStep, len(path))
		copy(pathCopy, path)
		doc.paths = append(doc.paths, pathCopy)
		doc.texts = append(doc.texts, s)
	})
	return doc, nil
}

// walkJSON visits every string leaf of v depth-first in a stable order
// (object keys are visited in the order encoding/json's map iteration
// would normally randomize, so we sort them for determinism).
func walkJSON(v interface{}, path []pathStep, emit func(path []pathStep, s string)) {
	switch val := v.(type) {
	case string:
		emit(path, val)
	case []interface{}:
		for i, item := range val {
			walkJSON(item, append(path, pathStep{index: i, isIndex: true}), emit)
		}
	case map[string]interface{}:
		for _, key := range sortedKeys(val) {
			walkJSON(val[key], append(path, pathStep{key: key}), emit)
		}
	default:
		// numbers, booleans, null: not masking-eligible.
	}
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func (d *jsonDocument) Segments() []string {
	return d.texts
}

func (d *jsonDocument) Reconstruct(replacements []string) (string, error) {
	if len(replacements) != len(d.paths) {
		return "", errWrongSegmentCount(len(d.paths), len(replacements))
	}

	for i, path := range d.paths {
		if err := setAtPath(&d.root, path, replacements[i]); err != nil {
			return "", sanitize.Wrap(sanitize.InvalidFormat, "failed to set value at json path", err)
		}
	}

	// HTML escaping is off so placeholder affixes such as "<<" and ">>"
	// stay literal instead of being written as \u escape sequences, which
	// the rehydrator could not find.
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(d.root); err != nil {
		return "", sanitize.Wrap(sanitize.InvalidFormat, "json re-encode failed", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// setAtPath mutates the value at path within *root to newValue. Because
// Go's encoding/json decodes objects into map[string]interface{} and
// arrays into []interface{} by value, the walk must operate on addressable
// containers: for each step we descend one level and replace the child
// in its parent container directly.
func setAtPath(root *interface{}, path []pathStep, newValue string) error {
	if len(path) == 0 {
		*root = newValue
		return nil
	}

	cur := root
	for i, step := range path {
		last := i == len(path)-1

		switch step.isIndex {
		case true:
			arr, ok := (*cur).([]interface{})
			if !ok || step.index < 0 || step.index >= len(arr) {
				return fmt.Errorf("path index %d out of range", step.index)
			}
			if last {
				arr[step.index] = newValue
				return nil
			}
			cur = &arr[step.index]
		case false:
			obj, ok := (*cur).(map[string]interface{})
			if !ok {
				return fmt.Errorf("path key %q not found in object", step.key)
			}
			if last {
				obj[step.key] = newValue
				return nil
			}
			// child is itself a map or slice (the only non-leaf shapes a
			// path can descend into) and both are Go reference types, so
			// mutating through cur below writes back into obj directly.
			child := obj[step.key]
			cur = &child
		}
	}
	return nil
}
