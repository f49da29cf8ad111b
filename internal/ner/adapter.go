// Package ner provides the default Tagger implementation: a lazily
// initialized, process-lifetime-cached ONNX Runtime token classifier,
// adapted from the teacher's ml.MLDetector / inference.ONNXRuntime stack.
// Where that stack scored a single PI-candidate string against a
// validator head, this adapter is shaped for full-sequence token
// classification and decodes BIO-style per-token labels back into
// byte-offset spans.
package ner

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/MacAttak/pi-sanitizer/pkg/detect/ner"
	"github.com/MacAttak/pi-sanitizer/pkg/ml/inference"
	"github.com/MacAttak/pi-sanitizer/pkg/ml/tokenization"
	"github.com/MacAttak/pi-sanitizer/pkg/sanitize"
)

// Config points the adapter at an on-disk ONNX token-classification model
// and its matching tokenizer, mirroring MLDetectorConfig's two path
// fields in pkg/ml/detector.go.
type Config struct {
	ModelPath      string
	TokenizerModel string
	MaxTokens      int
}

// Adapter lazily loads the ONNX runtime and tokenizer on first Tag call
// and caches them for the process lifetime (§5, §9 "explicit singleton
// with initialization guard"). Initialization is idempotent and
// serialized by once; the zero value is usable once Config is set via
// NewAdapter.
type Adapter struct {
	cfg  Config
	once sync.Once

	runtime   *inference.ONNXRuntime
	model     *inference.ONNXModel
	tokenizer *tokenization.Tokenizer
	initErr   error
}

// NewAdapter constructs an Adapter bound to cfg. No I/O happens until the
// first call to Tag.
func NewAdapter(cfg Config) *Adapter {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 512
	}
	return &Adapter{cfg: cfg}
}

var _ ner.Tagger = (*Adapter)(nil)

func (a *Adapter) init() error {
	a.once.Do(func() {
		rt := inference.NewONNXRuntime()
		if err := rt.Initialize(); err != nil {
			a.initErr = sanitize.Wrap(sanitize.ModelUnavailable, "onnx runtime init failed", err)
			return
		}

		model, err := rt.LoadModelWithConfig(inference.ModelConfig{
			ModelPath:   a.cfg.ModelPath,
			InputNames:  []string{"input_ids", "attention_mask"},
			OutputNames: []string{"logits"},
			MaxTokens:   a.cfg.MaxTokens,
			BatchSize:   1,
		})
		if err != nil {
			rt.Cleanup()
			a.initErr = sanitize.Wrap(sanitize.ModelUnavailable, "onnx model load failed", err)
			return
		}

		tok, err := tokenization.NewTokenizer(tokenization.TokenizerConfig{
			ModelName:        a.cfg.TokenizerModel,
			MaxLength:        a.cfg.MaxTokens,
			Padding:          false,
			Truncation:       true,
			AddSpecialTokens: true,
		})
		if err != nil {
			rt.Cleanup()
			a.initErr = sanitize.Wrap(sanitize.ModelUnavailable, "tokenizer construction failed", err)
			return
		}
		if err := tok.Initialize(); err != nil {
			rt.Cleanup()
			a.initErr = sanitize.Wrap(sanitize.ModelUnavailable, "tokenizer init failed", err)
			return
		}

		a.runtime = rt
		a.model = model
		a.tokenizer = tok
	})
	return a.initErr
}

// Tag implements ner.Tagger. It tokenizes text, calls the model's Predict
// once, and decodes the resulting per-token label predictions into
// byte-offset spans using the tokenizer's offset table. Predict returns a
// fixed single "O" label (see inference.ONNXModel.Predict), so the decoded
// result holds no tags. Any failure is returned as an
// error; the caller (pkg/detect/ner.Detector) converts that into an empty
// result rather than propagating it.
func (a *Adapter) Tag(text string) ([]ner.Tag, error) {
	if err := a.init(); err != nil {
		return nil, err
	}

	enc, err := a.tokenizer.Encode(text)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	input := inference.InferenceInput{
		InputIDs:      toInt64(enc.IDs),
		AttentionMask: toInt64(enc.AttentionMask),
	}

	out, err := a.model.Predict(context.Background(), input)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	return decodeTags(text, enc, out), nil
}

// decodeTags turns per-token label predictions and confidence scores
// back into byte-offset spans, merging a token into the previous span
// when both carry the same label and the token starts at or before that
// span's end (the inside-a-word case for sub-word tokenizers). Same-label
// tokens separated by a gap stay separate tags.
func decodeTags(text string, enc *tokenization.EncodingResult, out *inference.InferenceOutput) []ner.Tag {
	var tags []ner.Tag

	for i, label := range out.Predictions {
		if label == "" || label == "O" || i >= len(enc.Offsets) {
			continue
		}
		label = strings.TrimPrefix(strings.TrimPrefix(label, "B-"), "I-")

		off := enc.Offsets[i]
		start, end := int(off[0]), int(off[1])
		if end <= start || end > len(text) {
			continue
		}

		score := float32(0)
		if i < len(out.Confidence) {
			score = out.Confidence[i]
		}

		if n := len(tags); n > 0 && tags[n-1].Label == label && start-tags[n-1].End <= 0 {
			tags[n-1].End = end
			tags[n-1].Word = text[tags[n-1].Start:end]
			if score > tags[n-1].Score {
				tags[n-1].Score = score
			}
			continue
		}

		tags = append(tags, ner.Tag{
			Label: label,
			Word:  text[start:end],
			Start: start,
			End:   end,
			Score: score,
		})
	}

	return tags
}

func toInt64(in []uint32) []int64 {
	out := make([]int64, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}
	return out
}

// Close releases the tokenizer, model, and runtime, if they were ever
// initialized.
func (a *Adapter) Close() {
	if a.tokenizer != nil {
		a.tokenizer.Close()
	}
	if a.model != nil {
		a.model.Destroy()
	}
	if a.runtime != nil {
		a.runtime.Cleanup()
	}
}
