// Package tokenization wraps a HuggingFace tokenizer for the token
// classification path internal/ner.Adapter drives. Only the
// encode-for-inference surface is kept; the teacher's PI-candidate
// formatting helpers (context windows, "[TYPE] candidate [SEP] context"
// templates, vocab introspection) belonged to a different detector
// shape and have no caller here.
package tokenization

import (
	"fmt"
	"sync"

	"github.com/daulet/tokenizers"
)

// Tokenizer wraps the HuggingFace tokenizer for text preprocessing.
type Tokenizer struct {
	tokenizer *tokenizers.Tokenizer
	config    TokenizerConfig
	mu        sync.RWMutex
}

// TokenizerConfig holds configuration for the tokenizer.
type TokenizerConfig struct {
	ModelName        string `json:"model_name"`         // HuggingFace model name or path
	MaxLength        int    `json:"max_length"`         // Maximum sequence length
	Padding          bool   `json:"padding"`             // Whether to pad sequences
	Truncation       bool   `json:"truncation"`          // Whether to truncate sequences
	AddSpecialTokens bool   `json:"add_special_tokens"` // Whether to add special tokens
}

// EncodingResult represents the tokenization output.
type EncodingResult struct {
	IDs               []uint32            `json:"ids"`                 // Token IDs
	TypeIDs           []uint32            `json:"type_ids"`            // Token type IDs
	Tokens            []string            `json:"tokens"`              // Decoded tokens
	AttentionMask     []uint32            `json:"attention_mask"`      // Attention mask
	SpecialTokensMask []uint32            `json:"special_tokens_mask"` // Special tokens mask
	Offsets           []tokenizers.Offset `json:"offsets"`             // Token offsets in original text
	Length            int                 `json:"length"`              // Actual sequence length
}

// DefaultTokenizerConfig returns default configuration for DeBERTa models.
func DefaultTokenizerConfig() TokenizerConfig {
	return TokenizerConfig{
		ModelName:        "microsoft/deberta-v3-base",
		MaxLength:        512,
		Padding:          true,
		Truncation:       true,
		AddSpecialTokens: true,
	}
}

// NewTokenizer creates a new tokenizer instance.
func NewTokenizer(config TokenizerConfig) (*Tokenizer, error) {
	if config.ModelName == "" {
		return nil, fmt.Errorf("model name cannot be empty")
	}

	if config.MaxLength <= 0 {
		config.MaxLength = 512
	}

	return &Tokenizer{
		config: config,
	}, nil
}

// Initialize loads the tokenizer model.
func (t *Tokenizer) Initialize() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tokenizer != nil {
		return fmt.Errorf("tokenizer already initialized")
	}

	// Try to load from HuggingFace model hub
	tk, err := tokenizers.FromPretrained(t.config.ModelName)
	if err != nil {
		// If that fails, try loading from a local file path
		tk, err = tokenizers.FromFile(t.config.ModelName)
		if err != nil {
			return fmt.Errorf("failed to load tokenizer: %w", err)
		}
	}

	t.tokenizer = tk
	return nil
}

// Close releases the tokenizer resources.
func (t *Tokenizer) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.tokenizer != nil {
		err := t.tokenizer.Close()
		t.tokenizer = nil
		return err
	}
	return nil
}

// Encode tokenizes a single text string, returning per-token offsets
// so callers can map label predictions back to byte spans.
func (t *Tokenizer) Encode(text string) (*EncodingResult, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.tokenizer == nil {
		return nil, fmt.Errorf("tokenizer not initialized")
	}

	options := []tokenizers.EncodeOption{
		tokenizers.WithReturnAllAttributes(),
	}

	encoding := t.tokenizer.EncodeWithOptions(text, t.config.AddSpecialTokens, options...)

	ids := encoding.IDs
	typeIDs := encoding.TypeIDs
	tokens := encoding.Tokens
	attentionMask := encoding.AttentionMask
	specialTokensMask := encoding.SpecialTokensMask
	offsets := encoding.Offsets

	if t.config.Truncation && len(ids) > t.config.MaxLength {
		ids = ids[:t.config.MaxLength]
		typeIDs = typeIDs[:t.config.MaxLength]
		tokens = tokens[:t.config.MaxLength]
		attentionMask = attentionMask[:t.config.MaxLength]
		specialTokensMask = specialTokensMask[:t.config.MaxLength]
		offsets = offsets[:t.config.MaxLength]
	}

	if t.config.Padding && len(ids) < t.config.MaxLength {
		padLength := t.config.MaxLength - len(ids)

		for i := 0; i < padLength; i++ {
			ids = append(ids, 0)
			typeIDs = append(typeIDs, 0)
			tokens = append(tokens, "[PAD]")
			attentionMask = append(attentionMask, 0)
			specialTokensMask = append(specialTokensMask, 1)
			offsets = append(offsets, tokenizers.Offset{0, 0})
		}
	}

	return &EncodingResult{
		IDs:               ids,
		TypeIDs:           typeIDs,
		Tokens:            tokens,
		AttentionMask:     attentionMask,
		SpecialTokensMask: specialTokensMask,
		Offsets:           offsets,
		Length:            len(encoding.IDs),
	}, nil
}
