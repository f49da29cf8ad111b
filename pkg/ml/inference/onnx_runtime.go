// Package inference wraps the ONNX Runtime session internal/ner.Adapter
// drives for token classification. Only the load/predict/destroy surface
// that adapter actually calls is kept; the teacher's single-candidate
// validation helpers (raw tensor construction, GPU/version introspection,
// a hand-rolled Tensor interface) had no caller once the detector moved
// to full-sequence tagging.
package inference

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// ONNXRuntime wraps the ONNX Runtime for ML inference.
type ONNXRuntime struct {
	initialized bool
	mu          sync.RWMutex
}

// ModelConfig holds configuration for ONNX model loading.
type ModelConfig struct {
	ModelPath   string   `json:"model_path"`
	InputNames  []string `json:"input_names"`
	OutputNames []string `json:"output_names"`
	MaxTokens   int      `json:"max_tokens"`
	BatchSize   int      `json:"batch_size"`
	UseGPU      bool     `json:"use_gpu"`
	NumThreads  int      `json:"num_threads"`
}

// InferenceInput represents input data for model inference.
type InferenceInput struct {
	InputIDs      []int64 `json:"input_ids"`
	AttentionMask []int64 `json:"attention_mask"`
	TokenTypeIDs  []int64 `json:"token_type_ids,omitempty"`
}

// InferenceOutput represents output data from model inference: one
// label and confidence score per input token.
type InferenceOutput struct {
	Logits      [][]float32 `json:"logits"`
	Predictions []string    `json:"predictions"`
	Confidence  []float32   `json:"confidence"`
}

// ONNXModel wraps an ONNX model session.
type ONNXModel struct {
	session       *ort.Session[float32]
	config        ModelConfig
	inputTensors  []*ort.Tensor[int64]
	outputTensors []*ort.Tensor[float32]
}

// NewONNXRuntime creates a new ONNX runtime instance.
func NewONNXRuntime() *ONNXRuntime {
	return &ONNXRuntime{
		initialized: false,
	}
}

// Initialize sets up the ONNX runtime environment.
func (r *ONNXRuntime) Initialize() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		return fmt.Errorf("ONNX runtime already initialized")
	}

	if err := InitializeONNXRuntime(); err != nil {
		return fmt.Errorf("failed to set up ONNX runtime library: %w", err)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		return fmt.Errorf("failed to initialize ONNX runtime environment: %w", err)
	}

	r.initialized = true
	return nil
}

// Cleanup destroys the ONNX runtime environment.
func (r *ONNXRuntime) Cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.initialized {
		ort.DestroyEnvironment()
		r.initialized = false
	}
}

// LoadModelWithConfig validates config and allocates the model's input
// and output tensors. It does not open config.ModelPath or create an
// inference session; the returned model's session is empty.
func (r *ONNXRuntime) LoadModelWithConfig(config ModelConfig) (*ONNXModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.initialized {
		return nil, fmt.Errorf("ONNX runtime not initialized")
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model config: %w", err)
	}

	inputTensors := make([]*ort.Tensor[int64], len(config.InputNames))
	for i := range inputTensors {
		shape := ort.NewShape(int64(config.BatchSize), int64(config.MaxTokens))
		tensor, err := ort.NewEmptyTensor[int64](shape)
		if err != nil {
			for j := 0; j < i; j++ {
				inputTensors[j].Destroy()
			}
			return nil, fmt.Errorf("failed to create input tensor %d: %w", i, err)
		}
		inputTensors[i] = tensor
	}

	outputTensors := make([]*ort.Tensor[float32], len(config.OutputNames))
	for i := range outputTensors {
		shape := ort.NewShape(int64(config.BatchSize), 2)
		tensor, err := ort.NewEmptyTensor[float32](shape)
		if err != nil {
			for j := 0; j < i; j++ {
				outputTensors[j].Destroy()
			}
			for _, t := range inputTensors {
				t.Destroy()
			}
			return nil, fmt.Errorf("failed to create output tensor %d: %w", i, err)
		}
		outputTensors[i] = tensor
	}

	model := &ONNXModel{
		session:       &ort.Session[float32]{},
		config:        config,
		inputTensors:  inputTensors,
		outputTensors: outputTensors,
	}

	return model, nil
}

// Validate validates the model configuration.
func (c *ModelConfig) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("model path cannot be empty")
	}

	if len(c.InputNames) == 0 {
		return fmt.Errorf("input names cannot be empty")
	}

	if len(c.OutputNames) == 0 {
		return fmt.Errorf("output names cannot be empty")
	}

	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}

	if c.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	return nil
}

// Predict checks the input length against MaxTokens and returns a fixed
// single-token output (label "O", confidence 0.9). It does not run the
// ONNX session, so it never yields per-token entity labels for the input.
func (m *ONNXModel) Predict(ctx context.Context, input InferenceInput) (*InferenceOutput, error) {
	if len(input.InputIDs) > m.config.MaxTokens {
		return nil, fmt.Errorf("input exceeds max tokens (%d > %d)", len(input.InputIDs), m.config.MaxTokens)
	}

	output := &InferenceOutput{
		Logits:      [][]float32{{0.1, 0.9}},
		Predictions: []string{"O"},
		Confidence:  []float32{0.9},
	}

	return output, nil
}

// Destroy cleans up the model resources.
func (m *ONNXModel) Destroy() {
	if m.session != nil {
		m.session = nil
	}

	for _, tensor := range m.inputTensors {
		if tensor != nil {
			tensor.Destroy()
		}
	}

	for _, tensor := range m.outputTensors {
		if tensor != nil {
			tensor.Destroy()
		}
	}

	m.inputTensors = nil
	m.outputTensors = nil
}
