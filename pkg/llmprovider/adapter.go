package llmprovider

import (
	"context"

	"smart-task-manager/pkg/gemini"
	"smart-task-manager/pkg/qwen"
)

const (
	providerGemini = "gemini"
	providerQwen   = "qwen"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: providerGemini, Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: providerGemini,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return providerGemini
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// Conversion helpers for Gemini
func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	parts := make([]gemini.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = gemini.Part{Text: p.Text}
	}
	return &gemini.Content{Role: msg.Role, Parts: parts}
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	parts := make([]Part, len(content.Parts))
	for i, p := range content.Parts {
		parts[i] = Part{Text: p.Text}
	}
	return Message{Role: content.Role, Parts: parts}
}

// QwenAdapter adapts pkg/qwen to llmprovider.Provider interface
type QwenAdapter struct {
	client qwen.IQwen
}

// NewQwenAdapter creates a new Qwen adapter
func NewQwenAdapter(client qwen.IQwen) *QwenAdapter {
	return &QwenAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *QwenAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	qwenReq := &qwen.Request{
		SystemInstruction: convertToQwenContent(req.SystemInstruction),
		Messages:          make([]qwen.Content, len(req.Messages)),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
		JSONOutput:        req.JSONOutput,
	}
	for i := range req.Messages {
		qwenReq.Messages[i] = *convertToQwenContent(&req.Messages[i])
	}

	resp, err := a.client.GenerateContent(ctx, qwenReq)
	if err != nil {
		return nil, &ProviderError{Provider: providerQwen, Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	parts := make([]Part, len(resp.Content.Parts))
	for i, p := range resp.Content.Parts {
		parts[i] = Part{Text: p.Text}
	}

	return &Response{
		Content:      Message{Role: resp.Content.Role, Parts: parts},
		ProviderName: providerQwen,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *QwenAdapter) Name() string {
	return providerQwen
}

// Model returns model name
func (a *QwenAdapter) Model() string {
	return a.client.Model()
}

func convertToQwenContent(msg *Message) *qwen.Content {
	if msg == nil {
		return nil
	}
	parts := make([]qwen.Part, len(msg.Parts))
	for i, p := range msg.Parts {
		parts[i] = qwen.Part{Text: p.Text}
	}
	return &qwen.Content{Role: msg.Role, Parts: parts}
}
