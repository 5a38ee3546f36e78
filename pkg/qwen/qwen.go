package qwen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// newQwenImpl creates a new Qwen implementation
func newQwenImpl(cfg Config) *qwenImpl {
	return &qwenImpl{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: cfg.HTTPClient,
	}
}

// GenerateContent sends a chat completion request to the Qwen API
func (q *qwenImpl) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(q.transformRequest(req))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		q.baseURL+"/chat/completions", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("qwen: failed to create request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("qwen: API call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("qwen: API error %d: %s", resp.StatusCode, string(bodyBytes))
	}

	var openAIResp openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&openAIResp); err != nil {
		return nil, fmt.Errorf("qwen: failed to decode response: %w", err)
	}

	return q.transformResponse(&openAIResp), nil
}

// Model returns the model being used
func (q *qwenImpl) Model() string {
	return q.model
}

// transformRequest converts request to OpenAI-compatible format
func (q *qwenImpl) transformRequest(req *Request) *openAIRequest {
	openAIReq := &openAIRequest{
		Model:       q.model,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		Messages:    make([]openAIMessage, 0, len(req.Messages)+1),
	}
	if req.JSONOutput {
		openAIReq.ResponseFormat = &openAIResponseFormat{Type: responseFormatJSON}
	}

	if req.SystemInstruction != nil {
		systemMsg := transformMessage(req.SystemInstruction)
		systemMsg.Role = roleSystem
		openAIReq.Messages = append(openAIReq.Messages, systemMsg)
	}

	for i := range req.Messages {
		openAIReq.Messages = append(openAIReq.Messages, transformMessage(&req.Messages[i]))
	}

	return openAIReq
}

// transformMessage joins text parts with newlines.
func transformMessage(msg *Content) openAIMessage {
	texts := make([]string, 0, len(msg.Parts))
	for _, part := range msg.Parts {
		if part.Text != "" {
			texts = append(texts, part.Text)
		}
	}
	return openAIMessage{Role: msg.Role, Content: strings.Join(texts, "\n")}
}

func (q *qwenImpl) transformResponse(resp *openAIResponse) *Response {
	usage := &Usage{
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		TotalTokens:  resp.Usage.TotalTokens,
	}
	if len(resp.Choices) == 0 {
		return &Response{Content: Content{Role: roleAssistant}, Usage: usage}
	}

	msg := resp.Choices[0].Message
	content := Content{Role: msg.Role}
	if msg.Content != "" {
		content.Parts = []Part{{Text: msg.Content}}
	}

	return &Response{Content: content, Usage: usage}
}
