// file: internals/features/chat/service/llm_client.go
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"quizku_backend/internals/configs"
)

/* =========================================================
   Client LLM — endpoint chat/completions gaya OpenAI.
   Provider interface supaya service bisa dites tanpa network.
========================================================= */

// CompletionResult — hasil yang relevan dari provider: ID completion
// (jadi PK chat_sessions), timestamp provider, dan balasan assistant.
type CompletionResult struct {
	ID        string
	CreatedAt time.Time
	Content   string
}

type CompletionProvider interface {
	Complete(ctx context.Context, userMessage string) (*CompletionResult, error)
}

type llmClient struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
}

func NewLLMClient() CompletionProvider {
	return &llmClient{
		baseURL: strings.TrimRight(configs.LLMBaseURL, "/"),
		apiKey:  configs.LLMAPIKey,
		model:   configs.LLMModel,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type chatCompletionRequest struct {
	Model    string               `json:"model"`
	Messages []chatMessagePayload `json:"messages"`
}

type chatMessagePayload struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	Choices []struct {
		Message chatMessagePayload `json:"message"`
	} `json:"choices"`
}

func (cl *llmClient) Complete(ctx context.Context, userMessage string) (*CompletionResult, error) {
	payload := chatCompletionRequest{
		Model: cl.model,
		Messages: []chatMessagePayload{
			{Role: "user", Content: userMessage},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cl.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cl.apiKey)

	resp, err := cl.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request ke provider gagal: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("provider balas status %d: %s", resp.StatusCode, string(snippet))
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("response provider tidak bisa di-decode: %w", err)
	}
	if out.ID == "" || len(out.Choices) == 0 {
		return nil, fmt.Errorf("response provider tidak lengkap")
	}

	return &CompletionResult{
		ID:        out.ID,
		CreatedAt: time.Unix(out.Created, 0).UTC(),
		Content:   out.Choices[0].Message.Content,
	}, nil
}
