package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ChatService calls an OpenAI-compatible chat completion endpoint.
type ChatService struct {
	baseURL string
	token   string
	model   string
	client  *http.Client
}

var chatService *ChatService

func GetChatService() *ChatService {
	if chatService == nil {
		baseURL := os.Getenv("CHAT_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.openai.com/v1"
		}
		model := os.Getenv("CHAT_MODEL")
		if model == "" {
			model = "gpt-4o-mini"
		}
		chatService = &ChatService{
			baseURL: baseURL,
			token:   os.Getenv("CHAT_API_KEY"),
			model:   model,
			client:  &http.Client{Timeout: 30 * time.Second},
		}
	}
	return chatService
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the conversation and returns the assistant reply.
func (s *ChatService) Complete(messages []ChatMessage) (string, error) {
	if s.token == "" {
		return "", errors.New("CHAT_API_KEY is not set")
	}

	body, err := json.Marshal(ChatRequest{Model: s.model, Messages: messages})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat service returned status %d", resp.StatusCode)
	}

	var parsed ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if len(parsed.Choices) == 0 {
		return "", errors.New("chat service returned no choices")
	}
	return parsed.Choices[0].Message.Content, nil
}
