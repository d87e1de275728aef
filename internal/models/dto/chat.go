package dto

// Message is a single entry in a chat conversation.
type Message struct {
	Content string `json:"content"`
	Role    string `json:"role"`
}

// ChatRequest is the client payload forwarded to the completion model.
type ChatRequest struct {
	MaxTokens   int       `json:"max_tokens,omitempty"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
}
