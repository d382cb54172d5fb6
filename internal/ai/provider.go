package ai

import (
	"fmt"
	"strings"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Provider interface {
	// Name identifies the provider/model combination in logs and traces.
	Name() string
	Generate(messages []Message) (string, error)
}

// NewProvider builds a provider from an engine spec string:
//
//	pollinations
//	pollinations:openai-large
//	g4f:gpt-oss-120b
//	g4f:groq/qwen/qwen3-32b
//	g4f:ollama/gpt-oss:20b
func NewProvider(engine string) (Provider, error) {
	engine = strings.TrimSpace(engine)
	switch {
	case engine == "" || engine == "g4f" || strings.HasPrefix(engine, "g4f:"):
		return NewG4FProvider(engine), nil
	case engine == "pollinations" || strings.HasPrefix(engine, "pollinations:"):
		return NewPollinationsProvider(engine), nil
	default:
		return nil, fmt.Errorf("unsupported AI_PROVIDER: %s", engine)
	}
}
