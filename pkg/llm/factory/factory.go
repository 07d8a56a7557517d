package factory

import (
	"ai-compliance-be/pkg/llm"
	"ai-compliance-be/pkg/llm/ollama"
	"ai-compliance-be/pkg/llm/openai"
	"fmt"
)

// NewLLMProvider builds the configured provider. Returns nil (no error)
// when providerType is empty or "none": the pipeline then runs in its
// deterministic mock/fallback mode.
func NewLLMProvider(providerType, modelName, baseURL, apiKey string) (llm.LLMProvider, error) {
	switch providerType {
	case "", "none":
		return nil, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName), nil
	case "openai":
		if apiKey == "" {
			return nil, nil // No credential: degrade to mock mode
		}
		return openai.NewOpenAIProvider(apiKey, modelName, baseURL), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
