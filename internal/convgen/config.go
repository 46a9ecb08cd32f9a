package convgen

// Config controls the LLM parameters used by the LLMGenerator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int `mapstructure:"max_tokens" validate:"gt=0"`

	// Temperature controls LLM output randomness, in (0, 1]. Providers
	// ignore zero.
	Temperature float64 `mapstructure:"temperature" validate:"gt=0,lte=1"`
}

// DefaultConfig returns the generation parameters the app ships with.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   3000,
		Temperature: 0.7,
	}
}
