package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Port         string `mapstructure:"port"`
	Provider     string `mapstructure:"provider"` // gemini | openai
	Model        string `mapstructure:"model"`
	BaseURL      string `mapstructure:"BASE_URL"`
	PromptFile   string `mapstructure:"prompt_file"`
	ChunkSize    int    `mapstructure:"chunk_size"`
	UploadDir    string `mapstructure:"upload_dir"`
	OutputDir    string `mapstructure:"output_dir"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	OpenAIAPIKey string `mapstructure:"OPENAI_API_KEY"`
}

func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("port", "8088")
	v.SetDefault("provider", "gemini")
	v.SetDefault("model", "gemini-3-flash-preview")
	v.SetDefault("prompt_file", "prompt_v4.md")
	v.SetDefault("chunk_size", 2)
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("output_dir", "output")

	v.AutomaticEnv()

	// Config file is optional; env vars and defaults cover a bare setup.
	if _, err := os.Stat(configPath); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.BindEnv("GEMINI_API_KEY")
	v.BindEnv("OPENAI_API_KEY")
	v.BindEnv("BASE_URL")

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &config, nil
}
