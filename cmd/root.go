/*
Copyright © 2026 tieubaoca
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tieubaoca/pdf2md/config"
	"github.com/tieubaoca/pdf2md/service"
	"github.com/tieubaoca/pdf2md/types"
)

var (
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pdf2md",
	Short: "Convert PDF documents to Markdown with an LLM backend",
	Long: `pdf2md converts PDF documents into Markdown by sending page text (and the
original PDF for grounding) to an LLM service. Large documents are split
into page chunks, converted with carried context between chunks, and the
per-chunk outputs are stitched back into one document.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
	rootCmd.PersistentFlags().StringP("api-key", "k", "", "API key (default: GEMINI_API_KEY or OPENAI_API_KEY env var)")
	rootCmd.PersistentFlags().StringP("base-url", "u", "", "Custom base URL for the AI service")
	rootCmd.PersistentFlags().StringP("model", "m", "", "Model to use (default: gemini-3-flash-preview)")
	rootCmd.PersistentFlags().String("provider", "", "AI provider: gemini or openai")
	rootCmd.PersistentFlags().StringP("prompt", "p", "", "Prompt template file (default: prompt_v4.md)")
	rootCmd.PersistentFlags().BoolP("stream", "s", true, "Use streaming mode for single-shot conversions")
	rootCmd.PersistentFlags().IntP("chunk-size", "c", 0, "Pages per chunk for large PDFs (default: 2)")
	rootCmd.PersistentFlags().String("chunking", "auto", "Chunking mode: auto, force, or off")
}

func initViper() {
	viper.AutomaticEnv()
}

// resolvedOptions merges flags over config defaults into the per-run options
// value handed to the pipeline. Core logic never reads flags or env itself.
func resolvedOptions(cmd *cobra.Command) types.ConvertOptions {
	model := flagOr(cmd, "model", cfg.Model)
	promptFile := flagOr(cmd, "prompt", cfg.PromptFile)
	stream, _ := cmd.Flags().GetBool("stream")

	chunkSize, _ := cmd.Flags().GetInt("chunk-size")
	if chunkSize <= 0 {
		chunkSize = cfg.ChunkSize
	}

	chunking, _ := cmd.Flags().GetString("chunking")
	mode := types.ChunkingMode(chunking)
	switch mode {
	case types.ChunkingAuto, types.ChunkingForced, types.ChunkingDisabled:
	default:
		mode = types.ChunkingAuto
	}

	return types.ConvertOptions{
		PromptTemplate: service.LoadPrompt(promptFile),
		Model:          model,
		Stream:         stream,
		ChunkSize:      chunkSize,
		Chunking:       mode,
	}
}

// newAIService builds the configured backend from flags and config.
func newAIService(ctx context.Context, cmd *cobra.Command, opts types.ConvertOptions) (service.AIService, error) {
	provider := flagOr(cmd, "provider", cfg.Provider)
	baseURL := flagOr(cmd, "base-url", cfg.BaseURL)
	apiKey, _ := cmd.Flags().GetString("api-key")

	genCfg, err := types.NewGenerateConfig(opts.Model, opts.Stream, 0)
	if err != nil {
		return nil, err
	}

	switch provider {
	case "openai":
		if apiKey == "" {
			apiKey = cfg.OpenAIAPIKey
		}
		if apiKey == "" {
			return nil, errors.New("please provide an API key via -k or OPENAI_API_KEY")
		}
		return service.NewOpenAIService(baseURL, apiKey, genCfg), nil
	default:
		if apiKey == "" {
			apiKey = cfg.GeminiAPIKey
		}
		if apiKey == "" {
			return nil, errors.New("please provide an API key via -k or GEMINI_API_KEY in .env")
		}
		return service.NewGeminiService(ctx, apiKey, baseURL, genCfg)
	}
}

func flagOr(cmd *cobra.Command, name, fallback string) string {
	if v, _ := cmd.Flags().GetString(name); v != "" {
		return v
	}
	return fallback
}
