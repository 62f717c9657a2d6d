/*
Copyright © 2026 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf2md/service"
	"github.com/tieubaoca/pdf2md/types"
	"github.com/tieubaoca/pdf2md/utils"
)

// convertCmd represents the convert command
var convertCmd = &cobra.Command{
	Use:   "convert <input.pdf>",
	Short: "Convert a single PDF file to Markdown",
	Long: `Convert transforms one PDF file into a Markdown document. Documents above
10 pages are chunked automatically (override with --chunking); the output is
written next to the input as <name>.md unless -o is given.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputPath := args[0]
		if _, err := os.Stat(inputPath); err != nil {
			log.Fatalf("Error: PDF file not found: %s", inputPath)
		}

		ctx := context.Background()
		opts := resolvedOptions(cmd)

		aiService, err := newAIService(ctx, cmd, opts)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		outputPath, _ := cmd.Flags().GetString("output")
		if outputPath == "" {
			outputPath = utils.OutputPath(inputPath, "")
		}

		fmt.Printf("Processing: %s\n", inputPath)
		fmt.Printf("Using model: %s\n", opts.Model)

		converter := service.NewConvertService(aiService, service.NewPDFService())
		markdown, err := converter.ConvertFile(ctx, inputPath, opts, printProgress)
		if err != nil {
			log.Fatalf("Error processing %s: %v", inputPath, err)
		}

		if err := utils.SaveMarkdown(markdown, outputPath); err != nil {
			log.Fatalf("Error: %v", err)
		}
		fmt.Printf("Markdown saved to: %s\n", outputPath)
	},
}

// printProgress writes incremental pipeline progress to the terminal.
func printProgress(p types.ConversionProgress) {
	switch p.Status {
	case "streaming":
		fmt.Print(".")
	case "completed":
		fmt.Println()
		if p.Message != "" {
			fmt.Println(p.Message)
		}
	default:
		fmt.Println(p.Message)
	}
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().StringP("output", "o", "", "Output file path (default: <input>.md)")
}
