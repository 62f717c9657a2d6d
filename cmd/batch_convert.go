/*
Copyright © 2026 tieubaoca
*/
package cmd

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf2md/service"
	"github.com/tieubaoca/pdf2md/utils"
)

// batchConvertCmd represents the batch-convert command
var batchConvertCmd = &cobra.Command{
	Use:   "batch-convert <directory>",
	Short: "Convert every PDF in a directory to Markdown",
	Long: `Batch-convert processes all *.pdf files in a directory sequentially. A
document that fails is logged and counted; it does not stop the remaining
documents. The command exits 0 on partial failure and 1 only when there is
nothing to process or setup fails.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inputDir := args[0]

		pdfFiles, err := filepath.Glob(filepath.Join(inputDir, "*.pdf"))
		if err != nil {
			log.Fatalf("Error reading directory: %v", err)
		}
		if len(pdfFiles) == 0 {
			log.Fatalf("No PDF files found in %s", inputDir)
		}

		outputDir, _ := cmd.Flags().GetString("output")
		if outputDir == "" {
			outputDir = inputDir
		}

		ctx := context.Background()
		opts := resolvedOptions(cmd)

		aiService, err := newAIService(ctx, cmd, opts)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fmt.Printf("Found %d PDF files to process\n", len(pdfFiles))
		fmt.Printf("Output directory: %s\n", outputDir)
		fmt.Printf("Using model: %s\n", opts.Model)

		converter := service.NewConvertService(aiService, service.NewPDFService())

		successCount := 0
		failCount := 0
		for _, pdfPath := range pdfFiles {
			fmt.Printf("\nProcessing: %s\n", pdfPath)

			markdown, err := converter.ConvertFile(ctx, pdfPath, opts, printProgress)
			if err != nil {
				log.Printf("Error processing %s: %v", pdfPath, err)
				failCount++
				continue
			}

			outputPath := utils.OutputPath(pdfPath, outputDir)
			if err := utils.SaveMarkdown(markdown, outputPath); err != nil {
				log.Printf("Error saving %s: %v", outputPath, err)
				failCount++
				continue
			}
			fmt.Printf("Completed: %s\n", outputPath)
			successCount++
		}

		fmt.Println("\nBatch processing completed!")
		fmt.Printf("Success: %d, Failed: %d\n", successCount, failCount)
	},
}

func init() {
	rootCmd.AddCommand(batchConvertCmd)

	batchConvertCmd.Flags().StringP("output", "o", "", "Output directory (default: input directory)")
}
