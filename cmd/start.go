/*
Copyright © 2026 tieubaoca
*/
package cmd

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"github.com/tieubaoca/pdf2md/handler"
	"github.com/tieubaoca/pdf2md/service"
	"github.com/tieubaoca/pdf2md/types"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the conversion web server",
	Long: `Starts an HTTP server exposing the conversion pipeline: upload a PDF,
follow per-chunk progress as server-sent events, and receive the Markdown
result. Uploads are staged in the upload directory and removed when the
conversion finishes.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		opts := resolvedOptions(cmd)

		aiService, err := newAIService(ctx, cmd, opts)
		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		fileService, err := service.NewFileService(cfg.UploadDir)
		if err != nil {
			log.Fatalf("Failed to prepare upload directory: %v", err)
		}
		convertService := service.NewConvertService(aiService, service.NewPDFService())

		corsHandler := handler.NewCorsHandler()
		convertHandler := handler.NewConvertHandler(fileService, convertService, ".", opts)

		router := gin.Default()
		router.Use(corsHandler.CorsMiddleware)

		apiV1 := router.Group("/api/v1")
		{
			apiV1.POST("/convert", convertHandler.HandleConvert)
			apiV1.GET("/prompts", convertHandler.HandlePrompts)
		}
		router.GET("/health", func(c *gin.Context) {
			c.JSON(200, types.DataResponse{Status: true})
		})

		log.Printf("Starting server on port %s...", cfg.Port)
		if err := router.Run(":" + cfg.Port); err != nil {
			log.Fatal("Server error:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(startCmd)
}
