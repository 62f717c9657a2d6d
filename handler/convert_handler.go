package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tieubaoca/pdf2md/service"
	"github.com/tieubaoca/pdf2md/types"
	"github.com/tieubaoca/pdf2md/utils"
)

// ConvertHandler exposes the conversion pipeline over HTTP: a PDF upload
// comes in, per-chunk progress streams out as SSE events, and the final
// event carries the Markdown result.
type ConvertHandler struct {
	fileService    *service.FileService
	convertService *service.ConvertService
	promptDir      string
	defaults       types.ConvertOptions
}

func NewConvertHandler(fileService *service.FileService, convertService *service.ConvertService, promptDir string, defaults types.ConvertOptions) *ConvertHandler {
	return &ConvertHandler{
		fileService:    fileService,
		convertService: convertService,
		promptDir:      promptDir,
		defaults:       defaults,
	}
}

func (h *ConvertHandler) HandleConvert(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid file",
		})
		return
	}
	defer file.Close()

	var req types.ConvertRequest
	if metadata := c.Request.FormValue("metadata"); metadata != "" {
		if err := json.Unmarshal([]byte(metadata), &req); err != nil {
			c.JSON(http.StatusBadRequest, types.DataResponse{
				Status:  false,
				Message: "Invalid metadata",
			})
			return
		}
	}
	if req.Title == "" {
		req.Title = header.Filename
	}

	const maxSize = 50 << 20
	if header.Size > maxSize {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "File too large",
		})
		return
	}

	tmpPath, cleanup, err := h.fileService.StageUpload(header)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}
	// The temp file is owned by this run; remove it on every exit path.
	defer cleanup()

	opts := h.requestOptions(req)

	progressChan := make(chan types.ConversionProgress)
	type result struct {
		markdown string
		err      error
	}
	resultChan := make(chan result, 1)

	go func() {
		defer close(progressChan)
		markdown, err := h.convertService.ConvertFile(c.Request.Context(), tmpPath, opts, func(p types.ConversionProgress) {
			progressChan <- p
		})
		resultChan <- result{markdown, err}
	}()

	clientGone := c.Writer.CloseNotify()
	for {
		select {
		case <-clientGone:
			return // Client disconnected; cleanup still runs.
		case p, ok := <-progressChan:
			if !ok {
				progressChan = nil
				continue
			}
			jsonStatus, err := json.Marshal(p)
			if err != nil {
				continue
			}
			c.SSEvent("message", string(jsonStatus))
			c.Writer.Flush()
		case res := <-resultChan:
			if res.err != nil {
				c.JSON(http.StatusInternalServerError, types.DataResponse{
					Status:  false,
					Message: res.err.Error(),
				})
				return
			}
			c.JSON(http.StatusOK, types.DataResponse{
				Status: true,
				Data: types.ConvertResponse{
					OriginalName: req.Title,
					OutputName:   utils.OutputFileName(req.Title),
					Markdown:     res.markdown,
				},
			})
			return
		}
	}
}

// HandlePrompts lists the prompt template files available for selection.
func (h *ConvertHandler) HandlePrompts(c *gin.Context) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.PromptListResponse{
			Prompts: service.ListPromptFiles(h.promptDir),
		},
	})
}

// requestOptions overlays per-request choices onto the server defaults.
func (h *ConvertHandler) requestOptions(req types.ConvertRequest) types.ConvertOptions {
	opts := h.defaults
	if req.Model != "" {
		opts.Model = req.Model
	}
	if req.Prompt != "" {
		opts.PromptTemplate = service.LoadPrompt(req.Prompt)
	}
	if req.ChunkSize > 0 {
		opts.ChunkSize = req.ChunkSize
	}
	opts.Stream = req.Stream
	switch mode := types.ChunkingMode(req.Chunking); mode {
	case types.ChunkingAuto, types.ChunkingForced, types.ChunkingDisabled:
		opts.Chunking = mode
	}
	return opts
}
