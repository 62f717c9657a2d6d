package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ConvertResponse is the final payload of a successful web conversion.
type ConvertResponse struct {
	OriginalName string `json:"original_name"`
	OutputName   string `json:"output_name"`
	Markdown     string `json:"markdown"`
}

// PromptListResponse lists the prompt template files available to the UI.
type PromptListResponse struct {
	Prompts []string `json:"prompts"`
}
