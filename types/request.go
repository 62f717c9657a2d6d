package types

// ConvertRequest is the options payload sent alongside an uploaded PDF.
type ConvertRequest struct {
	Title     string `json:"title"`
	Model     string `json:"model,omitempty"`
	Prompt    string `json:"prompt,omitempty"` // prompt template file name
	ChunkSize int    `json:"chunk_size,omitempty"`
	Stream    bool   `json:"stream"`
	Chunking  string `json:"chunking,omitempty"` // auto | force | off
}
