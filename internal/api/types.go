package api

// Wire types for the StudyMind backend REST surface. Field names mirror the
// backend's JSON exactly; nothing here is persisted client-side.

// UploadFile is one file in a multipart upload batch. Content is read fully
// while the request body is streamed.
type UploadFile struct {
	Name string
	Path string
	Size int64
}

// UploadResult is the response to POST /upload. The chapter list replaces any
// previously known chapters wholesale.
type UploadResult struct {
	Message    string   `json:"message"`
	DocumentID string   `json:"document_id"`
	NumChunks  int      `json:"num_chunks"`
	Chapters   []string `json:"chapters"`
}

// QueryRequest is the body of POST /query. ChapterFilter must be nil (not an
// empty string) when the question is unscoped.
type QueryRequest struct {
	Query         string  `json:"query"`
	ChapterFilter *string `json:"chapter_filter"`
	ModelName     string  `json:"model_name"`
}

// Source is one provenance record attached to an answer.
type Source struct {
	Content string `json:"content,omitempty"`
	Source  string `json:"source"`
	Page    int    `json:"page"`
	Chapter string `json:"chapter,omitempty"`
}

// QueryResult is the response to POST /query.
type QueryResult struct {
	Answer    string   `json:"answer"`
	Sources   []Source `json:"sources"`
	ModelUsed string   `json:"model_used"`
}

// QuizResult is the response to POST /generate-quiz. Questions is raw
// markdown/plain text, rendered or exported as-is.
type QuizResult struct {
	Questions string `json:"questions"`
	ModelUsed string `json:"model_used"`
}

// ModelInfo describes one entry of the backend model catalog.
type ModelInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
