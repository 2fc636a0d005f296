package api

import "github.com/gin-gonic/gin"

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ReviewResponse is the reply to a review request, one entry per file.
type ReviewResponse struct {
	Results []FileResult `json:"results"`
}

// FileResult holds the outcome for a single uploaded document. On failure
// Error is set and the other fields are empty; one bad file does not fail
// the rest of the batch.
type FileResult struct {
	Filename string   `json:"filename"`
	Checked  string   `json:"checked_filename,omitempty"`
	ReviewID string   `json:"review_id,omitempty"`
	Report   []string `json:"report,omitempty"`
	Document string   `json:"document,omitempty"` // base64-encoded annotated .docx
	Error    string   `json:"error,omitempty"`
}

func abortError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: msg, Code: code})
}
