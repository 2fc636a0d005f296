// Package api exposes the document review pipeline over HTTP.
package api

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/catnipandroid/blog-checker/internal/config"
	"github.com/catnipandroid/blog-checker/internal/logging"
	"github.com/catnipandroid/blog-checker/internal/processor"
)

// DocumentProcessor reviews one document and returns the annotated bytes
// plus the report.
type DocumentProcessor interface {
	Process(ctx context.Context, data []byte, cfg config.ReviewConfig, useLLM bool) (*processor.Result, error)
}

// Handler serves the review endpoint.
type Handler struct {
	processor      DocumentProcessor
	defaults       config.ReviewConfig
	log            logging.Logger
	maxUploadBytes int64
}

// NewHandler builds a Handler. defaults supplies the rule lists used when
// a request does not override them.
func NewHandler(p DocumentProcessor, defaults config.ReviewConfig, log logging.Logger, maxUploadMB int) *Handler {
	if log == nil {
		log = logging.Nop()
	}
	if maxUploadMB <= 0 {
		maxUploadMB = 20
	}
	return &Handler{
		processor:      p,
		defaults:       defaults,
		log:            log,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// Review handles POST /api/v1/review. The request is multipart/form-data:
//   - "files": one or more .docx uploads (required)
//   - "config": optional JSON overriding the default rule lists
//   - "use_llm": optional "true"/"false", default true
//
// Files are reviewed independently; a file that cannot be parsed gets an
// error entry in the response instead of failing the whole request.
func (h *Handler) Review(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)

	form, err := c.MultipartForm()
	if err != nil {
		abortError(c, http.StatusBadRequest, "BAD_MULTIPART", "invalid multipart form: "+err.Error())
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		abortError(c, http.StatusBadRequest, "NO_FILE", "no document uploaded")
		return
	}

	rules, err := h.requestRules(form)
	if err != nil {
		abortError(c, http.StatusBadRequest, "BAD_CONFIG", "invalid config: "+err.Error())
		return
	}

	useLLM := true
	if v := formValue(form, "use_llm"); v != "" {
		useLLM = v == "true" || v == "1" || v == "yes"
	}

	resp := ReviewResponse{Results: make([]FileResult, 0, len(files))}
	failed := 0
	for _, fh := range files {
		res := h.reviewFile(c.Request.Context(), fh, rules, useLLM)
		if res.Error != "" {
			failed++
		}
		resp.Results = append(resp.Results, res)
	}

	status := http.StatusOK
	if failed == len(resp.Results) {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

func (h *Handler) reviewFile(ctx context.Context, fh *multipart.FileHeader, rules config.ReviewConfig, useLLM bool) FileResult {
	result := FileResult{Filename: fh.Filename}

	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".docx") {
		result.Error = "not a .docx file"
		return result
	}

	f, err := fh.Open()
	if err != nil {
		result.Error = "read upload: " + err.Error()
		return result
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		result.Error = "read upload: " + err.Error()
		return result
	}

	res, err := h.processor.Process(ctx, data, rules, useLLM)
	if err != nil {
		h.log.Warn("review failed", "filename", fh.Filename, "error", err)
		result.Error = err.Error()
		return result
	}

	result.Checked = strings.TrimSuffix(fh.Filename, ".docx") + "_checked.docx"
	result.ReviewID = res.ReviewID
	result.Report = res.Report
	result.Document = base64.StdEncoding.EncodeToString(res.Document)
	return result
}

// requestRules merges the optional "config" JSON part over the server
// defaults. Fields the client omits keep their default values.
func (h *Handler) requestRules(form *multipart.Form) (config.ReviewConfig, error) {
	rules := h.defaults

	raw := formValue(form, "config")
	if raw == "" {
		return rules, nil
	}
	if err := json.Unmarshal([]byte(raw), &rules); err != nil {
		return rules, err
	}
	return rules, nil
}

func formValue(form *multipart.Form, key string) string {
	if vals := form.Value[key]; len(vals) > 0 {
		return strings.TrimSpace(vals[0])
	}
	return ""
}
