// Package processor runs the full review pipeline over a single document:
// rule checks, LLM review, inline annotations and the appended summary.
package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/catnipandroid/blog-checker/internal/config"
	"github.com/catnipandroid/blog-checker/internal/docx"
	"github.com/catnipandroid/blog-checker/internal/logging"
	"github.com/catnipandroid/blog-checker/internal/review"
	"github.com/catnipandroid/blog-checker/internal/rules"
	"github.com/catnipandroid/blog-checker/internal/telemetry"
)

const summaryHeading = "[자동검수 요약]"

// Result is the outcome of reviewing one document.
type Result struct {
	ReviewID string
	Document []byte
	Report   []string
}

// Processor orchestrates the checks over uploaded documents.
type Processor struct {
	reviewer *review.Reviewer
	log      logging.Logger
	metrics  *telemetry.Metrics
}

// New builds a Processor. metrics may be nil.
func New(reviewer *review.Reviewer, log logging.Logger, metrics *telemetry.Metrics) *Processor {
	if log == nil {
		log = logging.Nop()
	}
	return &Processor{reviewer: reviewer, log: log, metrics: metrics}
}

type check struct {
	name string
	run  func(*docx.Document) []string
}

// Process reviews one document and returns the annotated bytes plus the
// report lines. The rule checks run in a fixed order, then the LLM pass,
// then the summary block is appended.
func (p *Processor) Process(ctx context.Context, data []byte, cfg config.ReviewConfig, useLLM bool) (*Result, error) {
	reviewID := uuid.NewString()
	start := time.Now()

	doc, err := docx.Open(data)
	if err != nil {
		p.metrics.ObserveReview("invalid", time.Since(start))
		p.log.Warn("document rejected", "review_id", reviewID, "error", err)
		return nil, fmt.Errorf("open document: %w", err)
	}

	checks := []check{
		{"media_count", func(d *docx.Document) []string { return rules.CheckMediaCount(d, cfg.MinImages) }},
		{"utm_links", rules.CheckUTMLinks},
		{"hashtags", func(d *docx.Document) []string { return rules.CheckHashtags(d, cfg.RecommendedHashtags) }},
		{"shopby", func(d *docx.Document) []string { return rules.CheckShopby(d, cfg.ShopbyKeywords) }},
		{"b2b_basic", func(d *docx.Document) []string {
			return rules.CheckB2BBasicFeature(d, cfg.B2BKeywords, cfg.BasicFeatureKeywords)
		}},
		{"haedream", func(d *docx.Document) []string { return rules.CheckHaedream(d, cfg.HaedreamKeywords) }},
		{"forbidden_terms", func(d *docx.Document) []string {
			return rules.CheckForbiddenTerms(d, cfg.ClientBrands, cfg.CompetitorKeywords)
		}},
		{"avoided_phrases", func(d *docx.Document) []string { return rules.CheckAvoidedPhrases(d, cfg.AvoidedPhrases) }},
		{"title_keyword", func(d *docx.Document) []string { return rules.CheckTitleKeyword(d, cfg.TitleRequiredKeyword) }},
	}

	var report []string
	for _, c := range checks {
		// each inline annotation adds one commentary paragraph, so the
		// paragraph-count delta is the number of findings
		before := len(doc.Paragraphs())
		lines := c.run(doc)
		p.metrics.AddFindings(c.name, len(doc.Paragraphs())-before)
		report = append(report, lines...)
	}

	if p.reviewer != nil {
		report = append(report, p.reviewer.Review(ctx, doc, cfg.SuspiciousKeywords, useLLM)...)
	}

	appendSummary(doc, report)

	out, err := doc.Save()
	if err != nil {
		p.metrics.ObserveReview("error", time.Since(start))
		return nil, fmt.Errorf("serialize document: %w", err)
	}

	elapsed := time.Since(start)
	p.metrics.ObserveReview("ok", elapsed)
	p.log.Info("document reviewed",
		"review_id", reviewID,
		"paragraphs", len(doc.Paragraphs()),
		"report_lines", len(report),
		"llm", useLLM,
		"duration_ms", elapsed.Milliseconds(),
	)

	return &Result{ReviewID: reviewID, Document: out, Report: report}, nil
}

// appendSummary adds the bold summary heading followed by one paragraph
// per report line at the end of the document body.
func appendSummary(doc *docx.Document, report []string) {
	heading := doc.AppendParagraph(summaryHeading)
	for _, r := range heading.Runs() {
		r.SetBold(true)
	}
	for _, line := range report {
		doc.AppendParagraph(line)
	}
}
