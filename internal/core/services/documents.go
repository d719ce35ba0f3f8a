package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// extractedProfile is what the document parser recognises in a pitch deck.
func extractedProfile() *domain.ProjectProfile {
	return &domain.ProjectProfile{
		Industry:      "FinTech",
		Stage:         "Series A",
		FundingNeeded: "$5M",
		TeamSize:      12,
		Founded:       "2023",
		Location:      "San Francisco, CA",
		Revenue:       "$500K ARR",
		Growth:        "25% MoM",
		Customers:     150,
		Highlights: []string{
			"Partnered with 3 major accounting firms",
			"AI accuracy of 94% in cash flow predictions",
			"Featured in TechCrunch and Forbes",
		},
	}
}

// ParseDocuments uploads and parses each file in turn, then extracts a profile.
func (s *ProjectService) ParseDocuments(
	ctx context.Context,
	projectID string,
	files []domain.UploadedFile,
) (*domain.ProjectProfile, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: no documents uploaded", domain.ErrInvalidInput)
	}
	if projectID != "" {
		if _, err := s.Get(ctx, projectID); err != nil {
			return nil, err
		}
	}

	var docs []domain.PitchDocument
	for _, f := range files {
		logger.Debug("Uploading %s (%d bytes)", f.Name, f.Size)
		if err := wait(ctx, s.delayer, uploadLatency); err != nil {
			return nil, err
		}
		logger.Debug("Parsing %s", f.Name)
		if err := wait(ctx, s.delayer, parseLatency); err != nil {
			return nil, err
		}
		doc, err := s.readDocument(ctx, &f)
		if err != nil {
			return nil, err
		}
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	if err := wait(ctx, s.delayer, extractLatency); err != nil {
		return nil, err
	}

	profile := extractedProfile()
	if len(docs) > 0 {
		s.applyDocumentHints(ctx, profile, docs)
	}
	if projectID == "" {
		return profile, nil
	}
	if _, err := s.Update(ctx, projectID, domain.ProjectUpdate{Profile: profile}); err != nil {
		return nil, err
	}
	return profile, nil
}

// readDocument extracts the text of an uploaded file. Files without content
// or without a normaliser for their type yield nil.
func (s *ProjectService) readDocument(ctx context.Context, f *domain.UploadedFile) (*domain.PitchDocument, error) {
	if s.normalisers == nil || len(f.Content) == 0 {
		return nil, nil
	}
	doc, err := s.normalisers.Normalise(ctx, f)
	if errors.Is(err, domain.ErrUnsupportedType) {
		logger.Warn("No reader for %s, using defaults", f.Name)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Name, err)
	}
	logger.Debug("Read %d words from %s (%s)", doc.Words(), f.Name, doc.Format)
	return doc, nil
}

var (
	raisePattern     = regexp.MustCompile(`(?i)rais(?:e|es|ing)\s+(?:an?\s+|our\s+)?(\$\s?\d+(?:\.\d+)?\s?[KMB])\b`)
	revenuePattern   = regexp.MustCompile(`(?i)(\$\d+(?:\.\d+)?[KMB])\s+(ARR|MRR)\b`)
	growthPattern    = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?%)\s+(MoM|YoY|month over month|year over year)`)
	customersPattern = regexp.MustCompile(`(?i)(\d[\d,]*)\+?\s+(?:paying\s+)?customers`)
	teamPattern      = regexp.MustCompile(`(?i)team of (\d+)`)
	foundedPattern   = regexp.MustCompile(`(?i)founded(?:\s+in)?\s+((?:19|20)\d{2})`)
)

// stageNames are checked in order so "Pre-Seed" wins over "Seed".
var stageNames = []string{"Pre-Seed", "Series C", "Series B", "Series A", "Seed"}

// applyDocumentHints overrides profile fields with facts stated in the
// documents. Fields the documents do not mention keep their defaults.
func (s *ProjectService) applyDocumentHints(ctx context.Context, p *domain.ProjectProfile, docs []domain.PitchDocument) {
	parts := make([]string, 0, len(docs))
	for i := range docs {
		parts = append(parts, docs[i].Title, docs[i].Content)
	}
	text := strings.Join(parts, "\n")
	lower := strings.ToLower(text)

	for _, stage := range stageNames {
		if countTerm(lower, strings.ToLower(stage)) > 0 {
			p.Stage = stage
			break
		}
	}
	if industry := s.mentionedIndustry(ctx, lower); industry != "" {
		p.Industry = industry
	}
	if m := raisePattern.FindStringSubmatch(text); m != nil {
		p.FundingNeeded = strings.ToUpper(strings.ReplaceAll(m[1], " ", ""))
	}
	if m := revenuePattern.FindStringSubmatch(text); m != nil {
		p.Revenue = strings.ToUpper(m[1]) + " " + strings.ToUpper(m[2])
	}
	if m := growthPattern.FindStringSubmatch(text); m != nil {
		p.Growth = m[1] + " " + m[2]
	}
	if m := customersPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", "")); err == nil {
			p.Customers = n
		}
	}
	if m := teamPattern.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			p.TeamSize = n
		}
	}
	if m := foundedPattern.FindStringSubmatch(text); m != nil {
		p.Founded = m[1]
	}
}

// mentionedIndustry returns the catalog industry named most often in text.
// Ties go to the industry listed first in the catalog.
func (s *ProjectService) mentionedIndustry(ctx context.Context, lower string) string {
	if s.catalog == nil {
		return ""
	}
	investors, err := s.catalog.List(ctx)
	if err != nil {
		logger.Debug("Industry hints unavailable: %v", err)
		return ""
	}

	best, bestCount := "", 0
	seen := make(map[string]bool)
	for i := range investors {
		for _, industry := range investors[i].Industries {
			if seen[industry] {
				continue
			}
			seen[industry] = true
			if n := countTerm(lower, strings.ToLower(industry)); n > bestCount {
				best, bestCount = industry, n
			}
		}
	}
	return best
}

// countTerm counts occurrences of term in text that are not part of a
// longer word, so "AI" does not match inside "raising".
func countTerm(text, term string) int {
	if term == "" {
		return 0
	}
	n := 0
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], term)
		if j < 0 {
			break
		}
		start, end := i+j, i+j+len(term)
		if !wordByte(text, start-1) && !wordByte(text, end) {
			n++
		}
		i = start + 1
	}
	return n
}

func wordByte(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return false
	}
	c := text[i]
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
