package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Ensure MessageService implements the interface.
var _ driving.MessageService = (*MessageService)(nil)

const (
	fallbackFocus     = "technology"
	fallbackPortfolio = "leading companies"
	shortPitchRunes   = 100
)

var (
	percentPattern = regexp.MustCompile(`\d+%`)
	fundingPattern = regexp.MustCompile(`\$[\d.]+[KMB]`)
)

// messageTemplate renders one outreach message layout.
type messageTemplate func(inv domain.Investor, project domain.Project, founder string) string

var messageTemplates = []messageTemplate{
	func(inv domain.Investor, project domain.Project, founder string) string {
		return fmt.Sprintf(`Hi %s,

I'm reaching out because %s's mission aligns perfectly with %s's focus on %s.

%s

I'd love to share how we're tackling this opportunity and why now is the perfect time. Would you be open to a brief conversation?

Best regards,
%s
CEO, %s`,
			inv.Name, project.Name, inv.Firm, inv.FirstFocusArea(fallbackFocus),
			tractionLine(project.Profile), founder, project.Name)
	},
	func(inv domain.Investor, project domain.Project, founder string) string {
		return fmt.Sprintf(`Dear %s,

I noticed your recent investments in %s and %s, which makes me think %s would be a great fit for %s's portfolio.

%s

%s

I believe our approach to %s could be transformative, and I'd appreciate the opportunity to discuss this with you.

Looking forward to connecting,
%s`,
			inv.Name, inv.PortfolioCompany(0, fallbackPortfolio), inv.PortfolioCompany(1, "others"),
			project.Name, inv.Firm, project.Description, tractionLine(project.Profile),
			orDefault(project.Industry(), "this market"), founder)
	},
	func(inv domain.Investor, project domain.Project, founder string) string {
		expertise := strings.Join(inv.FocusAreas, ", ")
		return fmt.Sprintf(`Hi %s,

Given your expertise in %s, I wanted to introduce %s.

We're solving a major problem in %s: %s

%s

Your portfolio companies like %s demonstrate the kind of category-defining businesses you support. I'd love to explore if %s could be a fit for %s.

Best,
%s
Founder & CEO`,
			inv.Name, orDefault(expertise, fallbackFocus), project.Name,
			orDefault(project.Industry(), "our industry"), shortPitch(project.Description),
			tractionLine(project.Profile), inv.PortfolioCompany(0, fallbackPortfolio),
			project.Name, inv.Firm, founder)
	},
	func(inv domain.Investor, project domain.Project, founder string) string {
		return fmt.Sprintf(`%s,

Quick intro: I'm %s, founder of %s.

%s

What caught my attention about %s: Your thesis on %s and track record with %s.

%s

Would you be interested in a 20-minute call to explore potential synergies?

Cheers,
%s`,
			inv.Name, founder, project.Name, project.Description, inv.Firm,
			inv.FirstFocusArea(fallbackFocus), inv.PortfolioCompany(0, fallbackPortfolio),
			tractionLine(project.Profile), founder)
	},
}

// MessageService drafts outreach messages from templates.
type MessageService struct {
	random  driven.RandomSource
	delayer driven.Delayer
}

// NewMessageService creates a new message service.
func NewMessageService(random driven.RandomSource, delayer driven.Delayer) *MessageService {
	return &MessageService{
		random:  random,
		delayer: delayer,
	}
}

// Generate drafts a message using a randomly chosen template.
func (s *MessageService) Generate(inv domain.Investor, project domain.Project, founderName string) string {
	founder := orDefault(strings.TrimSpace(founderName), domain.DefaultFounderName)
	tmpl := pick(s.random, messageTemplates)
	return tmpl(inv, project, founder)
}

// Refine redrafts a message after a short pause, keeping its signature.
// The founder name is read from the last line, up to the first comma.
func (s *MessageService) Refine(
	ctx context.Context,
	message string,
	inv domain.Investor,
	project domain.Project,
) (string, error) {
	logger.Debug("Refining message for %s", inv.ID)
	if err := wait(ctx, s.delayer, refineLatency); err != nil {
		return "", err
	}
	return s.Generate(inv, project, signature(message)), nil
}

// Analyze rates a draft for cold outreach.
func (s *MessageService) Analyze(message string) domain.MessageAnalysis {
	analysis := domain.MessageAnalysis{
		Score:       85 + between(s.random, 0, 9),
		Strengths:   []string{},
		Suggestions: []string{},
	}

	length := utf8.RuneCountInString(message)
	switch {
	case length >= 500:
		analysis.Suggestions = append(analysis.Suggestions, "Consider shortening for better engagement")
	case length > 200:
		analysis.Strengths = append(analysis.Strengths, "Optimal length for cold outreach")
	}

	if strings.Contains(message, "traction") || strings.Contains(message, "growth") ||
		percentPattern.MatchString(message) {
		analysis.Strengths = append(analysis.Strengths, "Includes compelling traction metrics")
	}

	if fundingPattern.MatchString(message) {
		analysis.Strengths = append(analysis.Strengths, "Clear about funding needs")
	}

	switch questions := strings.Count(message, "?"); {
	case questions == 1:
		analysis.Strengths = append(analysis.Strengths, "Clear call-to-action")
	case questions > 1:
		analysis.Suggestions = append(analysis.Suggestions, "Single clear ask performs better")
	}

	return analysis
}

// tractionLine summarises whatever metrics the profile has.
func tractionLine(p *domain.ProjectProfile) string {
	var revenue, growth string
	var customers int
	if p != nil {
		revenue, growth, customers = p.Revenue, p.Growth, p.Customers
	}

	switch {
	case revenue != "" && growth != "" && customers > 0:
		return fmt.Sprintf("We're at %s with %s growth and %d customers, showing strong product-market fit.",
			revenue, growth, customers)
	case revenue != "" && growth != "":
		return fmt.Sprintf("We're at %s growing at %s, demonstrating strong market traction.", revenue, growth)
	case customers > 0:
		return fmt.Sprintf("We've onboarded %d customers and are seeing excellent engagement metrics.", customers)
	default:
		return "We're seeing strong early traction and validation from our target market."
	}
}

// shortPitch returns the first sentence, or a clipped description when
// that sentence runs long.
func shortPitch(description string) string {
	first := firstSentence(description)
	if utf8.RuneCountInString(first) > shortPitchRunes {
		return truncate(description, shortPitchRunes) + "..."
	}
	return first
}

// signature extracts the founder name from a message's closing line.
func signature(message string) string {
	lines := strings.Split(strings.TrimRight(message, "\n"), "\n")
	name, _, _ := strings.Cut(lines[len(lines)-1], ",")
	return orDefault(strings.TrimSpace(name), domain.DefaultFounderName)
}
