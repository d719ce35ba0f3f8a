package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

const (
	taglineRunes     = 80
	defaultTeamSize  = 8
	defaultCustomers = 50
	fundingUse       = "Product development (45%), Sales & Marketing (35%), Team expansion (20%)"
)

type persona struct {
	name             string
	background       string
	experience       string
	previousVentures string
	expertise        string
}

var personas = []persona{
	{
		name:             "Alex Morgan",
		background:       "Former Goldman Sachs VP, MBA from Stanford",
		experience:       "12 years in financial services and tech",
		previousVentures: "Founded and exited DataCrunch (acquired by Oracle)",
		expertise:        "Financial modeling, AI/ML, Enterprise SaaS",
	},
	{
		name:             "Jamie Lee",
		background:       "Former Director of Sustainability at Amazon",
		experience:       "10 years in e-commerce and sustainability",
		previousVentures: "Led Amazon Climate Pledge initiatives",
		expertise:        "Carbon accounting, E-commerce operations, Marketplace design",
	},
	{
		name:             "Sarah Johnson",
		background:       "Ex-Google Product Lead, CS PhD from MIT",
		experience:       "15 years in tech product development",
		previousVentures: "Early PM at Stripe, Product Lead at Square",
		expertise:        "Product strategy, Growth, Technical architecture",
	},
}

var (
	keyHires = []string{
		"CTO from Stripe, Head of AI from Google",
		"VP Engineering from Shopify, Chief Product Officer from Uber",
		"Head of Data from Netflix, VP Sales from Salesforce",
		"Chief Architect from Amazon, Head of Growth from Airbnb",
	}
	marketSizes = []string{"$5B", "$8B", "$10B", "$15B", "$20B"}
	competitors = []string{
		"Established incumbents with legacy technology",
		"Several early-stage startups with limited traction",
		"Traditional players slow to innovate",
	}
	productFeatures = []string{
		"Advanced analytics and reporting",
		"Seamless integration with existing tools",
		"Real-time data processing",
		"Intuitive user interface",
		"Enterprise-grade security",
	}
	defaultHighlights = []string{
		"Strong early traction and user engagement",
		"Experienced founding team with relevant exits",
		"Clear path to market leadership",
	}
)

// ReportService builds founder reports.
type ReportService struct {
	random      driven.RandomSource
	delayer     driven.Delayer
	scorer      *Scorer
	founderName string
}

// NewReportService creates a new report service.
// The report's matching score comes from scorer, without preference text.
func NewReportService(random driven.RandomSource, delayer driven.Delayer, scorer *Scorer) *ReportService {
	return &ReportService{
		random:  random,
		delayer: delayer,
		scorer:  scorer,
	}
}

// SetFounderName pins the report's founder persona to a known name.
// A name matching a built-in persona selects that persona.
func (s *ReportService) SetFounderName(name string) {
	s.founderName = strings.TrimSpace(name)
}

// Generate builds the report for project as seen by inv.
func (s *ReportService) Generate(ctx context.Context, project domain.Project, inv domain.Investor) (*domain.Report, error) {
	if s.scorer == nil {
		return nil, domain.ErrNotImplemented
	}
	logger.Debug("Generating report for %s -> %s", project.ID, inv.ID)

	if err := wait(ctx, s.delayer, reportLatency); err != nil {
		return nil, err
	}

	var p domain.ProjectProfile
	if project.Profile != nil {
		p = *project.Profile
	}
	score := s.scorer.Score(project.Profile, inv, "").Value

	report := &domain.Report{
		Founder: s.founder(),
		Company: domain.CompanySection{
			Name:     project.Name,
			Industry: p.Industry,
			Tagline:  tagline(project.Description),
			Founded:  orDefault(p.Founded, "2024"),
			Location: orDefault(p.Location, "San Francisco, CA"),
			Website:  "www." + strings.ReplaceAll(strings.ToLower(project.Name), " ", "") + ".com",
			TeamSize: p.TeamSize,
			KeyHires: pick(s.random, keyHires),
		},
		Product: domain.ProductSection{
			Description: project.Description,
			Problem: fmt.Sprintf("Businesses in %s face significant challenges that current solutions fail to "+
				"address effectively, leading to inefficiencies and missed opportunities.", orDefault(p.Industry, "the market")),
			Solution: fmt.Sprintf("%s provides an innovative platform that solves this through advanced "+
				"technology and user-centric design.", project.Name),
			Features: append([]string(nil), productFeatures...),
			Traction: domain.TractionSection{
				Revenue:   orDefault(p.Revenue, "$100K ARR"),
				Growth:    orDefault(p.Growth, "30% MoM"),
				Customers: p.Customers,
				Retention: orDefault(p.Retention, fmt.Sprintf("%d%%", between(s.random, 88, 96))),
				NPS:       p.NPS,
			},
		},
		Market: domain.MarketSection{
			Size:        pick(s.random, marketSizes) + " TAM",
			Growth:      fmt.Sprintf("%d%% CAGR", between(s.random, 15, 30)),
			Competitors: pick(s.random, competitors),
			Differentiation: fmt.Sprintf("%s is the only solution combining advanced AI capabilities with "+
				"seamless user experience, giving us a significant competitive advantage.", project.Name),
		},
		Funding: domain.FundingSection{
			Stage:         orDefault(p.Stage, "Seed"),
			Amount:        orDefault(p.FundingNeeded, "$2M"),
			Use:           fundingUse,
			PreviousRound: previousRound(p.Stage),
		},
		Matching: domain.MatchingSection{
			Score:     score,
			Reasoning: matchReasoning(project, inv, score),
		},
		Highlights: append([]string(nil), p.Highlights...),
	}

	if report.Company.TeamSize == 0 {
		report.Company.TeamSize = defaultTeamSize
	}
	if report.Product.Traction.Customers == 0 {
		report.Product.Traction.Customers = defaultCustomers
	}
	if report.Product.Traction.NPS == 0 {
		report.Product.Traction.NPS = between(s.random, 60, 75)
	}
	if len(report.Highlights) == 0 {
		report.Highlights = append([]string(nil), defaultHighlights...)
	}

	return report, nil
}

func (s *ReportService) founder() domain.FounderSection {
	chosen := pick(s.random, personas)
	if s.founderName != "" {
		chosen.name = s.founderName
		for _, p := range personas {
			if strings.EqualFold(p.name, s.founderName) {
				chosen = p
				break
			}
		}
	}

	first, _, _ := strings.Cut(chosen.name, " ")
	return domain.FounderSection{
		Name:             chosen.name,
		Background:       chosen.background,
		Experience:       chosen.experience,
		PreviousVentures: chosen.previousVentures,
		Expertise:        chosen.expertise,
		LinkedIn:         "linkedin.com/in/" + strings.Replace(strings.ToLower(chosen.name), " ", "", 1),
		Twitter:          "@" + strings.ToLower(first),
	}
}

// tagline clips the first sentence of a description.
func tagline(description string) string {
	first := firstSentence(description)
	clipped := truncate(first, taglineRunes)
	if clipped != first {
		return clipped + "..."
	}
	return first
}

func previousRound(stage string) string {
	switch stage {
	case "Series A":
		return "$1.2M Seed led by Y Combinator"
	case "Series B":
		return "$8M Series A led by Sequoia Capital"
	default:
		return "Bootstrapped with $500K from founders and angels"
	}
}

func matchReasoning(project domain.Project, inv domain.Investor, score int) string {
	industry := orDefault(project.Industry(), "this space")
	stage := orDefault(project.Stage(), "this stage")

	switch {
	case score >= 85:
		return fmt.Sprintf("Exceptional alignment with your investment thesis. %s operates in %s (your key "+
			"focus area), is at %s (your sweet spot), and demonstrates the kind of category-defining potential "+
			"you look for. The founding team's background and early traction metrics strongly align with %s's "+
			"portfolio criteria.", project.Name, industry, stage, inv.Firm)
	case score >= 70:
		return fmt.Sprintf("Strong fit with your %s focus. The company's approach to %s and stage %s aligns "+
			"well with %s's investment strategy. Several key metrics and team qualities match your typical "+
			"investment profile.", inv.FirstFocusArea(fallbackFocus), industry, stage, inv.Firm)
	default:
		return fmt.Sprintf("Good potential fit based on your interest in %s and investment in companies like "+
			"%s. While not a perfect match on all criteria, %s has compelling elements that may be of interest.",
			inv.FirstFocusArea(fallbackFocus), inv.PortfolioCompany(0, fallbackPortfolio), project.Name)
	}
}
