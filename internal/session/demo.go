package session

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/logger"
)

// Demo record IDs.
const (
	DemoFinFlowID  = "proj1"
	DemoEcoTrackID = "proj2"
)

// SeedDemo loads two sample projects and one sent message for each.
// Sent messages are listed on their project.
func (s *Session) SeedDemo(ctx context.Context) error {
	projects := demoProjects()
	messages := demoMessages()

	for _, m := range messages {
		for i := range projects {
			if projects[i].ID == m.ProjectID {
				projects[i].SentMessages = append(projects[i].SentMessages, m.ID)
			}
		}
	}

	for _, p := range projects {
		if err := s.projects.Save(ctx, p); err != nil {
			return fmt.Errorf("seed project %s: %w", p.ID, err)
		}
	}
	for _, m := range messages {
		if err := s.messages.Save(ctx, m); err != nil {
			return fmt.Errorf("seed message %s: %w", m.ID, err)
		}
	}

	logger.Debug("seeded %d demo projects and %d messages", len(projects), len(messages))
	return nil
}

func demoProjects() []domain.Project {
	return []domain.Project{
		{
			ID:   DemoFinFlowID,
			Name: "FinFlow AI",
			Description: "AI-powered financial planning platform for SMBs. Automates cash flow forecasting, " +
				"expense categorization, and financial reporting using machine learning.",
			CreatedAt: time.Date(2025, 12, 15, 10, 30, 0, 0, time.UTC),
			Profile: &domain.ProjectProfile{
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
			},
			ShortlistedInvestors: []string{"vc1", "vc6", "vc7"},
			SentMessages:         []string{},
		},
		{
			ID:   DemoEcoTrackID,
			Name: "EcoTrack",
			Description: "Carbon tracking and offset marketplace for e-commerce businesses. Helps online " +
				"retailers measure, reduce, and offset their carbon footprint.",
			CreatedAt: time.Date(2025, 12, 10, 14, 20, 0, 0, time.UTC),
			Profile: &domain.ProjectProfile{
				Industry:      "Climate Tech",
				Stage:         "Seed",
				FundingNeeded: "$2M",
				TeamSize:      8,
				Founded:       "2024",
				Location:      "Austin, TX",
				Revenue:       "$150K ARR",
				Growth:        "40% MoM",
				Customers:     85,
				Highlights: []string{
					"Integrated with Shopify and WooCommerce",
					"Offset 50K tons of CO2 to date",
					"B Corp certified",
				},
			},
			ShortlistedInvestors: []string{"vc4"},
			SentMessages:         []string{},
		},
	}
}

func demoMessages() []domain.OutreachMessage {
	return []domain.OutreachMessage{
		{
			ID:         "msg1",
			ProjectID:  DemoFinFlowID,
			InvestorID: "vc1",
			Body: "Hi Sarah,\n\n" +
				"I'm reaching out because FinFlow AI's mission to democratize financial intelligence for SMBs " +
				"aligns perfectly with Sequoia's focus on transformative B2B SaaS solutions.\n\n" +
				"We've built an AI platform that's achieving 94% accuracy in cash flow predictions - a game-changer " +
				"for the 30M SMBs struggling with financial planning. With $500K ARR and 25% MoM growth in just " +
				"18 months, we're seeing strong product-market fit.\n\n" +
				"I'd love to share how we're using ML to solve a $10B problem in the SMB market. " +
				"Would you be open to a brief conversation?\n\n" +
				"Best regards,\nAlex Morgan\nCEO, FinFlow AI",
			Report: &domain.Report{
				Founder: domain.FounderSection{
					Name:             "Alex Morgan",
					Background:       "Former Goldman Sachs VP, MBA from Stanford",
					Experience:       "12 years in financial services and tech",
					PreviousVentures: "Founded and exited DataCrunch (acquired by Oracle)",
					Expertise:        "Financial modeling, AI/ML, Enterprise SaaS",
				},
				Company: domain.CompanySection{
					Name:     "FinFlow AI",
					Industry: "FinTech",
					Tagline:  "AI-powered financial intelligence for SMBs",
					Founded:  "2023",
					Location: "San Francisco, CA",
					Website:  "www.finflowai.com",
					TeamSize: 12,
					KeyHires: "CTO from Stripe, Head of AI from Google",
				},
				Product: domain.ProductSection{
					Description: "AI-powered financial planning platform that automates cash flow forecasting, " +
						"expense categorization, and financial reporting for small and medium businesses.",
					Problem: "30M SMBs lack sophisticated financial planning tools, leading to 82% of business " +
						"failures due to cash flow mismanagement.",
					Solution: "Machine learning platform that provides enterprise-grade financial intelligence at SMB pricing.",
					Features: []string{
						"Automated cash flow forecasting (94% accuracy)",
						"Real-time expense categorization",
						"Predictive financial reporting",
						"Integration with major accounting software",
					},
					Traction: domain.TractionSection{
						Revenue:   "$500K ARR",
						Growth:    "25% MoM",
						Customers: 150,
						Retention: "96%",
						NPS:       72,
					},
				},
				Market: domain.MarketSection{
					Size:            "$10B TAM in SMB financial software",
					Growth:          "18% CAGR",
					Competitors:     "QuickBooks, Xero, FreshBooks",
					Differentiation: "Only AI-native platform with predictive capabilities",
				},
				Funding: domain.FundingSection{
					Stage:         "Series A",
					Amount:        "$5M",
					Use:           "Product development (40%), Sales & Marketing (40%), Team expansion (20%)",
					PreviousRound: "$1.2M Seed led by Y Combinator",
				},
				Matching: domain.MatchingSection{
					Score: 94,
					Reasoning: "Exceptional alignment with your B2B SaaS and AI/ML focus. The company operates in " +
						"FinTech, is at Series A stage, and has strong enterprise software fundamentals.",
				},
				Highlights: []string{
					"Partnered with 3 major accounting firms",
					"AI accuracy of 94% in cash flow predictions",
					"Featured in TechCrunch and Forbes",
				},
			},
			SentAt: time.Date(2025, 12, 20, 9, 15, 0, 0, time.UTC),
			Status: domain.MessageStatusSent,
		},
		{
			ID:         "msg2",
			ProjectID:  DemoEcoTrackID,
			InvestorID: "vc4",
			Body: "Hi David,\n\n" +
				"EcoTrack is building the carbon infrastructure for e-commerce, and I believe it fits perfectly " +
				"with Benchmark's thesis on climate solutions.\n\n" +
				"We've helped 85 e-commerce businesses offset 50K tons of CO2 while growing 40% MoM. Our seamless " +
				"Shopify integration makes sustainability accessible to online retailers of all sizes.\n\n" +
				"The e-commerce carbon offset market is projected to reach $15B by 2030. I'd love to discuss how " +
				"EcoTrack is positioned to capture this opportunity.\n\n" +
				"Looking forward to connecting,\nJamie Lee\nCEO, EcoTrack",
			Report: &domain.Report{
				Founder: domain.FounderSection{
					Name:             "Jamie Lee",
					Background:       "Former Director of Sustainability at Amazon",
					Experience:       "10 years in e-commerce and sustainability",
					PreviousVentures: "Led Amazon Climate Pledge initiatives",
					Expertise:        "Carbon accounting, E-commerce operations, Marketplace design",
				},
				Company: domain.CompanySection{
					Name:     "EcoTrack",
					Industry: "Climate Tech",
					Tagline:  "Carbon tracking and offset marketplace for e-commerce",
					Founded:  "2024",
					Location: "Austin, TX",
					Website:  "www.ecotrack.io",
					TeamSize: 8,
					KeyHires: "VP Engineering from Shopify, Chief Climate Officer from Carbon Direct",
				},
				Product: domain.ProductSection{
					Description: "Platform that helps e-commerce businesses measure, reduce, and offset their " +
						"carbon footprint through automated tracking and a curated offset marketplace.",
					Problem: "E-commerce is responsible for 1.5B tons of CO2 annually, but most retailers lack " +
						"tools to measure and offset their impact.",
					Solution: "Plug-and-play carbon tracking with automated offset purchasing and customer-facing " +
						"sustainability badges.",
					Features: []string{
						"Automated carbon footprint calculation",
						"Shipping emissions tracking",
						"Curated offset marketplace",
						"Customer-facing sustainability reports",
						"Integration with Shopify, WooCommerce",
					},
					Traction: domain.TractionSection{
						Revenue:   "$150K ARR",
						Growth:    "40% MoM",
						Customers: 85,
						Retention: "92%",
					},
				},
				Market: domain.MarketSection{
					Size:            "$15B projected market by 2030",
					Growth:          "32% CAGR",
					Competitors:     "Patch, Cloverly, Wren",
					Differentiation: "Only solution purpose-built for e-commerce with full platform integration",
				},
				Funding: domain.FundingSection{
					Stage:         "Seed",
					Amount:        "$2M",
					Use:           "Product development (50%), Market expansion (30%), Team (20%)",
					PreviousRound: "Bootstrapped with $500K from founders",
				},
				Matching: domain.MatchingSection{
					Score: 96,
					Reasoning: "Outstanding fit with your climate tech and sustainability focus. EcoTrack operates " +
						"at your target Seed stage and has impressive early traction.",
				},
				Highlights: []string{
					"Integrated with Shopify and WooCommerce",
					"Offset 50K tons of CO2 to date",
					"B Corp certified",
				},
			},
			SentAt: time.Date(2025, 12, 18, 11, 30, 0, 0, time.UTC),
			Status: domain.MessageStatusSent,
		},
	}
}
