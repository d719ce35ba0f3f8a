package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

func outputJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// profileFlags collects the startup profile from command flags.
type profileFlags struct {
	industry  string
	stage     string
	funding   string
	revenue   string
	growth    string
	customers int
	teamSize  int
	location  string
	founded   string
}

func (p *profileFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&p.industry, "industry", "", "industry (e.g. FinTech)")
	fs.StringVar(&p.stage, "stage", "", "funding stage (e.g. Series A)")
	fs.StringVar(&p.funding, "funding", "", "amount being raised (e.g. $5M)")
	fs.StringVar(&p.revenue, "revenue", "", "current revenue (e.g. $500K ARR)")
	fs.StringVar(&p.growth, "growth", "", "growth rate (e.g. 25% MoM)")
	fs.IntVar(&p.customers, "customers", 0, "number of customers")
	fs.IntVar(&p.teamSize, "team-size", 0, "number of employees")
	fs.StringVar(&p.location, "location", "", "company location")
	fs.StringVar(&p.founded, "founded", "", "year founded")
}

// profile returns nil when no profile flag was set.
func (p *profileFlags) profile() *domain.ProjectProfile {
	if *p == (profileFlags{}) {
		return nil
	}
	return &domain.ProjectProfile{
		Industry:      p.industry,
		Stage:         p.stage,
		FundingNeeded: p.funding,
		Revenue:       p.revenue,
		Growth:        p.growth,
		Customers:     p.customers,
		TeamSize:      p.teamSize,
		Location:      p.location,
		Founded:       p.founded,
	}
}

func (p *profileFlags) reset() {
	*p = profileFlags{}
}

func printProfile(cmd *cobra.Command, p *domain.ProjectProfile) {
	if p == nil {
		cmd.Println("  Profile: (none)")
		return
	}
	field := func(label, value string) {
		if value != "" {
			cmd.Printf("  %-10s %s\n", label+":", value)
		}
	}
	field("Industry", p.Industry)
	field("Stage", p.Stage)
	field("Raising", p.FundingNeeded)
	field("Revenue", p.Revenue)
	field("Growth", p.Growth)
	if p.Customers > 0 {
		field("Customers", fmt.Sprint(p.Customers))
	}
	if p.TeamSize > 0 {
		field("Team", fmt.Sprint(p.TeamSize))
	}
	field("Location", p.Location)
	field("Founded", p.Founded)
	for _, h := range p.Highlights {
		cmd.Printf("  - %s\n", h)
	}
}

// indent prefixes every line of s.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = prefix + l
		}
	}
	return strings.Join(lines, "\n")
}
