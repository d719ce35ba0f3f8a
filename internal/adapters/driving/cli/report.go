package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

var reportJSON bool

var reportCmd = &cobra.Command{
	Use:   "report [project-id] [investor-id]",
	Short: "Generate an investor report for a project",
	Args:  cobra.ExactArgs(2),
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportJSON, "json", false, "output the report as JSON")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	project, inv, err := target(ctx, sess, args[0], args[1])
	if err != nil {
		return err
	}

	report, err := sess.Reports.Generate(ctx, *project, *inv)
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	if reportJSON {
		return outputJSON(cmd, report)
	}
	printReport(cmd, report, inv)
	return nil
}

func printReport(cmd *cobra.Command, r *domain.Report, inv *domain.Investor) {
	cmd.Printf("%s: %s\n", r.Company.Name, r.Company.Tagline)
	cmd.Printf("Prepared for %s, %s\n", inv.Name, inv.Firm)
	cmd.Println()

	cmd.Println("[Founder]")
	cmd.Printf("  %s\n", r.Founder.Name)
	cmd.Printf("  %s\n", r.Founder.Background)
	cmd.Printf("  %s\n", r.Founder.Experience)
	cmd.Printf("  Previously: %s\n", r.Founder.PreviousVentures)
	cmd.Println()

	cmd.Println("[Company]")
	cmd.Printf("  Founded %s in %s, team of %d\n", r.Company.Founded, r.Company.Location, r.Company.TeamSize)
	cmd.Printf("  Key hires: %s\n", r.Company.KeyHires)
	cmd.Println()

	cmd.Println("[Traction]")
	t := r.Product.Traction
	cmd.Printf("  Revenue: %s, growth %s\n", t.Revenue, t.Growth)
	cmd.Printf("  Customers: %d, retention %s, NPS %d\n", t.Customers, t.Retention, t.NPS)
	cmd.Println()

	cmd.Println("[Market]")
	cmd.Printf("  Size %s, growing %s\n", r.Market.Size, r.Market.Growth)
	cmd.Printf("  Competitors: %s\n", r.Market.Competitors)
	cmd.Println()

	cmd.Println("[Funding]")
	cmd.Printf("  Raising %s at %s\n", r.Funding.Amount, r.Funding.Stage)
	cmd.Printf("  Previous round: %s\n", r.Funding.PreviousRound)
	cmd.Println()

	cmd.Printf("[Match] %d%%\n", r.Matching.Score)
	cmd.Printf("  %s\n", r.Matching.Reasoning)

	if len(r.Highlights) > 0 {
		cmd.Println()
		cmd.Println("[Highlights]")
		for _, h := range r.Highlights {
			cmd.Printf("  - %s\n", h)
		}
	}
}
