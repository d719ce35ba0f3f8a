package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/services"
)

var (
	matchProjectID string
	matchProfile   profileFlags
	matchLimit     int
	matchJSON      bool
)

var matchCmd = &cobra.Command{
	Use:   "match [preference]",
	Short: "Rank investors for a project",
	Long: `Scores every investor in the catalog against a startup profile and
lists those above the cutoff, best first.

The profile comes from an existing project (--project) or from the
profile flags. The optional preference text is matched against each
investor's focus areas.

Examples:
  pitchmatch match --industry FinTech --stage "Series A" --funding '$5M' "B2B SaaS with AI/ML"
  pitchmatch --demo match --project proj1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&matchProjectID, "project", "p", "", "match for an existing project")
	matchProfile.register(matchCmd.Flags())
	matchCmd.Flags().IntVarP(&matchLimit, "limit", "n", 0, "maximum number of results (0 = all)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(matchCmd)
}

func resetMatchFlags() {
	matchProjectID = ""
	matchProfile.reset()
	matchLimit = 0
	matchJSON = false
}

func runMatch(cmd *cobra.Command, args []string) error {
	req := domain.MatchRequest{
		ProjectID: matchProjectID,
		Profile:   matchProfile.profile(),
		Limit:     matchLimit,
	}
	if len(args) > 0 {
		req.Preference = args[0]
	}
	if req.ProjectID == "" && req.Profile == nil {
		return fmt.Errorf("set --project or at least one profile flag (--industry, --stage, --funding)")
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	results, err := sess.Matches.Match(commandContext(cmd), req)
	if err != nil {
		return describeError(fmt.Errorf("match failed: %w", err))
	}

	if matchJSON {
		return outputJSON(cmd, results)
	}
	return outputMatchTable(cmd, req.Preference, results)
}

func outputMatchTable(cmd *cobra.Command, preference string, results []domain.MatchResult) error {
	if len(results) == 0 {
		cmd.Println("No matching investors found.")
		return nil
	}

	if kw := services.ExtractKeywords(preference); len(kw) > 0 {
		cmd.Printf("Keywords: %s\n\n", strings.Join(kw, ", "))
	}

	cmd.Println("Matches:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		// Format: [N] Name, Firm (Score%)
		cmd.Printf("  [%d] %s, %s (%d%%)  id=%s\n", i+1, r.Investor.Name, r.Investor.Firm, r.Score, r.Investor.ID)
		cmd.Printf("      %s | %s | %s\n",
			strings.Join(r.Investor.Industries, ", "),
			strings.Join(r.Investor.Stages, ", "),
			r.Investor.CheckSize.String())
		for _, reason := range r.Reasons {
			cmd.Printf("      + %s\n", reason)
		}
		cmd.Printf("      %s\n", r.Insight)
		cmd.Println()
	}
	return nil
}
