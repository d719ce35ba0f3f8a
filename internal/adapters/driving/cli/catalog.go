package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/catalog"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/catalog/yamlcatalog"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

var (
	catalogJSON   bool
	catalogOutput string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse and manage the investor catalog",
	Long: `Browse the investor catalog and move it between formats.

The catalog source is set with 'pitchmatch settings set catalog.format'
(embedded, yaml or sqlite) and 'catalog.path'.`,
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List investors",
	Args:  cobra.NoArgs,
	RunE:  runCatalogList,
}

var catalogShowCmd = &cobra.Command{
	Use:   "show [investor-id]",
	Short: "Show an investor",
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogShow,
}

var catalogImportCmd = &cobra.Command{
	Use:   "import [database]",
	Short: "Copy the current catalog into a SQLite database",
	Long: `Copy every investor of the current catalog into a SQLite database,
replacing its contents. Point catalog.format and catalog.path at the
database to use it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogImport,
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current catalog as YAML",
	Args:  cobra.NoArgs,
	RunE:  runCatalogExport,
}

func init() {
	catalogListCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogShowCmd.Flags().BoolVar(&catalogJSON, "json", false, "output as JSON")
	catalogExportCmd.Flags().StringVarP(&catalogOutput, "output", "o", "", "write to file instead of standard output")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}

func resetCatalogFlags() {
	catalogJSON = false
	catalogOutput = ""
}

func runCatalogList(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	investors, err := sess.Catalog.List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list investors: %w", err)
	}
	if catalogJSON {
		return outputJSON(cmd, investors)
	}
	if len(investors) == 0 {
		cmd.Println("Catalog is empty.")
		return nil
	}

	for i := range investors {
		inv := &investors[i]
		cmd.Printf("  %-6s %-20s %-22s %s\n", inv.ID, inv.Name, inv.Firm, inv.CheckSize.String())
	}
	return nil
}

func runCatalogShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	inv, err := sess.Catalog.Get(commandContext(cmd), args[0])
	if err != nil {
		return fmt.Errorf("failed to get investor: %w", err)
	}
	if catalogJSON {
		return outputJSON(cmd, inv)
	}
	printInvestor(cmd, inv)
	return nil
}

func printInvestor(cmd *cobra.Command, inv *domain.Investor) {
	cmd.Printf("%s, %s at %s (%s)\n", inv.Name, inv.Role, inv.Firm, inv.ID)
	cmd.Printf("  Location:   %s\n", inv.Location)
	cmd.Printf("  Industries: %s\n", strings.Join(inv.Industries, ", "))
	cmd.Printf("  Stages:     %s\n", strings.Join(inv.Stages, ", "))
	cmd.Printf("  Check size: %s\n", inv.CheckSize.String())
	cmd.Printf("  Focus:      %s\n", strings.Join(inv.FocusAreas, ", "))
	cmd.Printf("  Portfolio:  %s\n", strings.Join(inv.Portfolio, ", "))
}

func runCatalogImport(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	n, err := catalog.Import(commandContext(cmd), sess.Catalog, args[0])
	if err != nil {
		return fmt.Errorf("failed to import catalog: %w", err)
	}
	cmd.Printf("Imported %d investors into %s\n", n, args[0])
	return nil
}

func runCatalogExport(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	investors, err := sess.Catalog.List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list investors: %w", err)
	}
	data, err := yamlcatalog.Marshal(investors)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}

	if catalogOutput == "" {
		cmd.Print(string(data))
		return nil
	}
	if err := os.WriteFile(catalogOutput, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", catalogOutput, err)
	}
	cmd.Printf("Wrote %d investors to %s\n", len(investors), catalogOutput)
	return nil
}
