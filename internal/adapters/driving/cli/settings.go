package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the founder name, simulated latency, catalog source
and random seed.

Use subcommands to change a single setting or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting. Recognised keys:

  founder.name           - signature on generated messages
  latency.enabled        - simulate processing delays (true/false)
  latency.scale          - delay multiplier (1.0 = nominal)
  rate_limit.per_second  - pace delayed operations (0 = off)
  rate_limit.burst       - operations allowed at once
  catalog.format         - embedded, yaml or sqlite
  catalog.path           - catalog file for yaml and sqlite
  catalog.watch          - reload a yaml catalog on change (true/false)
  seed                   - random seed (0 = random)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the founder name, catalog and latency.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	// Everything after the key is the value, so "-1" is not read as a flag.
	settingsSetCmd.Flags().SetInterspersed(false)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}

	s, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Founder]")
	name := s.FounderName
	if name == "" {
		name = domain.DefaultFounderName + " (default)"
	}
	cmd.Printf("  Name: %s\n", name)
	cmd.Println()

	cmd.Println("[Latency]")
	if s.Latency.Enabled {
		cmd.Printf("  Enabled: yes\n")
		cmd.Printf("  Scale: %s\n", strconv.FormatFloat(s.Latency.Scale, 'f', -1, 64))
	} else {
		cmd.Printf("  Enabled: no\n")
	}
	if s.RateLimit.PerSecond > 0 {
		cmd.Printf("  Rate limit: %s/s (burst %d)\n",
			strconv.FormatFloat(s.RateLimit.PerSecond, 'f', -1, 64), s.RateLimit.Burst)
	}
	cmd.Println()

	cmd.Println("[Catalog]")
	cmd.Printf("  Format: %s\n", s.Catalog.Format.Description())
	if s.Catalog.Format.RequiresPath() {
		path := s.Catalog.Path
		if path == "" {
			path = "(not set)"
		}
		cmd.Printf("  Path: %s\n", path)
	}
	if s.Catalog.Watch {
		cmd.Printf("  Watch: yes\n")
	}
	cmd.Println()

	if s.Seed != 0 {
		cmd.Printf("Seed: %d\n\n", s.Seed)
	}

	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'pitchmatch settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	if err := svc.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	svc, err := settings()
	if err != nil {
		return err
	}
	s, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("pitchmatch Settings Wizard")
	cmd.Println("==========================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	// Step 1: Founder name
	cmd.Println("Step 1: Founder Name")
	cmd.Println("--------------------")
	cmd.Printf("Enter the name that signs your messages [%s]: ", orDefault(s.FounderName, domain.DefaultFounderName))
	if name := readLine(reader); name != "" {
		s.FounderName = name
	}
	cmd.Println()

	// Step 2: Catalog
	cmd.Println("Step 2: Investor Catalog")
	cmd.Println("------------------------")
	formats := []domain.CatalogFormat{domain.CatalogFormatEmbedded, domain.CatalogFormatYAML, domain.CatalogFormatSQLite}
	choice := 1
	for i, f := range formats {
		cmd.Printf("  %d. %s\n", i+1, f.Description())
		if f == s.Catalog.Format {
			choice = i + 1
		}
	}
	cmd.Printf("\nEnter choice [%d]: ", choice)
	s.Catalog.Format = formats[parseChoice(readLine(reader), len(formats), choice)-1]
	if s.Catalog.Format.RequiresPath() {
		cmd.Printf("Enter catalog path [%s]: ", s.Catalog.Path)
		if path := readLine(reader); path != "" {
			s.Catalog.Path = path
		}
		if s.Catalog.Path == "" {
			return errors.New("a catalog path is required for this format")
		}
	}
	cmd.Println()

	// Step 3: Latency
	cmd.Println("Step 3: Simulated Latency")
	cmd.Println("-------------------------")
	def := "y"
	if !s.Latency.Enabled {
		def = "n"
	}
	cmd.Printf("Simulate processing delays? (y/n) [%s]: ", def)
	switch strings.ToLower(readLine(reader)) {
	case "y", "yes":
		s.Latency.Enabled = true
	case "n", "no":
		s.Latency.Enabled = false
	}
	cmd.Println()

	if err := svc.Save(s); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := svc.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}
	return nil
}

// Helper functions.

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
