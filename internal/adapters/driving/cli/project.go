package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/normalisers"
)

var (
	projectDescription string
	projectName        string
	projectProfile     profileFlags
	projectJSON        bool
	parseProjectID     string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage startup projects",
	Long:  `Create, inspect and improve the startup projects used for matching and outreach.`,
}

var projectCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectCreate,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects, newest first",
	Args:  cobra.NoArgs,
	RunE:  runProjectList,
}

var projectShowCmd = &cobra.Command{
	Use:   "show [project-id]",
	Short: "Show a project and its activity",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectShow,
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update [project-id]",
	Short: "Update a project's name, description or profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectUpdate,
}

var projectShortlistCmd = &cobra.Command{
	Use:   "shortlist [project-id] [investor-id...]",
	Short: "Add investors to a project's shortlist",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runProjectShortlist,
}

var projectImproveCmd = &cobra.Command{
	Use:   "improve [project-id] [kind...]",
	Short: "Apply suggested improvements to a project",
	Long: `Apply one or more canned improvements to a project.

Available kinds:
  description  - Enhance the description
  metrics      - Add key metrics
  competitive  - Highlight competitive advantages
  team         - Strengthen the team section
  vision       - Clarify the long-term vision`,
	Args: cobra.MinimumNArgs(2),
	RunE: runProjectImprove,
}

var projectParseCmd = &cobra.Command{
	Use:   "parse [file...]",
	Short: "Extract a project profile from pitch documents",
	Long: `Extract a project profile from pitch documents.

Text is read from Markdown, HTML, DOCX and plain text files; stage,
industry, raise, revenue, growth, customers, team size and founding year
found there override the defaults. Other formats are accepted but not read.`,
	Args: cobra.MinimumNArgs(1),
	RunE:  runProjectParse,
}

func init() {
	projectCreateCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "project description")
	projectProfile.register(projectCreateCmd.Flags())

	projectUpdateCmd.Flags().StringVar(&projectName, "name", "", "new project name")
	projectUpdateCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "new description")
	projectProfile.register(projectUpdateCmd.Flags())

	projectParseCmd.Flags().StringVar(&parseProjectID, "project", "", "store the extracted profile on this project")

	for _, c := range []*cobra.Command{projectCreateCmd, projectListCmd, projectShowCmd, projectParseCmd} {
		c.Flags().BoolVar(&projectJSON, "json", false, "output as JSON")
	}

	projectCmd.AddCommand(projectCreateCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectShortlistCmd)
	projectCmd.AddCommand(projectImproveCmd)
	projectCmd.AddCommand(projectParseCmd)
	rootCmd.AddCommand(projectCmd)
}

func resetProjectFlags() {
	projectDescription = ""
	projectName = ""
	projectProfile.reset()
	projectJSON = false
	parseProjectID = ""
}

func runProjectCreate(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	project, err := sess.Projects.Create(commandContext(cmd), args[0], projectDescription, projectProfile.profile())
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	if projectJSON {
		return outputJSON(cmd, project)
	}
	cmd.Printf("Created project %s (%s)\n", project.Name, project.ID)
	return nil
}

func runProjectList(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	projects, err := sess.Projects.List(commandContext(cmd))
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}
	if projectJSON {
		return outputJSON(cmd, projects)
	}
	if len(projects) == 0 {
		cmd.Println("No projects. Create one with 'pitchmatch project create', or use --demo.")
		return nil
	}

	cmd.Println("Projects:")
	cmd.Println()
	for i := range projects {
		p := &projects[i]
		cmd.Printf("  %-8s %s\n", p.ID, p.Name)
		if p.Profile != nil {
			cmd.Printf("           %s, %s, raising %s\n", p.Industry(), p.Stage(), p.Profile.FundingNeeded)
		}
		cmd.Printf("           %d shortlisted, %d sent\n", len(p.ShortlistedInvestors), len(p.SentMessages))
	}
	return nil
}

func runProjectShow(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	project, err := sess.Projects.Get(ctx, args[0])
	if err != nil {
		return describeError(fmt.Errorf("failed to get project: %w", err))
	}
	activity, err := sess.Projects.Activity(ctx, project.ID, sess.Clock.Now())
	if err != nil {
		return fmt.Errorf("failed to load activity: %w", err)
	}

	if projectJSON {
		return outputJSON(cmd, struct {
			Project  *domain.Project   `json:"project"`
			Activity []domain.Activity `json:"activity"`
		}{project, activity})
	}

	cmd.Printf("%s (%s)\n", project.Name, project.ID)
	cmd.Println(strings.Repeat("=", len(project.Name)+len(project.ID)+3))
	if project.Description != "" {
		cmd.Println(project.Description)
	}
	cmd.Println()
	printProfile(cmd, project.Profile)
	cmd.Println()
	if len(project.ShortlistedInvestors) > 0 {
		cmd.Printf("Shortlist: %s\n", strings.Join(project.ShortlistedInvestors, ", "))
	}
	if len(project.SentMessages) > 0 {
		cmd.Printf("Messages:  %s\n", strings.Join(project.SentMessages, ", "))
	}

	cmd.Println()
	cmd.Println("Activity:")
	for _, a := range activity {
		cmd.Printf("  %-12s %s\n", a.TimeAgo, a.Title)
		if a.Detail != "" {
			cmd.Printf("               %s\n", a.Detail)
		}
	}
	return nil
}

func runProjectUpdate(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	var update domain.ProjectUpdate
	if cmd.Flags().Changed("name") {
		update.Name = &projectName
	}
	if cmd.Flags().Changed("description") {
		update.Description = &projectDescription
	}
	update.Profile = projectProfile.profile()

	project, err := sess.Projects.Update(commandContext(cmd), args[0], update)
	if err != nil {
		return describeError(fmt.Errorf("failed to update project: %w", err))
	}
	cmd.Printf("Updated project %s (%s)\n", project.Name, project.ID)
	return nil
}

func runProjectShortlist(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	project, err := sess.Projects.Shortlist(commandContext(cmd), args[0], args[1:]...)
	if err != nil {
		return describeError(fmt.Errorf("failed to shortlist: %w", err))
	}
	cmd.Printf("Shortlist for %s: %s\n", project.Name, strings.Join(project.ShortlistedInvestors, ", "))
	return nil
}

func runProjectImprove(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	kinds := make([]domain.ImprovementKind, 0, len(args)-1)
	impact := 0
	for _, a := range args[1:] {
		k := domain.ImprovementKind(strings.ToLower(a))
		if !k.IsValid() {
			return fmt.Errorf("unknown improvement %q", a)
		}
		kinds = append(kinds, k)
		impact += k.Impact()
	}

	project, err := sess.Projects.ApplyImprovements(commandContext(cmd), args[0], kinds...)
	if err != nil {
		return describeError(fmt.Errorf("failed to apply improvements: %w", err))
	}

	cmd.Printf("Applied %d improvement(s) to %s (expected impact +%d%%)\n", len(kinds), project.Name, impact)
	for _, k := range kinds {
		cmd.Printf("  - %s\n", k.Description())
	}
	return nil
}

func runProjectParse(cmd *cobra.Command, args []string) error {
	files := make([]domain.UploadedFile, 0, len(args))
	for _, path := range args {
		info, err := os.Stat(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		files = append(files, domain.UploadedFile{
			Name:     filepath.Base(path),
			Size:     info.Size(),
			MIMEType: normalisers.DetectMIMEType(path),
			Content:  content,
		})
	}

	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	if !projectJSON {
		cmd.Printf("Analyzing %d document(s)...\n", len(files))
	}
	profile, err := sess.Projects.ParseDocuments(commandContext(cmd), parseProjectID, files)
	if err != nil {
		return describeError(fmt.Errorf("failed to parse documents: %w", err))
	}
	if projectJSON {
		return outputJSON(cmd, profile)
	}

	cmd.Println("Extracted profile:")
	printProfile(cmd, profile)
	if parseProjectID != "" {
		cmd.Printf("Saved to project %s\n", parseProjectID)
	}
	return nil
}
