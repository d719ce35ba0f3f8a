package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/session"
)

var (
	messageText    string
	messageFounder string
	messageJSON    bool
	sendNoReport   bool
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Draft, refine and send outreach messages",
}

var messageGenerateCmd = &cobra.Command{
	Use:   "generate [project-id] [investor-id]",
	Short: "Draft an outreach message",
	Args:  cobra.ExactArgs(2),
	RunE:  runMessageGenerate,
}

var messageRefineCmd = &cobra.Command{
	Use:   "refine [project-id] [investor-id]",
	Short: "Redraft a message, keeping its signature",
	Long: `Redraft a message for an investor. The draft is read from --text,
or from standard input when --text is not set.`,
	Args: cobra.ExactArgs(2),
	RunE: runMessageRefine,
}

var messageAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a draft and suggest improvements",
	Long:  `Score a draft read from --text, or from standard input when --text is not set.`,
	Args:  cobra.NoArgs,
	RunE:  runMessageAnalyze,
}

var messageSendCmd = &cobra.Command{
	Use:   "send [project-id] [investor-id]",
	Short: "Send a message with an investor report attached",
	Long: `Send a message from a project to an investor. Without --text a message
is drafted first. A report is generated and attached unless --no-report is set.`,
	Args: cobra.ExactArgs(2),
	RunE: runMessageSend,
}

func init() {
	messageGenerateCmd.Flags().StringVar(&messageFounder, "founder", "", "founder name for the signature")
	messageRefineCmd.Flags().StringVar(&messageText, "text", "", "message to refine")
	messageAnalyzeCmd.Flags().StringVar(&messageText, "text", "", "message to analyze")
	messageAnalyzeCmd.Flags().BoolVar(&messageJSON, "json", false, "output analysis as JSON")
	messageSendCmd.Flags().StringVar(&messageText, "text", "", "message body (default: generated)")
	messageSendCmd.Flags().StringVar(&messageFounder, "founder", "", "founder name for a generated message")
	messageSendCmd.Flags().BoolVar(&sendNoReport, "no-report", false, "do not attach an investor report")
	messageSendCmd.Flags().BoolVar(&messageJSON, "json", false, "output the sent message as JSON")

	messageCmd.AddCommand(messageGenerateCmd)
	messageCmd.AddCommand(messageRefineCmd)
	messageCmd.AddCommand(messageAnalyzeCmd)
	messageCmd.AddCommand(messageSendCmd)
	rootCmd.AddCommand(messageCmd)
}

func resetMessageFlags() {
	messageText = ""
	messageFounder = ""
	messageJSON = false
	sendNoReport = false
}

// target resolves the project and investor named on the command line.
func target(ctx context.Context, sess *session.Session, projectID, investorID string) (*domain.Project, *domain.Investor, error) {
	project, err := sess.Projects.Get(ctx, projectID)
	if err != nil {
		return nil, nil, describeError(fmt.Errorf("failed to get project: %w", err))
	}
	inv, err := sess.Catalog.Get(ctx, investorID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get investor: %w", err)
	}
	return project, inv, nil
}

func founderFor(sess *session.Session) string {
	if messageFounder != "" {
		return messageFounder
	}
	return sess.FounderName()
}

// draftText returns --text, or standard input when the flag is empty.
func draftText(cmd *cobra.Command) (string, error) {
	if messageText != "" {
		return messageText, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read message: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", errors.New("no message given (use --text or standard input)")
	}
	return text, nil
}

func runMessageGenerate(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	project, inv, err := target(commandContext(cmd), sess, args[0], args[1])
	if err != nil {
		return err
	}

	cmd.Println(sess.Messages.Generate(*inv, *project, founderFor(sess)))
	return nil
}

func runMessageRefine(cmd *cobra.Command, args []string) error {
	draft, err := draftText(cmd)
	if err != nil {
		return err
	}
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	project, inv, err := target(ctx, sess, args[0], args[1])
	if err != nil {
		return err
	}

	refined, err := sess.Messages.Refine(ctx, draft, *inv, *project)
	if err != nil {
		return fmt.Errorf("failed to refine message: %w", err)
	}
	cmd.Println(refined)
	return nil
}

func runMessageAnalyze(cmd *cobra.Command, _ []string) error {
	draft, err := draftText(cmd)
	if err != nil {
		return err
	}
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	analysis := sess.Messages.Analyze(draft)
	if messageJSON {
		return outputJSON(cmd, analysis)
	}

	cmd.Printf("Score: %d/100\n", analysis.Score)
	if len(analysis.Strengths) > 0 {
		cmd.Println()
		cmd.Println("Strengths:")
		for _, s := range analysis.Strengths {
			cmd.Printf("  + %s\n", s)
		}
	}
	if len(analysis.Suggestions) > 0 {
		cmd.Println()
		cmd.Println("Suggestions:")
		for _, s := range analysis.Suggestions {
			cmd.Printf("  - %s\n", s)
		}
	}
	return nil
}

func runMessageSend(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	project, inv, err := target(ctx, sess, args[0], args[1])
	if err != nil {
		return err
	}

	body := messageText
	if body == "" {
		body = sess.Messages.Generate(*inv, *project, founderFor(sess))
	}

	var report *domain.Report
	if !sendNoReport {
		report, err = sess.Reports.Generate(ctx, *project, *inv)
		if err != nil {
			return fmt.Errorf("failed to generate report: %w", err)
		}
	}

	msg, err := sess.Outreach.Send(ctx, project.ID, inv.ID, body, report)
	if err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}
	if messageJSON {
		return outputJSON(cmd, msg)
	}

	cmd.Printf("Sent message %s to %s (%s)\n", msg.ID, inv.Name, inv.Firm)
	if report != nil {
		cmd.Printf("Report attached: match score %d%%\n", report.Matching.Score)
	}
	cmd.Println()
	cmd.Println(indent(msg.Body, "  "))
	return nil
}
