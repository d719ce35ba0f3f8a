package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/pitchmatch/internal/core/domain"
)

var (
	inboxProject  string
	inboxInvestor string
	inboxUnread   bool
	inboxJSON     bool
	replyText     string
	replyAs       string
	meetingReq    domain.MeetingRequest
	meetingType   string
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Track sent messages, replies and meetings",
	Long: `Work with the messages sent in this session. The investor side of the
conversation (replies and meetings) is simulated.`,
}

var inboxListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sent messages",
	Args:  cobra.NoArgs,
	RunE:  runInboxList,
}

var inboxReplyCmd = &cobra.Command{
	Use:   "reply [message-id]",
	Short: "Record an investor reply to a message",
	Long: `Record the investor's reply to a message. Without --text a reply is
drafted from the message and its report.`,
	Args: cobra.ExactArgs(1),
	RunE: runInboxReply,
}

var inboxMeetCmd = &cobra.Command{
	Use:   "meet [message-id]",
	Short: "Schedule a meeting in response to a message",
	Long: `Schedule a meeting with the investor a message was sent to. Without
--date and --time the first suggested slot is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runInboxMeet,
}

var inboxSlotsCmd = &cobra.Command{
	Use:   "slots",
	Short: "Suggest meeting times",
	Args:  cobra.NoArgs,
	RunE:  runInboxSlots,
}

func init() {
	inboxListCmd.Flags().StringVar(&inboxProject, "project", "", "only messages from this project")
	inboxListCmd.Flags().StringVar(&inboxInvestor, "investor", "", "only messages to this investor")
	inboxListCmd.Flags().BoolVar(&inboxUnread, "unread", false, "only unread messages")
	inboxListCmd.Flags().BoolVar(&inboxJSON, "json", false, "output as JSON")

	inboxReplyCmd.Flags().StringVar(&replyText, "text", "", "reply text (default: drafted)")
	inboxReplyCmd.Flags().StringVar(&replyAs, "investor", "", "investor replying (default: the addressee)")

	inboxMeetCmd.Flags().StringVar(&meetingReq.Date, "date", "", "meeting date (YYYY-MM-DD)")
	inboxMeetCmd.Flags().StringVar(&meetingReq.Time, "time", "", "meeting time (HH:MM)")
	inboxMeetCmd.Flags().IntVar(&meetingReq.DurationMinutes, "duration", domain.DefaultMeetingMinutes, "duration in minutes")
	inboxMeetCmd.Flags().StringVar(&meetingType, "type", string(domain.MeetingTypeVideo), "video, phone or in-person")
	inboxMeetCmd.Flags().StringVar(&meetingReq.Location, "location", "", "meeting location or link")
	inboxMeetCmd.Flags().StringVar(&meetingReq.Notes, "notes", "", "notes for the founder")
	inboxMeetCmd.Flags().StringVar(&replyAs, "investor", "", "investor scheduling (default: the addressee)")

	inboxSlotsCmd.Flags().BoolVar(&inboxJSON, "json", false, "output as JSON")

	inboxCmd.AddCommand(inboxListCmd)
	inboxCmd.AddCommand(inboxReplyCmd)
	inboxCmd.AddCommand(inboxMeetCmd)
	inboxCmd.AddCommand(inboxSlotsCmd)
	rootCmd.AddCommand(inboxCmd)
}

func resetInboxFlags() {
	inboxProject = ""
	inboxInvestor = ""
	inboxUnread = false
	inboxJSON = false
	replyText = ""
	replyAs = ""
	meetingReq = domain.MeetingRequest{DurationMinutes: domain.DefaultMeetingMinutes}
	meetingType = string(domain.MeetingTypeVideo)
}

func runInboxList(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	messages, err := sess.Outreach.ListMessages(commandContext(cmd), domain.MessageFilter{
		ProjectID:  inboxProject,
		InvestorID: inboxInvestor,
		UnreadOnly: inboxUnread,
	})
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}
	if inboxJSON {
		return outputJSON(cmd, messages)
	}
	if len(messages) == 0 {
		cmd.Println("No messages.")
		return nil
	}

	now := sess.Clock.Now()
	for i := range messages {
		m := &messages[i]
		cmd.Printf("  %-8s %s -> %s  %s%s\n", m.ID, m.ProjectID, m.InvestorID,
			domain.TimeAgo(m.SentAt, now), messageFlags(m))
	}
	return nil
}

func messageFlags(m *domain.OutreachMessage) string {
	var s string
	if m.Read {
		s += " [read]"
	}
	if m.Replied {
		s += " [replied]"
	}
	if m.HasMeeting {
		s += " [meeting]"
	}
	return s
}

func runInboxReply(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)

	text := replyText
	if text == "" {
		text, err = sess.Outreach.SuggestReply(ctx, args[0])
		if err != nil {
			return describeError(fmt.Errorf("failed to draft reply: %w", err))
		}
	}

	reply, err := sess.Outreach.Reply(ctx, args[0], replyAs, text)
	if err != nil {
		return describeError(fmt.Errorf("failed to record reply: %w", err))
	}
	cmd.Printf("Reply %s from %s recorded on %s\n", reply.ID, reply.InvestorID, reply.MessageID)
	cmd.Println()
	cmd.Println(indent(reply.Text, "  "))
	return nil
}

func runInboxMeet(cmd *cobra.Command, args []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	req := meetingReq
	req.Type = domain.MeetingType(meetingType)
	if req.Date == "" && req.Time == "" {
		slot := sess.Outreach.SuggestSlots(sess.Clock.Now())[0]
		req.Date, req.Time = slot.Date, slot.Time
	}

	meeting, err := sess.Outreach.ScheduleMeeting(commandContext(cmd), args[0], replyAs, req)
	if err != nil {
		return describeError(fmt.Errorf("failed to schedule meeting: %w", err))
	}
	cmd.Printf("Meeting %s scheduled with %s: %s %s, %d min %s\n", meeting.ID, meeting.InvestorID,
		meeting.Date, meeting.Time, meeting.DurationMinutes, meeting.Type)
	return nil
}

func runInboxSlots(cmd *cobra.Command, _ []string) error {
	sess, err := openSession(cmd)
	if err != nil {
		return err
	}

	slots := sess.Outreach.SuggestSlots(sess.Clock.Now())
	if inboxJSON {
		return outputJSON(cmd, slots)
	}
	for _, s := range slots {
		cmd.Printf("  %-24s %s %s\n", s.Label, s.Date, s.Time)
	}
	return nil
}
