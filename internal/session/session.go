// Package session assembles one founder session: the in-memory stores,
// the services that operate on them, and the investor catalog.
//
// A session is the unit of state. Each CLI invocation builds one, and the
// MCP server and TUI each hold one for their lifetime.
package session

import (
	"context"
	"fmt"

	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/catalog"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/clock"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/random"
	"github.com/custodia-labs/pitchmatch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/pitchmatch/internal/core/domain"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driven"
	"github.com/custodia-labs/pitchmatch/internal/core/ports/driving"
	"github.com/custodia-labs/pitchmatch/internal/core/services"
	"github.com/custodia-labs/pitchmatch/internal/logger"
	"github.com/custodia-labs/pitchmatch/internal/normalisers"
)

// Options override the ports a session would otherwise build from settings.
type Options struct {
	// Catalog replaces the catalog selected by Settings.Catalog.
	Catalog driven.InvestorCatalog

	// Clock defaults to the system clock.
	Clock driven.Clock

	// Delayer defaults to clock.FromSettings.
	Delayer driven.Delayer

	// Random defaults to a source seeded from Settings.Seed.
	Random driven.RandomSource
}

// Session holds the state and services of one founder session.
type Session struct {
	Settings domain.AppSettings

	Catalog  driving.CatalogService
	Matches  driving.MatchService
	Messages driving.MessageService
	Reports  driving.ReportService
	Projects driving.ProjectService
	Outreach driving.OutreachService

	Clock driven.Clock

	projects *memory.ProjectStore
	messages *memory.MessageStore
	replies  *memory.ReplyStore
	meetings *memory.MeetingStore
	searches *memory.SearchStore

	handle *catalog.Handle
}

// New builds a session from settings. The catalog is opened here and
// released by Close.
func New(ctx context.Context, settings domain.AppSettings, opts Options) (*Session, error) {
	logger.Section("Session")

	investors := opts.Catalog
	var handle *catalog.Handle
	if investors == nil {
		h, err := catalog.Open(ctx, settings.Catalog)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		handle = h
		investors = h
	}

	clk := opts.Clock
	if clk == nil {
		clk = clock.System{}
	}
	delayer := opts.Delayer
	if delayer == nil {
		delayer = clock.FromSettings(settings)
	}
	rnd := opts.Random
	if rnd == nil {
		rnd = random.New(settings.Seed)
	}

	s := &Session{
		Settings: settings,
		Clock:    clk,
		projects: memory.NewProjectStore(),
		messages: memory.NewMessageStore(),
		replies:  memory.NewReplyStore(),
		meetings: memory.NewMeetingStore(),
		searches: memory.NewSearchStore(),
		handle:   handle,
	}

	scorer := services.NewScorer(rnd)

	matches := services.NewMatchService(investors, s.projects, scorer, delayer)
	matches.SetSearchStore(s.searches, clk)

	reports := services.NewReportService(rnd, delayer, scorer)
	if settings.FounderName != "" {
		reports.SetFounderName(settings.FounderName)
	}

	projects := services.NewProjectService(s.projects, investors, clk, delayer)
	projects.SetOutreachStores(s.messages, s.replies, s.meetings)
	projects.SetNormalisers(normalisers.NewDefaultRegistry())

	s.Catalog = services.NewCatalogService(investors)
	s.Matches = matches
	s.Messages = services.NewMessageService(rnd, delayer)
	s.Reports = reports
	s.Projects = projects
	s.Outreach = services.NewOutreachService(services.OutreachStores{
		Projects: s.projects,
		Messages: s.messages,
		Replies:  s.replies,
		Meetings: s.meetings,
	}, investors, clk, rnd)

	logger.Debug("session ready (catalog=%s, latency=%t, seed=%d)",
		settings.Catalog.Format, settings.Latency.Enabled, settings.Seed)
	return s, nil
}

// FounderName returns the name used to sign generated messages.
func (s *Session) FounderName() string {
	if s.Settings.FounderName != "" {
		return s.Settings.FounderName
	}
	return domain.DefaultFounderName
}

// Close releases the catalog opened by New.
func (s *Session) Close() error {
	if s.handle == nil {
		return nil
	}
	err := s.handle.Close()
	s.handle = nil
	return err
}
