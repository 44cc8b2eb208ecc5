// Package mcpserver provides an MCP (Model Context Protocol) server
// that exposes the planner's tools for LLM integration via stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/planner"
)

// Server wraps the MCP server with planner tools.
type Server struct {
	mcp       *server.MCPServer
	store     *planner.Store
	projector planner.Projector
	exporter  planner.Exporter
}

// New creates a new MCP server with all planner tools registered.
func New(store *planner.Store, projector planner.Projector, exporter planner.Exporter) *Server {
	s := &Server{store: store, projector: projector, exporter: exporter}

	s.mcp = server.NewMCPServer(
		"Dagaz",
		"1.0.0",
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
	)

	s.mcp.AddTool(mcp.NewTool("list_events",
		mcp.WithDescription("List scheduled events, optionally restricted to a single date."),
		mcp.WithString("date", mcp.Description("Optional date filter (YYYY-MM-DD)")),
	), s.listEvents)

	s.mcp.AddTool(mcp.NewTool("add_event",
		mcp.WithDescription("Schedule a new event. Fields MUST follow the event format: "+
			"read it first via the get_event_format tool or the dagaz://event-format resource."),
		mcp.WithString("title", mcp.Required(), mcp.Description("Event title")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Category label, e.g. Work or Personal")),
		mcp.WithString("date", mcp.Required(), mcp.Description("Calendar date (YYYY-MM-DD)")),
		mcp.WithString("time", mcp.Required(), mcp.Description("Local time of day (HH:MM, 24-hour, zero-padded)")),
	), s.addEvent)

	s.mcp.AddTool(mcp.NewTool("delete_event",
		mcp.WithDescription("Delete an event by its id."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Event id as returned by list_events")),
	), s.deleteEvent)

	s.mcp.AddTool(mcp.NewTool("today_agenda",
		mcp.WithDescription("Show today's schedule as plain text, earliest first."),
	), s.todayAgenda)

	s.mcp.AddTool(mcp.NewTool("export_invite",
		mcp.WithDescription("Render an event as portable iCalendar invite text."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Event id")),
	), s.exportInvite)

	s.mcp.AddTool(mcp.NewTool("share_event",
		mcp.WithDescription("Build an email draft (subject, body, mailto link) for an event. "+
			"Nothing is sent; the draft is handed back for the caller to deliver."),
		mcp.WithString("id", mcp.Required(), mcp.Description("Event id")),
		mcp.WithString("to", mcp.Description("Recipient email; defaults to the stored work email")),
	), s.shareEvent)

	s.mcp.AddTool(mcp.NewTool("get_event_format",
		mcp.WithDescription("Returns the canonical event format contract. "+
			"Call this before adding events to ensure correct field values."),
	), s.getEventFormat)

	// Resource: event format contract.
	s.mcp.AddResource(
		mcp.NewResource("dagaz://event-format", "Event Format Contract",
			mcp.WithResourceDescription("Canonical event field format that all events must follow."),
			mcp.WithMIMEType("text/markdown"),
		),
		s.readEventFormatResource,
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

func (s *Server) listEvents(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.store.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if date, err := req.RequireString("date"); err == nil && date != "" {
		day, perr := time.ParseInLocation(planner.DateLayout, date, time.Local)
		if perr != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid date %q, want YYYY-MM-DD", date)), nil
		}
		list = planner.EventsOnDate(list, day)
	}
	out, _ := json.MarshalIndent(list, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) addEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var ev planner.Event
	var err error
	if ev.Title, err = req.RequireString("title"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ev.Type, err = req.RequireString("type"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ev.Date, err = req.RequireString("date"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if ev.Time, err = req.RequireString("time"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	list, err := s.store.Add(ev)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	created := list[len(list)-1]
	out, _ := json.MarshalIndent(created, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) deleteEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := s.store.DeleteByID(id); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted: %s", id)), nil
}

func (s *Server) todayAgenda(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.store.Load()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dash := s.projector.Today(list, time.Now())
	if len(dash.Events) == 0 {
		return mcp.NewToolResultText("nothing scheduled for today"), nil
	}
	out := dash.Date + "\n"
	for _, ev := range dash.Events {
		out += fmt.Sprintf("[%s] %s (%s)\n", ev.Time, ev.Title, ev.Type)
	}
	return mcp.NewToolResultText(out), nil
}

func (s *Server) exportInvite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ev, err := s.store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}
	invite, err := s.exporter.InviteText(ev)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(invite), nil
}

func (s *Server) shareEvent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ev, err := s.store.Get(id)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("not found: %s", id)), nil
	}

	recipient := ""
	if to, err := req.RequireString("to"); err == nil {
		recipient = to
	}
	if recipient == "" {
		if recipient, err = s.store.WorkEmail(); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}

	draft, err := s.exporter.ShareDraft(ev, recipient)
	if err != nil {
		if errors.Is(err, apperr.ErrMissingRecipient) {
			return mcp.NewToolResultError("no recipient: pass 'to' or set a work email first"), nil
		}
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(draft, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}

func (s *Server) getEventFormat(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(EventFormatContract), nil
}

func (s *Server) readEventFormatResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "dagaz://event-format",
			MIMEType: "text/markdown",
			Text:     EventFormatContract,
		},
	}, nil
}
