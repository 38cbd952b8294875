package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerResources(srv *server.MCPServer, svc *Service) {
	registerNotesResource(srv, svc)
	registerICSResource(srv, svc)
	registerMonthTemplate(srv, svc)
}

func registerNotesResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"flipcal://notes",
		"Notes",
		mcp.WithResourceDescription("Every saved day note in date order."),
		mcp.WithMIMEType("application/json"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		all, err := svc.ListNotes("")
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, map[string]any{
			"notes": all,
			"count": len(all),
		})
	})
}

func registerICSResource(srv *server.MCPServer, svc *Service) {
	resource := mcp.NewResource(
		"flipcal://notes.ics",
		"Notes calendar",
		mcp.WithResourceDescription("Every saved note as all-day iCalendar events."),
		mcp.WithMIMEType("text/calendar"),
	)

	srv.AddResource(resource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		ics, err := svc.ICS()
		if err != nil {
			return nil, err
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "text/calendar",
				Text:     ics,
			},
		}, nil
	})
}

func registerMonthTemplate(srv *server.MCPServer, svc *Service) {
	template := mcp.NewResourceTemplate(
		"flipcal://months/{month}",
		"Month grid",
		mcp.WithTemplateDescription("The six week grid of a month (YYYY-MM) with its notes."),
		mcp.WithTemplateMIMEType("application/json"),
	)

	srv.AddResourceTemplate(template, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		month := monthArgument(request.Params.Arguments["month"])
		if month == "" {
			return nil, fmt.Errorf("month is required")
		}
		grid, err := svc.MonthGrid(month)
		if err != nil {
			return nil, err
		}
		return encodeResourceJSON(request.Params.URI, grid)
	})
}

// monthArgument accepts the template variable as a string or as the
// single element list some clients send.
func monthArgument(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		if len(t) > 0 {
			return t[0]
		}
	}
	return ""
}

func encodeResourceJSON(uri string, payload any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
