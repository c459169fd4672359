// Package mcp exposes the compiler as Model Context Protocol tools.
package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/mitchellh/mapstructure"

	"github.com/aretw0/najia/pkg/domain"
	"github.com/aretw0/najia/pkg/hexagram"
)

const (
	tableURI    = "najia://hexagrams"
	entryPrefix = tableURI + "/"
)

// ErrUnknownHexagram is returned when a lookup matches neither a pattern nor a name.
var ErrUnknownHexagram = errors.New("unknown hexagram")

// Engine defines what the MCP server needs from the najia engine.
type Engine interface {
	Compile(ctx context.Context, req domain.Request) (domain.Hexagram, error)
	Describe(p domain.Pattern) (hexagram.Entry, bool)
	Lookup(name string) (hexagram.Entry, bool)
	Table() []hexagram.Entry
}

// CastArgs are the arguments of the cast_hexagram tool, apart from lines.
type CastArgs struct {
	Date       string `mapstructure:"date"`
	Month      string `mapstructure:"month"`
	Day        string `mapstructure:"day"`
	Commentary bool   `mapstructure:"commentary"`
	Title      string `mapstructure:"title"`
	Gender     string `mapstructure:"gender"`
}

// LookupArgs are the arguments of the lookup_hexagram tool.
type LookupArgs struct {
	Key string `mapstructure:"key"`
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    Engine
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server instance.
func NewServer(engine Engine, version string) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("najia-mcp", strings.TrimSpace(version)),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE serves the MCP endpoints over SSE until ctx is done.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(fmt.Sprintf("http://localhost:%d", port)))

	mux := http.NewServeMux()
	mux.Handle("/sse", sseServer.SSEHandler())
	mux.Handle("/message", sseServer.MessageHandler())
	httpServer := &http.Server{Addr: addr, Handler: mux}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func (s *Server) registerTools() {
	castTool := mcp.NewTool("cast_hexagram",
		mcp.WithDescription("Compile six line values (bottom to top, 1-4 or 6-9) into a Najia hexagram."),
		mcp.WithString("lines", mcp.Required(), mcp.Description("Six line values such as 221242 or 2,2,1,2,4,2")),
		mcp.WithString("date", mcp.Description("Solar date, 2006-01-02 or 2006-01-02 15:04")),
		mcp.WithString("month", mcp.Description("Month branch or lunar month name, used without a date")),
		mcp.WithString("day", mcp.Description("Day pillar such as 甲子, used without a date")),
		mcp.WithBoolean("commentary", mcp.Description("Attach the commentary text when available")),
		mcp.WithString("title", mcp.Description("Free-form title echoed in the result")),
		mcp.WithString("gender", mcp.Description("Gender echoed in the result")),
	)
	s.mcpServer.AddTool(castTool, mcp.NewStructuredToolHandler(s.handleCast))

	lookupTool := mcp.NewTool("lookup_hexagram",
		mcp.WithDescription("Describe one of the 64 hexagrams by pattern (bottom line first) or name."),
		mcp.WithString("key", mcp.Required(), mcp.Description("Pattern such as 001000 or a name such as 地山谦")),
	)
	s.mcpServer.AddTool(lookupTool, mcp.NewStructuredToolHandler(s.handleLookup))
}

func (s *Server) handleCast(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (domain.Hexagram, error) {
	lines, err := decodeLines(args["lines"])
	if err != nil {
		return domain.Hexagram{}, err
	}
	var ca CastArgs
	if err := decodeArgs(args, &ca); err != nil {
		return domain.Hexagram{}, err
	}

	h, err := s.engine.Compile(ctx, domain.Request{
		Lines:      lines,
		Date:       ca.Date,
		Month:      ca.Month,
		Day:        ca.Day,
		Commentary: ca.Commentary,
		Title:      ca.Title,
		Gender:     ca.Gender,
	})
	if err != nil {
		slog.Warn("MCP cast failed", "error", err)
		return domain.Hexagram{}, fmt.Errorf("cast failed: %w", err)
	}
	return h, nil
}

func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (hexagram.Entry, error) {
	var la LookupArgs
	if err := decodeArgs(args, &la); err != nil {
		return hexagram.Entry{}, err
	}
	return s.lookup(la.Key)
}

func (s *Server) lookup(key string) (hexagram.Entry, error) {
	key = strings.TrimSpace(key)
	if e, ok := s.engine.Describe(domain.Pattern(key)); ok {
		return e, nil
	}
	if e, ok := s.engine.Lookup(key); ok {
		return e, nil
	}
	return hexagram.Entry{}, fmt.Errorf("%w: %q", ErrUnknownHexagram, key)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(tableURI, "Hexagram Table",
		mcp.WithResourceDescription("The 64 hexagrams in palace order."),
		mcp.WithMIMEType("application/json"),
	), s.readTable)

	s.mcpServer.AddResourceTemplate(mcp.NewResourceTemplate(entryPrefix+"{key}", "Hexagram",
		mcp.WithTemplateDescription("One hexagram by pattern or name."),
		mcp.WithTemplateMIMEType("application/json"),
	), s.readEntry)
}

func (s *Server) readTable(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonContents(tableURI, s.engine.Table())
}

func (s *Server) readEntry(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := request.Params.URI
	key, err := url.PathUnescape(strings.TrimPrefix(uri, entryPrefix))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnknownHexagram, err)
	}
	e, err := s.lookup(key)
	if err != nil {
		return nil, err
	}
	return jsonContents(uri, e)
}

func jsonContents(uri string, v any) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// decodeArgs maps loosely typed tool arguments onto out.
func decodeArgs(args map[string]interface{}, out interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// decodeLines accepts either a digit string or a list of numbers.
func decodeLines(raw interface{}) ([]int, error) {
	switch v := raw.(type) {
	case nil:
		return nil, fmt.Errorf("%w: lines are required", domain.ErrInvalidLines)
	case string:
		return domain.ParseLines(v)
	default:
		var lines []int
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{WeaklyTypedInput: true, Result: &lines})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(v); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidLines, err)
		}
		return lines, nil
	}
}
