// Package mcp exposes the catalogs and the favorites set as MCP tools.
package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erazemk/kultur/internal/app"
)

type Server struct {
	app *app.App
	mcp *sdk.Server
}

func NewServer(a *app.App, version string) *Server {
	s := &Server{
		app: a,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "kultur",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

// Run serves tool calls on transport until ctx is done or the peer disconnects.
func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
