package main

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelRouter(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(&levelRouter{
		stdout: slog.NewTextHandler(&out, nil),
		stderr: slog.NewTextHandler(&errOut, nil),
	})

	logger.Info("catalogs loaded")
	logger.Warn("slow request")
	logger.Error("store failed")
	logger.Debug("dropped")

	if !strings.Contains(out.String(), "catalogs loaded") || !strings.Contains(out.String(), "slow request") {
		t.Errorf("stdout missing info/warn lines: %q", out.String())
	}
	if strings.Contains(out.String(), "store failed") {
		t.Error("error line leaked to stdout")
	}
	if !strings.Contains(errOut.String(), "store failed") {
		t.Errorf("stderr missing error line: %q", errOut.String())
	}
	if strings.Contains(out.String()+errOut.String(), "dropped") {
		t.Error("debug line should be filtered")
	}
}

func TestLevelRouterWithAttrs(t *testing.T) {
	var out, errOut bytes.Buffer
	logger := slog.New(&levelRouter{
		stdout: slog.NewTextHandler(&out, nil),
		stderr: slog.NewTextHandler(&errOut, nil),
	}).With("component", "favorites")

	logger.Error("boom")
	if !strings.Contains(errOut.String(), "component=favorites") {
		t.Errorf("expected attrs on stderr handler: %q", errOut.String())
	}
}
