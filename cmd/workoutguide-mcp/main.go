package main

import (
	"context"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	workoutguide "github.com/claude/workoutguide"
	"github.com/claude/workoutguide/internal/catalog"
	wgmcp "github.com/claude/workoutguide/internal/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	remoteURL := flag.String("url", "", "WorkoutGuide server URL; when set the catalog is read over its REST API")
	source := flag.String("catalog", "", "catalog source for local mode: URL or file path (embedded when empty)")
	dev := flag.Bool("dev", false, "keep test-N workouts in the local catalog")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("workoutguide-mcp", Version)
		return
	}

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	var ds wgmcp.DataSource
	if *remoteURL != "" {
		ds = wgmcp.NewHTTPClient(*remoteURL)
		log.Info("remote mode", "url", *remoteURL)
	} else {
		webFS, err := fs.Sub(workoutguide.WebFS, "web")
		if err != nil {
			log.Error("failed to load embedded catalog", "error", err)
			os.Exit(1)
		}
		cat, err := catalog.NewLoader(webFS, log).Load(context.Background(), *source)
		if err != nil {
			log.Error("failed to load catalog", "error", err)
			os.Exit(1)
		}
		local := cat.Filtered(*dev)
		ds = local
		log.Info("local mode", "workouts", local.Len())
	}

	if err := server.ServeStdio(wgmcp.New(ds, Version, log)); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
