package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/lox/bikeusage/internal/analysis"
	"github.com/lox/bikeusage/internal/api"
	"github.com/lox/bikeusage/internal/charts"
	"github.com/lox/bikeusage/internal/ingest"
)

type ServeCmd struct {
	Port  string `help:"HTTP server port." default:"8080" env:"BIKEUSAGE_PORT"`
	Cache bool   `help:"Reuse the parsed dataset until the file changes." env:"BIKEUSAGE_CACHE"`
}

func (c *ServeCmd) Run(cli *CLI) error {
	var cache *ingest.Cache
	if c.Cache {
		cache = ingest.NewCache()
	}
	loader := ingest.NewLoader(cli.Data, cache)

	// Fail fast on a bad file; each request still reloads it.
	ds, err := loader.Load()
	if err != nil {
		return err
	}
	log.Printf("dataset %s: %d rows", ds.Path, len(ds.Records))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	server := api.NewServer(loader, c.Port)
	log.Printf("starting server on :%s", c.Port)
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	return nil
}

// SelectionFlags are shared by the offline commands.
type SelectionFlags struct {
	Year   string `help:"Year to filter on (default: first year in the file)."`
	Season string `help:"Season to filter on, or All." default:"All"`
}

func (f SelectionFlags) summarize(path string) (analysis.Summary, error) {
	ds, err := ingest.Load(path)
	if err != nil {
		return analysis.Summary{}, err
	}
	sel := analysis.ParseSelection(analysis.Domain(ds), f.Year, f.Season)
	return analysis.Summarize(ds, sel), nil
}

type SummaryCmd struct {
	SelectionFlags `embed:""`

	JSON bool `help:"Print JSON instead of text tables."`
}

func (c *SummaryCmd) Run(cli *CLI) error {
	summary, err := c.summarize(cli.Data)
	if err != nil {
		return err
	}
	if c.JSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}
	return analysis.WriteTables(os.Stdout, summary)
}

type RenderCmd struct {
	SelectionFlags `embed:""`

	Out string `help:"Directory to write PNG files into." default:"charts" type:"path"`
}

func (c *RenderCmd) Run(cli *CLI) error {
	summary, err := c.summarize(cli.Data)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Out, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	renderer := charts.NewRenderer()
	for _, spec := range charts.Build(summary) {
		data, err := renderer.PNG(spec)
		if err != nil {
			return err
		}
		path := filepath.Join(c.Out, spec.Name+".png")
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		log.Printf("wrote %s", path)
	}
	return nil
}
