package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridscad/pkg/config"
	"github.com/matzehuels/gridscad/pkg/io"
	"github.com/matzehuels/gridscad/pkg/pipeline"
)

// convertOpts holds the flags of the convert command.
type convertOpts struct {
	output     string
	formats    string
	newline    bool
	stdout     bool
	noCache    bool
	refresh    bool
	configPath string
}

// convertCommand creates the convert command.
func (c *CLI) convertCommand() *cobra.Command {
	opts := convertOpts{}

	cmd := &cobra.Command{
		Use:   "convert [model]",
		Short: "Convert a grid model into an OpenSCAD script",
		Long: `Convert a JSON (or YAML) grid model into an OpenSCAD script.

Each grid cell becomes one statement: the cell position scaled by the cell
size, the cell rotation, and the primitive registered for the cell type.
Output files are named after the model's metadata name.

Formats:
  scad  OpenSCAD script (default)
  json  conversion summary
  svg   Graphviz preview of the grid`,
		Example: `  gridscad convert model.json
  gridscad convert model.json -f scad,svg -o out/
  gridscad convert model.json --stdout --newline`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], opts, cmd.Flags().Changed("newline"))
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", ".", "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output formats: scad, json, svg (comma-separated)")
	cmd.Flags().BoolVar(&opts.newline, "newline", false, "separate statements with newlines")
	cmd.Flags().BoolVar(&opts.stdout, "stdout", false, "print the script to stdout instead of writing files")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore cached artifacts")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/gridscad/config.toml)")

	return cmd
}

// runConvert loads the config and model, converts it and writes the artifacts.
// newlineSet reports whether --newline was given explicitly, in which case it
// overrides the config file.
func (c *CLI) runConvert(cmd *cobra.Command, path string, opts convertOpts, newlineSet bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cfg.Path != "" {
		logger.Debug("loaded config", "path", cfg.Path)
	}
	reg, err := cfg.Registry()
	if err != nil {
		return err
	}

	formats := parseFormats(opts.formats)
	if len(formats) == 0 {
		formats = cfg.Output.Formats
	}
	if opts.stdout {
		formats = []string{pipeline.FormatSCAD}
	}
	newline := cfg.Output.Newline
	if newlineSet {
		newline = opts.newline
	}

	logger.Infof("Loading model from %s", path)
	m, err := io.ImportModel(path)
	if err != nil {
		return err
	}
	logger.Debug("loaded model", "name", m.Metadata.Name, "cells", m.Len(), "types", m.Types())

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	defer runner.Cache.Close()

	result, err := runner.Convert(ctx, m, pipeline.Options{
		Formats:    formats,
		CellWidth:  cfg.Cell.Width,
		CellHeight: cfg.Cell.Height,
		Newline:    newline,
		Refresh:    opts.refresh,
		Registry:   reg,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	if opts.stdout {
		_, err := cmd.OutOrStdout().Write(result.Artifacts[pipeline.FormatSCAD])
		return err
	}

	// Every artifact is rendered before the first file is written, and the
	// files are written all or nothing.
	written := formatsOf(result)
	files := make([]io.File, 0, len(written))
	for _, format := range written {
		out, err := io.OutputPath(opts.output, m.Metadata.Name, format)
		if err != nil {
			return err
		}
		files = append(files, io.File{Path: out, Data: result.Artifacts[format]})
	}
	if err := io.WriteAll(files); err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Converted %s", m.Metadata.Name))
	printSuccess("Converted %s", m.Metadata.Name)
	for _, f := range files {
		printFile(f.Path)
	}
	printStats(result.Stats.Cells, written, allCached(result))
	return nil
}

// formatsOf returns the formats present in result in canonical order.
func formatsOf(result *pipeline.Result) []string {
	var out []string
	for _, f := range []string{pipeline.FormatSCAD, pipeline.FormatJSON, pipeline.FormatSVG} {
		if _, ok := result.Artifacts[f]; ok {
			out = append(out, f)
		}
	}
	return out
}

// allCached reports whether every artifact came from the cache.
func allCached(result *pipeline.Result) bool {
	if len(result.CacheHits) == 0 {
		return false
	}
	for _, hit := range result.CacheHits {
		if !hit {
			return false
		}
	}
	return true
}
