package generator

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/fluxmc/matgen/internal/codegen/items"
	"github.com/fluxmc/matgen/internal/codegen/naming"
	"github.com/fluxmc/matgen/internal/codegen/rust"
)

// DefaultOutput is where the Material enum is written when no other path is
// configured. Its parent directory must already exist.
const DefaultOutput = "generated/material.g.rs"

// ErrStale is returned by Check when the file on disk does not match what
// Generate would write.
var ErrStale = errors.New("generated file is out of date")

// Config names the input list and the generated file.
type Config struct {
	Input  string
	Output string
}

// Generator turns an item list into the Material enum source file.
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

// Result describes a completed Generate run.
type Result struct {
	Input    string
	Output   string
	Variants int
	Bytes    int
}

// New returns a Generator. Empty paths fall back to the defaults and a nil
// logger discards output.
func New(cfg Config, logger *slog.Logger) *Generator {
	if cfg.Input == "" {
		cfg.Input = items.DefaultPath
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		cfg:    cfg,
		logger: logger,
	}
}

// Render loads the identifier list and returns the generated source without
// touching the output file.
func (g *Generator) Render() ([]byte, int, error) {
	g.logger.Debug("Loading item identifiers", "file", g.cfg.Input)
	ids, err := items.Load(g.cfg.Input)
	if err != nil {
		return nil, 0, err
	}
	g.logger.Info("Loaded item identifiers", "count", len(ids))

	variants := naming.VariantNames(ids)
	if dups := naming.Duplicates(variants); len(dups) > 0 {
		g.logger.Warn("Duplicate variant names; generated enum will not compile", "variants", dups)
	}
	if len(variants) == 0 {
		g.logger.Warn("No item identifiers; generating an empty enum", "file", g.cfg.Input)
	}

	src, err := rust.MaterialSource(variants)
	if err != nil {
		return nil, 0, fmt.Errorf("render %s: %w", rust.EnumName, err)
	}
	return src, len(variants), nil
}

// Generate renders the Material enum and writes it to the output file,
// truncating any previous content. The input is fully parsed before the
// output is opened.
func (g *Generator) Generate() (*Result, error) {
	src, n, err := g.Render()
	if err != nil {
		return nil, err
	}

	if err := g.write(src); err != nil {
		return nil, err
	}

	g.logger.Info("Generated material enum", "file", g.cfg.Output, "variants", n)
	return &Result{
		Input:    g.cfg.Input,
		Output:   g.cfg.Output,
		Variants: n,
		Bytes:    len(src),
	}, nil
}

func (g *Generator) write(src []byte) (err error) {
	f, err := os.Create(g.cfg.Output)
	if err != nil {
		return &items.IOError{Op: "create", Path: g.cfg.Output, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &items.IOError{Op: "close", Path: g.cfg.Output, Err: cerr}
		}
	}()

	if _, err := f.Write(src); err != nil {
		return &items.IOError{Op: "write", Path: g.cfg.Output, Err: err}
	}
	return nil
}

// Check reports whether the output file is up to date with the input. It
// returns an error wrapping ErrStale when the file differs or is missing.
func (g *Generator) Check() error {
	want, _, err := g.Render()
	if err != nil {
		return err
	}

	got, err := os.ReadFile(g.cfg.Output)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s: %w (missing)", g.cfg.Output, ErrStale)
	}
	if err != nil {
		return &items.IOError{Op: "read", Path: g.cfg.Output, Err: err}
	}
	if !bytes.Equal(got, want) {
		return fmt.Errorf("%s: %w", g.cfg.Output, ErrStale)
	}

	g.logger.Info("Generated file is up to date", "file", g.cfg.Output)
	return nil
}
