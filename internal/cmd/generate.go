package cmd

import (
	"log/slog"

	"github.com/fluxmc/matgen/internal/codegen/generator"
)

// Paths selects the generator's input and output files.
type Paths struct {
	Input  string `help:"JSON array of item identifiers" default:"items.json" env:"MATGEN_INPUT"`
	Output string `help:"Generated Rust file; its directory must already exist" default:"generated/material.g.rs" env:"MATGEN_OUTPUT"`
}

func (p Paths) config() generator.Config {
	return generator.Config{Input: p.Input, Output: p.Output}
}

// Generate writes the Material enum; it is the default command.
type Generate struct {
	Paths `embed:""`
}

// Run is called by Kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting material generation", "input", c.Input, "output", c.Output)

	res, err := generator.New(c.config(), logger).Generate()
	if err != nil {
		return err
	}

	logger.Debug("Wrote generated file", "file", res.Output, "bytes", res.Bytes)
	return nil
}

// Check fails when the generated file differs from a fresh render.
type Check struct {
	Paths `embed:""`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger) error {
	return generator.New(c.config(), logger).Check()
}
