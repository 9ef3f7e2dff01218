// Command neapolitan solves a nodal analysis model given as a JSON
// document and writes the solved potentials and fluxes alongside it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ForceOverArea/neapolitan/internal/enginelog"
	"github.com/ForceOverArea/neapolitan/study"
)

const outputSuffix = ".soln.json"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("neapolitan", flag.ContinueOnError)
	precision := fs.Float64("precision", 1e-6, "convergence margin passed to the solver")
	fs.Float64Var(precision, "p", 1e-6, "shorthand for --precision")
	iterations := fs.Int("iterations", 1000, "maximum solver iterations")
	fs.IntVar(iterations, "i", 1000, "shorthand for --iterations")
	verbose := fs.Bool("verbose", false, "enable debug-level logging")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if *verbose {
		enginelog.SetLevel(zerolog.DebugLevel)
	} else {
		enginelog.SetLevel(zerolog.InfoLevel)
	}

	if fs.NArg() != 1 {
		fmt.Println("[engine] ERR: expected exactly one model path argument")
		return 1
	}
	modelPath := fs.Arg(0)

	if err := solveModelFile(modelPath, *precision, *iterations); err != nil {
		fmt.Printf("[engine] ERR: %s\n", err)
		return 1
	}
	return 0
}

func solveModelFile(modelPath string, precision float64, iterations int) error {
	enginelog.Log.Info().Str("path", modelPath).Msg("reading model")

	raw, err := os.ReadFile(modelPath)
	if err != nil {
		return fmt.Errorf("reading model: %w", err)
	}

	var model study.Model
	if err := json.Unmarshal(raw, &model); err != nil {
		return fmt.Errorf("parsing model: %w", err)
	}

	configured, err := study.Configure(model)
	if err != nil {
		return fmt.Errorf("configuring study: %w", err)
	}
	built, err := configured.Build()
	if err != nil {
		return fmt.Errorf("building study: %w", err)
	}

	enginelog.Log.Info().
		Float64("precision", precision).
		Int("iterations", iterations).
		Int("nodes", built.NodeCount()).
		Int("elements", built.ElementCount()).
		Msg("solving")

	result, err := built.Solve(precision, iterations)
	if err != nil {
		return fmt.Errorf("solving study: %w", err)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}

	outPath := outputPath(modelPath)
	if err := os.WriteFile(outPath, out, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	fmt.Printf("[engine] ......... wrote solution to %s\n", outPath)
	return nil
}

func outputPath(modelPath string) string {
	ext := filepath.Ext(modelPath)
	base := strings.TrimSuffix(modelPath, ext)
	return base + outputSuffix
}
