package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/matsen/gramschmidt/internal/config"
	"github.com/matsen/gramschmidt/internal/generator"
	"github.com/matsen/gramschmidt/internal/orthogonal"
	"github.com/matsen/gramschmidt/internal/viz"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	noOpen bool
	noPlot bool
)

func runGramSchmidt(cmd *cobra.Command, args []string) error {
	cfg := mustLoadConfig(cmd)

	runID := uuid.NewString()
	seed := resolveSeed(cfg)
	logger := log.With().Str("run", runID[:8]).Logger()
	logger.Debug().
		Uint64("seed", seed).
		Int("lower", cfg.LowerBound).
		Int("upper", cfg.UpperBound).
		Msg("starting run")

	fig, res, err := compute(cfg, runID, seed, logger)
	if err != nil {
		return err
	}

	var figurePath string
	if !noPlot {
		figurePath, err = writeFigure(fig, cfg)
		if err != nil {
			return err
		}
	}

	if jsonOutput {
		return outputJSON(RunResponse{
			Figure:           fig,
			MaxOffDiagonal:   orthogonal.MaxOffDiagonal(res.Orthonormal),
			MaxUnitDeviation: orthogonal.MaxUnitDeviation(res.Orthonormal),
			FigurePath:       figurePath,
		})
	}

	if err := viz.WriteLog(os.Stdout, fig, cfg.Decimals); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	if figurePath == "" {
		return nil
	}
	logger.Info().Str("path", figurePath).Msg("figure written")

	if noOpen || !term.IsTerminal(int(os.Stdout.Fd())) {
		return nil
	}
	if err := viz.NewOpener(cfg.Browser).Open(figurePath); err != nil {
		logger.Warn().Err(err).Msg("could not open figure")
	}
	return nil
}

// resolveSeed returns the configured seed, or a fresh one when none is set.
// The seed is always reported so any run can be reproduced.
func resolveSeed(cfg *config.Config) uint64 {
	if cfg.Seed != nil {
		return *cfg.Seed
	}
	return rand.Uint64()
}

// compute draws the initial vectors, orthogonalizes them and verifies the
// result at full precision. The returned figure holds values rounded to
// cfg.Decimals; the returned result is unrounded.
func compute(cfg *config.Config, runID string, seed uint64, logger zerolog.Logger) (*viz.Figure, orthogonal.Result, error) {
	gen := generator.New(generator.NewSource(seed),
		generator.WithMaxAttempts(cfg.MaxAttempts),
		generator.WithLogger(logger),
	)

	initial, err := gen.Generate(cfg.LowerBound, cfg.UpperBound)
	if err != nil {
		return nil, orthogonal.Result{}, fmt.Errorf("generating vectors: %w", err)
	}

	res, err := orthogonal.GramSchmidt(initial)
	if err != nil {
		return nil, orthogonal.Result{}, fmt.Errorf("orthogonalizing: %w", err)
	}
	if err := orthogonal.Verify(res, orthogonal.DefaultTolerance); err != nil {
		return nil, orthogonal.Result{}, fmt.Errorf("verifying result: %w", err)
	}

	rounded := res.Round(cfg.Decimals)
	fig := &viz.Figure{
		RunID:       runID,
		Seed:        seed,
		LowerBound:  cfg.LowerBound,
		UpperBound:  cfg.UpperBound,
		Initial:     initial.Array(),
		Orthogonal:  rounded.Orthogonal.Array(),
		Orthonormal: rounded.Orthonormal.Array(),
	}
	return fig, res, nil
}

// writeFigure renders the figure and writes it to cfg.Output, or to a
// run-specific file in the temp directory. Returns the path written.
func writeFigure(fig *viz.Figure, cfg *config.Config) (string, error) {
	opts := viz.DefaultOptions()
	opts.Decimals = cfg.Decimals

	html, err := viz.GenerateHTML(fig, opts)
	if err != nil {
		return "", fmt.Errorf("rendering figure: %w", err)
	}

	path := cfg.Output
	if path == "" {
		path = filepath.Join(os.TempDir(), "gs-"+fig.RunID+".html")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return "", fmt.Errorf("writing figure: %w", err)
	}
	return path, nil
}
