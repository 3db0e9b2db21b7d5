package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/gramschmidt/internal/viz"
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if jsonOutput {
		outputJSON(ErrorResponse{Error: msg})
	} else {
		fmt.Fprintf(os.Stderr, "error: %s\n", msg)
	}
	os.Exit(code)
}

// RunResponse is the JSON response for a Gram-Schmidt run.
type RunResponse struct {
	*viz.Figure
	MaxOffDiagonal   float64 `json:"max_off_diagonal"`
	MaxUnitDeviation float64 `json:"max_unit_deviation"`
	FigurePath       string  `json:"figure,omitempty"`
}

// ConfigResponse is the response for the config command.
type ConfigResponse struct {
	Path        string  `json:"path"`
	LowerBound  int     `json:"lower_bound"`
	UpperBound  int     `json:"upper_bound"`
	Seed        *uint64 `json:"seed,omitempty"`
	MaxAttempts int     `json:"max_attempts"`
	Decimals    int     `json:"decimals"`
	Output      string  `json:"output,omitempty"`
	Browser     string  `json:"browser,omitempty"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}
