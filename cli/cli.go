// Package cli provides the gemfin command set and shared helpers for
// terminal output and prompting.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/gemfin/gemfin/filter"
	"github.com/gemfin/gemfin/integrate"
	"github.com/gemfin/gemfin/output"
	"github.com/gemfin/gemfin/records"
	"github.com/gemfin/gemfin/telemetry"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	codeStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"})
	entityStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// promptYesNo prompts the user with a yes/no question.
// Returns false by default if stdin is not a terminal.
func promptYesNo(question string) (bool, error) {
	if !isTerminal() {
		return false, nil
	}

	var confirm bool

	form := huh.NewConfirm().
		Title(question).
		WithButtonAlignment(lipgloss.Left).
		Value(&confirm)

	err := form.Run()
	if err != nil {
		return false, fmt.Errorf("failed to read response: %w", err)
	}

	return confirm, nil
}

func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// Globals holds flags shared by every command.
type Globals struct {
	DataDir string `help:"Directory holding pre-fetched dataset files." default:"data" short:"d"`
	Catalog string `help:"Entity catalog JSON file for display names and scaling factors." type:"existingfile" optional:""`
	Lang    string `help:"Label language." enum:"de,fr,it,en" default:"de"`
	Timings bool   `help:"Report operation timings to stderr."`
}

// newService assembles the integration service from the global flags and
// an optional filter preset id.
func (g *Globals) newService(presetID string) (*integrate.Service, error) {
	opts := []integrate.Option{}

	if g.Catalog != "" {
		catalog, err := records.LoadCatalog(g.Catalog)
		if err != nil {
			return nil, err
		}
		opts = append(opts, integrate.WithCatalog(catalog))
	}

	if presetID != "" {
		preset, ok := filter.GetPreset(presetID)
		if !ok {
			return nil, fmt.Errorf("unknown filter preset %q", presetID)
		}
		opts = append(opts, integrate.WithFilter(filter.NewEngine(preset.Config)))
	}

	source := records.NewFileSource(g.DataDir)
	return integrate.NewService(integrate.New(source, opts...)), nil
}

// runContext returns the context for a command run, wiring a timing
// collector when --timings is set. The returned report function writes the
// collected timings to stderr.
func (g *Globals) runContext() (context.Context, func()) {
	ctx := context.Background()
	if !g.Timings {
		return ctx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	ctx = telemetry.WithCollector(ctx, collector)
	return ctx, func() {
		collector.Report(os.Stderr, output.NewStyles(os.Stderr))
	}
}
