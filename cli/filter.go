package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"

	"github.com/gemfin/gemfin/filter"
)

// FilterCmd lists presets, inspects one, or validates a filter
// configuration file. Without arguments on a terminal it offers an
// interactive preset picker.
type FilterCmd struct {
	List     bool   `help:"List all filter presets."`
	Preset   string `help:"Print one preset's configuration as JSON." optional:""`
	Validate string `help:"Validate a filter configuration JSON file." type:"existingfile" optional:""`
}

func (cmd *FilterCmd) Run(ctx *kong.Context) error {
	switch {
	case cmd.List:
		return cmd.list(ctx)
	case cmd.Preset != "":
		return cmd.show(ctx, cmd.Preset)
	case cmd.Validate != "":
		return cmd.validate(ctx)
	}

	if !isTerminal() {
		return cmd.list(ctx)
	}
	return cmd.pick(ctx)
}

func (cmd *FilterCmd) list(ctx *kong.Context) error {
	for _, preset := range filter.Presets() {
		printInfof(ctx.Stdout, "%s  %s (%d rules, %s mode)",
			codeStyle.Render(preset.ID), preset.Name, len(preset.Config.Rules), preset.Config.CombineMode)
	}
	return nil
}

func (cmd *FilterCmd) show(ctx *kong.Context, id string) error {
	preset, ok := filter.GetPreset(id)
	if !ok {
		return fmt.Errorf("unknown filter preset %q", id)
	}

	encoded, err := json.MarshalIndent(preset.Config, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, string(encoded))
	return nil
}

func (cmd *FilterCmd) validate(ctx *kong.Context) error {
	data, err := os.ReadFile(cmd.Validate)
	if err != nil {
		return err
	}

	var cfg filter.Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to decode %s: %w", cmd.Validate, err)
	}

	errs := filter.Validate(cfg)
	if len(errs) == 0 {
		printSuccess(ctx.Stdout, fmt.Sprintf("%s: %d rules, all valid", cmd.Validate, len(cfg.Rules)))
		return nil
	}

	for _, err := range errs {
		printError(ctx.Stdout, err.Error())
	}
	return fmt.Errorf("%d invalid rules", len(errs))
}

// pick lets the user choose a preset interactively and prints it.
func (cmd *FilterCmd) pick(ctx *kong.Context) error {
	presets := filter.Presets()
	options := make([]huh.Option[string], 0, len(presets))
	for _, preset := range presets {
		options = append(options, huh.NewOption(preset.Name, preset.ID))
	}

	var selected string
	form := huh.NewSelect[string]().
		Title("Filter preset").
		Options(options...).
		Value(&selected)
	if err := form.Run(); err != nil {
		return fmt.Errorf("failed to read selection: %w", err)
	}

	return cmd.show(ctx, selected)
}
