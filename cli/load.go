package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// LoadCmd loads one or more datasets into a fresh structure and prints an
// integration summary.
type LoadCmd struct {
	Datasets []string `arg:"" help:"Dataset identifiers (source/model/entityId:year)."`
	Preset   string   `help:"Filter preset id to apply before integration." optional:""`
	Out      string   `help:"Write the combined structure as JSON to this file." optional:""`
}

func (cmd *LoadCmd) Run(ctx *kong.Context, globals *Globals) error {
	service, err := globals.newService(cmd.Preset)
	if err != nil {
		return err
	}

	runCtx, report := globals.runContext()
	defer report()

	data, err := service.LoadDatasets(runCtx, cmd.Datasets)
	if err != nil {
		printError(ctx.Stdout, err.Error())
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("Loaded %d datasets (%d records integrated)",
		service.LoadedDatasetCount(), data.Metadata.RecordCount))

	for _, key := range data.EntityKeys() {
		entity := data.Entities[key]
		printInfof(ctx.Stdout, "%s  %s (%d records)",
			entityStyle.Render(key), entity.Name.Get(globals.Lang), entity.Metadata.RecordCount)
	}

	printInfof(ctx.Stdout, "%d account codes matched, %d unknown", len(data.UsedCodes), len(data.UnusedCodes))
	if len(data.UnusedCodes) > 0 {
		printInfof(ctx.Stdout, "unknown codes: %v", data.UnusedCodes)
	}

	if filtered := service.FilterReport(); filtered.FilteredCount > 0 {
		printInfof(ctx.Stdout, "filter excluded %d records: %v", filtered.FilteredCount, filtered.ExcludedCodes)
	}

	if cmd.Out != "" {
		return cmd.writeJSON(ctx, data)
	}
	return nil
}

func (cmd *LoadCmd) writeJSON(ctx *kong.Context, data interface{}) error {
	if _, err := os.Stat(cmd.Out); err == nil {
		overwrite, err := promptYesNo(fmt.Sprintf("Overwrite %s?", cmd.Out))
		if err != nil {
			return err
		}
		if !overwrite {
			printInfof(ctx.Stdout, "skipped writing %s", cmd.Out)
			return nil
		}
	}

	encoded, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode structure: %w", err)
	}
	if err := os.WriteFile(cmd.Out, encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", cmd.Out, err)
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("wrote %s", cmd.Out))
	return nil
}
