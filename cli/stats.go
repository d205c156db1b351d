package cli

import (
	"fmt"

	"github.com/alecthomas/kong"

	"github.com/gemfin/gemfin/extract"
)

// StatsCmd prints cross-entity series with dispersion statistics and the
// spread-reduction targets derived from them.
type StatsCmd struct {
	Datasets  []string `arg:"" help:"Dataset identifiers (source/model/entityId:year)."`
	Codes     []string `help:"Account codes to analyze." required:""`
	TargetCv  float64  `help:"Coefficient-of-variation target for spread analysis." default:"0.05"`
	PerCapita bool     `help:"Apply entity scaling factors before analysis."`
	Preset    string   `help:"Filter preset id to apply before integration." optional:""`
}

func (cmd *StatsCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	validation := extract.ValidateAccountCodes(data, cmd.Codes)
	for _, code := range validation.Invalid {
		printError(ctx.Stdout, fmt.Sprintf("code %s carries no values in any loaded dataset", code))
	}
	if len(validation.Valid) == 0 {
		return fmt.Errorf("none of the requested codes carry values")
	}

	series := extract.ExtractAccountValues(data, validation.Valid)
	if cmd.PerCapita {
		for code, values := range series {
			for i, v := range values {
				values[i].Value = extract.ScaledValue(data.Entities[v.EntityCode], v.Value)
			}
			series[code] = values
		}
	}

	for _, code := range validation.Valid {
		values := series[code]
		printInfof(ctx.Stdout, "%s (%d entities)", codeStyle.Render(code), len(values))
		for _, v := range values {
			fmt.Fprintf(ctx.Stdout, "    %s  %.2f\n", entityStyle.Render(v.EntityCode), v.Value)
		}
		fmt.Fprintf(ctx.Stdout, "    variance %.4f, cv %.4f\n",
			extract.CalculateVariance(values),
			extract.CalculateCoefficientOfVariation(values))
	}

	targets := extract.BuildSpreadTargets(series, validation.Valid, extract.TargetOptions{TargetCV: cmd.TargetCv})
	if len(targets) == 0 {
		printInfof(ctx.Stdout, "no spread targets (series need >= 2 entities and a non-zero value)")
		return nil
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("%d spread targets", len(targets)))
	for _, target := range targets {
		printInfof(ctx.Stdout, "%s: cv %.4f -> target %.4f (mean %.2f)",
			target.AccountCode, target.CurrentCV, target.TargetCV, target.Mean)
	}
	return nil
}
