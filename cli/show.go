package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/gemfin/gemfin/chart"
	"github.com/gemfin/gemfin/scaling"
)

// ShowCmd renders the account trees of loaded datasets with per-entity
// values, scaled for display.
type ShowCmd struct {
	Datasets  []string `arg:"" help:"Dataset identifiers (source/model/entityId:year)."`
	Code      []string `help:"Render only the subtrees rooted at these account codes." optional:""`
	Statement string   `help:"Which statement to render." enum:"income,balance,both" default:"both"`
	Depth     int      `help:"Maximum tree depth to render (0 = unlimited)." default:"0"`
	Preset    string   `help:"Filter preset id to apply before integration." optional:""`

	Threshold float64 `help:"Smallest absolute value that gets unit-scaled." default:"1000"`
	Precision int     `help:"Fraction digits for scaled values." default:"1"`
	Full      bool    `help:"Use full unit names instead of abbreviations."`
	NoScale   bool    `help:"Disable unit scaling entirely."`
	Currency  string  `help:"Render values as amounts of this currency." optional:""`
}

func (cmd *ShowCmd) Run(ctx *kong.Context, globals *Globals) error {
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

	formatter := cmd.newFormatter()
	entityKeys := data.EntityKeys()

	if cmd.Statement != "balance" {
		cmd.renderTree(ctx, globals, data.IncomeStatement, "Erfolgsrechnung", entityKeys, formatter)
	}
	if cmd.Statement != "income" {
		cmd.renderTree(ctx, globals, data.BalanceSheet, "Bilanz", entityKeys, formatter)
	}
	return nil
}

func (cmd *ShowCmd) newFormatter() *scaling.Formatter {
	cfg := scaling.Config{
		Threshold:      cmd.Threshold,
		Precision:      cmd.Precision,
		UseAbbreviated: !cmd.Full,
	}
	if cmd.NoScale {
		cfg.Threshold = math.Inf(1)
	}
	return scaling.New(cfg)
}

func (cmd *ShowCmd) renderTree(ctx *kong.Context, globals *Globals, tree *chart.AccountNode, title string, entityKeys []string, formatter *scaling.Formatter) {
	roots := cmd.roots(tree)
	if len(roots) == 0 {
		return
	}

	labelWidth := cmd.labelWidth(roots, globals.Lang)

	fmt.Fprintf(ctx.Stdout, "\n%s\n", infoStyle.Render(title))
	for _, root := range roots {
		cmd.renderNode(ctx, globals, root, 0, labelWidth, entityKeys, formatter)
	}
}

// roots resolves the --code selection against the tree. Without a
// selection the synthetic root's children are the starting points.
func (cmd *ShowCmd) roots(tree *chart.AccountNode) []*chart.AccountNode {
	if len(cmd.Code) == 0 {
		return tree.Children
	}
	var roots []*chart.AccountNode
	for _, code := range cmd.Code {
		if node := tree.Find(code); node != nil {
			roots = append(roots, node)
		}
	}
	return roots
}

func (cmd *ShowCmd) renderNode(ctx *kong.Context, globals *Globals, node *chart.AccountNode, depth, labelWidth int, entityKeys []string, formatter *scaling.Formatter) {
	if cmd.Depth > 0 && depth >= cmd.Depth {
		return
	}

	indent := strings.Repeat("  ", depth)
	label := indent + node.Labels.Get(globals.Lang)
	padding := labelWidth - runewidth.StringWidth(label)
	if padding < 0 {
		label = runewidth.Truncate(label, labelWidth, "…")
		padding = 0
	}

	var cells []string
	for _, key := range entityKeys {
		value, ok := node.Values[key]
		if !ok {
			continue
		}
		cells = append(cells, cmd.formatValue(value, globals.Lang, formatter))
	}

	fmt.Fprintf(ctx.Stdout, "%s  %s%s  %s\n",
		codeStyle.Render(fmt.Sprintf("%-5s", node.Code)),
		label,
		strings.Repeat(" ", padding),
		strings.Join(cells, "  "),
	)

	for _, child := range node.Children {
		cmd.renderNode(ctx, globals, child, depth+1, labelWidth, entityKeys, formatter)
	}
}

func (cmd *ShowCmd) formatValue(value chart.Value, lang string, formatter *scaling.Formatter) string {
	amount := value.Amount.InexactFloat64()
	if cmd.Currency != "" {
		return formatter.FormatCurrency(amount, lang, cmd.Currency).Formatted
	}
	return formatter.Format(amount, lang).Formatted
}

// labelWidth sizes the label column to the widest visible label, clamped
// to half the terminal width so value columns stay on screen.
func (cmd *ShowCmd) labelWidth(roots []*chart.AccountNode, lang string) int {
	width := 0
	for _, root := range roots {
		depth := 0
		var walk func(*chart.AccountNode, int)
		walk = func(n *chart.AccountNode, d int) {
			if cmd.Depth > 0 && d >= cmd.Depth {
				return
			}
			if w := runewidth.StringWidth(strings.Repeat("  ", d) + n.Labels.Get(lang)); w > width {
				width = w
			}
			for _, child := range n.Children {
				walk(child, d+1)
			}
		}
		walk(root, depth)
	}

	if termWidth, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && termWidth > 0 && width > termWidth/2 {
		width = termWidth / 2
	}
	return width
}
