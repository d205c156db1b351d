package cli

// Commands is the full gemfin command set, wired into kong by main.
type Commands struct {
	Globals

	Load   LoadCmd   `cmd:"" help:"Load datasets and print an integration summary."`
	Show   ShowCmd   `cmd:"" help:"Render account trees with per-entity values."`
	Stats  StatsCmd  `cmd:"" help:"Cross-entity series, variance and spread targets for account codes."`
	Filter FilterCmd `cmd:"" help:"List, inspect and validate filter configurations."`
	Watch  WatchCmd  `cmd:"" help:"Reload datasets whenever the data directory changes."`
}
