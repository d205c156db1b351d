package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fsnotify/fsnotify"

	"github.com/gemfin/gemfin/integrate"
)

// WatchCmd loads the datasets and reloads them whenever the data
// directory changes. Editors and sync tools write files in several steps,
// so events are debounced before a reload is triggered.
type WatchCmd struct {
	Datasets []string `arg:"" help:"Dataset identifiers (source/model/entityId:year)."`
	Preset   string   `help:"Filter preset id to apply before integration." optional:""`
}

func (cmd *WatchCmd) Run(ctx *kong.Context, globals *Globals) error {
	service, err := globals.newService(cmd.Preset)
	if err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.reload(runCtx, ctx, globals, service); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(globals.DataDir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", globals.DataDir, err)
	}

	printInfof(ctx.Stdout, "watching %s (ctrl-c to stop)", globals.DataDir)

	const debounceDelay = 100 * time.Millisecond
	var debounce *time.Timer
	reloads := make(chan struct{}, 1)

	for {
		select {
		case <-runCtx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reloads <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			printError(ctx.Stdout, fmt.Sprintf("watch error: %v", err))
		case <-reloads:
			if err := cmd.reload(runCtx, ctx, globals, service); err != nil {
				// Keep watching; a broken write may be fixed by the
				// next change.
				printError(ctx.Stdout, err.Error())
			}
		}
	}
}

func (cmd *WatchCmd) reload(runCtx context.Context, ctx *kong.Context, globals *Globals, service *integrate.Service) error {
	data, err := service.LoadDatasets(runCtx, cmd.Datasets)
	if err != nil {
		return err
	}

	printSuccess(ctx.Stdout, fmt.Sprintf("[%s] loaded %d datasets (%d records)",
		time.Now().Format("15:04:05"), service.LoadedDatasetCount(), data.Metadata.RecordCount))
	return nil
}
