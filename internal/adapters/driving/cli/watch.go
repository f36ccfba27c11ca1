package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
	"github.com/otzar-labs/ketav-cli/internal/core/services"
)

var (
	watchH1     string
	watchH2     string
	watchOutDir string
)

var watchCmd = &cobra.Command{
	Use:   "watch <directory>",
	Short: "Watch a directory tree and reconvert on change",
	Long: `Watches a directory tree and re-runs conversion for any
directory whose files change. Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchH1, "h1", "", "collection heading override")
	watchCmd.Flags().StringVar(&watchH2, "h2", "", "section heading override (default: directory name)")
	watchCmd.Flags().StringVarP(&watchOutDir, "out", "o", "", "output directory (default: next to source)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("converter not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h1, h2 := headingDefaults(watchH1, watchH2)
	opts := driving.ConvertOptions{
		H1:     h1,
		H2:     h2,
		OutDir: watchOutDir,
	}
	watcher := services.NewWatcher(converter, opts)

	cmd.Printf("Watching %s (Ctrl-C to stop)...\n", args[0])
	err := watcher.Run(ctx, args[0])
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
