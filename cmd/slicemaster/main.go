package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	slicemaster "github.com/kanniganfan/SliceMaster"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "slicemaster",
	Short: "Slice sprite sheets and edit sprite pixels",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			slicemaster.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
