package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported source formats",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if registry == nil {
			return errors.New("registry not configured")
		}
		for _, reader := range registry.Readers() {
			exts := strings.Join(reader.Extensions(), ", ")
			if exts == "" {
				exts = "(content probe)"
			}
			cmd.Printf("%-10s priority %-3d %s\n",
				reader.Format(), reader.Priority(), exts)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
