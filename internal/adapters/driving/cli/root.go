// Package cli provides the cobra command tree of the ketav CLI.
// Commands drive the conversion core through its driving ports; all
// dependency construction happens in cmd/ketav.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
	"github.com/otzar-labs/ketav-cli/internal/logger"
)

// Deps carries the wired services the commands need.
type Deps struct {
	Converter   driving.Converter
	Registry    driven.ReaderRegistry
	ConfigStore driven.ConfigStore
	DocStore    driven.DocumentStore
	Version     string
}

var (
	converter   driving.Converter
	registry    driven.ReaderRegistry
	configStore driven.ConfigStore
	docStore    driven.DocumentStore
	version     = "dev"

	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "ketav",
	Short: "Normalise legacy Hebrew documents",
	Long: `ketav ingests Hebrew documents in legacy formats (DOCX, DOC,
IDML archive exports, extensionless CP862 DOS text) and normalises
them into a canonical chunked representation for downstream
formatting and export.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"enable verbose logging to stderr")
}

// Execute wires the dependencies into the command tree and runs it.
func Execute(deps Deps) error {
	converter = deps.Converter
	registry = deps.Registry
	configStore = deps.ConfigStore
	docStore = deps.DocStore
	if deps.Version != "" {
		version = deps.Version
	}
	return rootCmd.Execute()
}
