package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogued documents",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if docStore == nil {
			return errors.New("catalog not enabled; set catalog.enabled in the config")
		}

		docs, err := docStore.List(context.Background())
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			cmd.Println("Catalog is empty.")
			return nil
		}
		for _, doc := range docs {
			cmd.Printf("%s  %-8s %-20s %s\n",
				doc.ID, doc.Format, doc.Headings.H3, doc.SourcePath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
