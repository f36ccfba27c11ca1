package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/otzar-labs/ketav-cli/internal/core/domain"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
)

var (
	convertH1     string
	convertH2     string
	convertOutDir string
	convertTree   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert <path>",
	Short: "Convert a file or directory",
	Long: `Converts Hebrew documents into the canonical chunked form.

When path is a file, it is converted directly. When path is a
directory, at most one file is selected by format priority
(docx > doc > idml > DOS text). With --tree, every subdirectory is
processed sequentially and one broken file never stops the batch.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertH1, "h1", "", "collection heading override")
	convertCmd.Flags().StringVar(&convertH2, "h2", "", "section heading override (default: directory name)")
	convertCmd.Flags().StringVarP(&convertOutDir, "out", "o", "", "output directory (default: next to source)")
	convertCmd.Flags().BoolVar(&convertTree, "tree", false, "walk the whole directory tree")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	if converter == nil {
		return errors.New("converter not configured")
	}

	path := args[0]
	h1, h2 := headingDefaults(convertH1, convertH2)
	opts := driving.ConvertOptions{
		H1:     h1,
		H2:     h2,
		OutDir: convertOutDir,
	}
	ctx := context.Background()

	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	switch {
	case !info.IsDir():
		result, err := converter.ConvertFile(ctx, path, opts)
		return printResult(cmd, result, err)
	case convertTree:
		result, err := converter.ConvertTree(ctx, path, opts)
		return printTreeResult(cmd, result, err)
	default:
		result, err := converter.ConvertDir(ctx, path, opts)
		if errors.Is(err, domain.ErrNoConvertibleFile) {
			cmd.Printf("No convertible file in %s\n", path)
			return nil
		}
		return printResult(cmd, result, err)
	}
}

// headingDefaults falls back to configured headings when flags are
// not given.
func headingDefaults(h1, h2 string) (string, string) {
	if configStore == nil {
		return h1, h2
	}
	if h1 == "" {
		h1 = configStore.GetString(driven.KeyHeading1)
	}
	if h2 == "" {
		h2 = configStore.GetString(driven.KeyHeading2)
	}
	return h1, h2
}

func printResult(cmd *cobra.Command, result *driving.FileResult, err error) error {
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}
	cmd.Printf("%s (%s) -> %s [%d paragraphs]\n",
		result.SourcePath, result.Format, result.OutputPath, result.Paragraphs)
	return nil
}

func printTreeResult(cmd *cobra.Command, result *driving.TreeResult, err error) error {
	if err != nil {
		return fmt.Errorf("convert failed: %w", err)
	}
	for _, fr := range result.Converted {
		cmd.Printf("%s (%s) -> %s [%d paragraphs]\n",
			fr.SourcePath, fr.Format, fr.OutputPath, fr.Paragraphs)
	}

	dirs := make([]string, 0, len(result.Failed))
	for dir := range result.Failed {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)
	for _, dir := range dirs {
		cmd.Printf("FAILED %s: %v\n", dir, result.Failed[dir])
	}

	cmd.Printf("Converted %d, skipped %d, failed %d.\n",
		len(result.Converted), len(result.Skipped), len(result.Failed))
	return nil
}
