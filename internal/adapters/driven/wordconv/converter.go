// Package wordconv converts legacy .doc files to .docx by shelling out
// to an installed word-processor CLI. The conversion is treated as an
// opaque one-shot call: failures are surfaced, never retried.
package wordconv

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/otzar-labs/ketav-cli/internal/core/ports/driven"
	"github.com/otzar-labs/ketav-cli/internal/logger"
)

// Ensure Converter implements the interface.
var _ driven.LegacyConverter = (*Converter)(nil)

// DefaultCommand is the converter invoked when none is configured.
const DefaultCommand = "soffice"

// Converter runs an external word processor in headless mode.
type Converter struct {
	command string
}

// New creates a converter using the given command, or DefaultCommand
// when empty.
func New(command string) *Converter {
	if command == "" {
		command = DefaultCommand
	}
	return &Converter{command: command}
}

// Convert produces a temporary .docx artifact from docPath. The caller
// owns the returned file and must remove it.
func (c *Converter) Convert(ctx context.Context, docPath string) (string, error) {
	outDir, err := os.MkdirTemp("", "ketav-conv-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}

	logger.Debug("converting %s via %s", docPath, c.command)
	cmd := exec.CommandContext(ctx, c.command,
		"--headless", "--convert-to", "docx", "--outdir", outDir, docPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		os.RemoveAll(outDir)
		return "", fmt.Errorf("%s: %w: %s", c.command, err, strings.TrimSpace(string(out)))
	}

	base := strings.TrimSuffix(filepath.Base(docPath), filepath.Ext(docPath))
	artifact := filepath.Join(outDir, base+".docx")
	if _, err := os.Stat(artifact); err != nil {
		os.RemoveAll(outDir)
		return "", fmt.Errorf("converter produced no artifact for %s", docPath)
	}

	// Move the artifact out so the caller owns a single file and the
	// scratch directory can go now.
	dest, err := os.CreateTemp("", "ketav-*.docx")
	if err != nil {
		os.RemoveAll(outDir)
		return "", fmt.Errorf("stage artifact: %w", err)
	}
	final := dest.Name()
	dest.Close()
	if err := os.Rename(artifact, final); err != nil {
		os.Remove(final)
		os.RemoveAll(outDir)
		return "", fmt.Errorf("stage artifact: %w", err)
	}
	os.RemoveAll(outDir)
	return final, nil
}
