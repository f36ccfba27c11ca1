package mcp

import (
	"context"
	"os"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/otzar-labs/ketav-cli/internal/core/ports/driving"
)

// ConvertInput is the input schema for the convert tool.
type ConvertInput struct {
	Path   string `json:"path" jsonschema:"file or directory to convert"`
	H1     string `json:"h1,omitempty" jsonschema:"top-level heading applied to the output"`
	H2     string `json:"h2,omitempty" jsonschema:"second-level heading (defaults to the source directory name)"`
	OutDir string `json:"out_dir,omitempty" jsonschema:"destination directory for output files"`
	Tree   bool   `json:"tree,omitempty" jsonschema:"treat the path as a directory tree and convert each leaf directory"`
}

// ConvertOutput is the output schema for the convert tool.
type ConvertOutput struct {
	Converted []ConvertedFile `json:"converted"`
	Skipped   []string        `json:"skipped,omitempty"`
	Failed    []FailedDir     `json:"failed,omitempty"`
}

// ConvertedFile describes one successfully converted file.
type ConvertedFile struct {
	SourcePath string `json:"source_path"`
	Format     string `json:"format"`
	OutputPath string `json:"output_path"`
	DocumentID string `json:"document_id,omitempty"`
	Paragraphs int    `json:"paragraphs"`
}

// FailedDir describes one directory that failed during a tree run.
type FailedDir struct {
	Dir   string `json:"dir"`
	Error string `json:"error"`
}

// FormatsOutput is the output schema for the formats tool.
type FormatsOutput struct {
	Formats []FormatInfo `json:"formats"`
}

// FormatInfo describes one registered format reader.
type FormatInfo struct {
	Format     string   `json:"format"`
	Priority   int      `json:"priority"`
	Extensions []string `json:"extensions,omitempty"`
	Probed     bool     `json:"probed"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert",
		Description: "Convert legacy Hebrew documents into the canonical chunked JSON form",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "formats",
		Description: "List the supported source formats and their selection priority",
	}, s.handleFormats)
}

// handleConvert handles the convert tool invocation.
func (s *Server) handleConvert(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	opts := driving.ConvertOptions{
		H1:     input.H1,
		H2:     input.H2,
		OutDir: input.OutDir,
	}

	if input.Tree {
		tree, err := s.ports.Converter.ConvertTree(ctx, input.Path, opts)
		if err != nil {
			return nil, ConvertOutput{}, err
		}
		return nil, treeOutput(tree), nil
	}

	result, err := convertSingle(ctx, s.ports.Converter, input.Path, opts)
	if err != nil {
		return nil, ConvertOutput{}, err
	}
	return nil, ConvertOutput{Converted: []ConvertedFile{convertedFile(result)}}, nil
}

// convertSingle routes a path to ConvertFile or ConvertDir depending on
// whether it names a directory.
func convertSingle(
	ctx context.Context,
	converter driving.Converter,
	path string,
	opts driving.ConvertOptions,
) (*driving.FileResult, error) {
	if isDir(path) {
		return converter.ConvertDir(ctx, path, opts)
	}
	return converter.ConvertFile(ctx, path, opts)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func treeOutput(tree *driving.TreeResult) ConvertOutput {
	out := ConvertOutput{
		Converted: make([]ConvertedFile, len(tree.Converted)),
		Skipped:   tree.Skipped,
	}
	for i := range tree.Converted {
		out.Converted[i] = convertedFile(&tree.Converted[i])
	}
	for dir, err := range tree.Failed {
		out.Failed = append(out.Failed, FailedDir{Dir: dir, Error: err.Error()})
	}
	sort.Slice(out.Failed, func(i, j int) bool {
		return out.Failed[i].Dir < out.Failed[j].Dir
	})
	return out
}

func convertedFile(r *driving.FileResult) ConvertedFile {
	return ConvertedFile{
		SourcePath: r.SourcePath,
		Format:     r.Format.String(),
		OutputPath: r.OutputPath,
		DocumentID: r.DocumentID,
		Paragraphs: r.Paragraphs,
	}
}

// handleFormats handles the formats tool invocation.
func (s *Server) handleFormats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, FormatsOutput, error) {
	output := FormatsOutput{}
	if s.ports.Registry == nil {
		return nil, output, nil
	}

	for _, reader := range s.ports.Registry.Readers() {
		exts := reader.Extensions()
		output.Formats = append(output.Formats, FormatInfo{
			Format:     strings.ToLower(reader.Format().String()),
			Priority:   reader.Priority(),
			Extensions: exts,
			Probed:     len(exts) == 0,
		})
	}
	return nil, output, nil
}
