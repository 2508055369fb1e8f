package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saikrishna1355/ai-comments/analyzer"
	"github.com/saikrishna1355/ai-comments/console"
	"github.com/saikrishna1355/ai-comments/logger"
	"github.com/saikrishna1355/ai-comments/walker"
)

var (
	dryRun       bool
	verbose      bool
	contextLines int
)

var rootCmd = &cobra.Command{
	Use:   "ai-comments [directory]",
	Short: "Insert generated documentation comments above undocumented functions",
	Long: `ai-comments scans a directory tree of JavaScript/TypeScript sources,
finds function declarations that have no comment directly above them, and
inserts a short generated description for each one.

Generation is heuristic and fully offline: the verb comes from the function
name, parameters from the signature line, and side-effect phrases from a
bounded window of the body. Running the tool twice is safe; functions that
already carry a comment are left alone.`,
	Version:      "0.1.0",
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetDebug()
		}
		target := "src"
		if len(args) > 0 {
			target = args[0]
		}
		return run(cmd.Context(), target)
	},
}

func Execute() {
	err := rootCmd.Execute()
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, target string) error {
	out := console.New()
	log := logger.Logger()

	root, err := filepath.Abs(target)
	if err != nil {
		return fmt.Errorf("failed to resolve target directory %q: %w", target, err)
	}
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("target path %s does not exist or is not a directory", root)
	}

	files, err := walker.Collect(root)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", root, err)
	}
	if len(files) == 0 {
		out.Printf("No source files found under %s", root)
		return nil
	}

	out.Printf("Found %d source file(s) under %s", len(files), root)
	if dryRun {
		out.Noticef("Dry run: files will be analyzed but not modified")
	}

	transformer := analyzer.NewTransformer(analyzer.NewHeuristicSource(), contextLines)

	updated := 0
	for _, file := range files {
		changed, err := processFile(ctx, transformer, file)
		if err != nil {
			// One file's failure must not abort the batch.
			out.Warnf("Skipping %s: %v", file, err)
			log.Warnw("file processing failed", "file", file, "error", err)
			continue
		}
		if !changed {
			log.Debugw("no undocumented functions", "file", file)
			continue
		}
		updated++
		if dryRun {
			out.Printf("Would update %s", file)
		} else {
			out.Printf("Updated %s", file)
		}
	}

	if dryRun {
		out.Successf("Dry run complete: %d of %d file(s) would be updated", updated, len(files))
	} else {
		out.Successf("Updated %d of %d file(s)", updated, len(files))
	}
	return nil
}

func processFile(ctx context.Context, transformer *analyzer.Transformer, path string) (bool, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("failed to read file: %w", err)
	}

	result := transformer.Transform(ctx, string(content), path)
	if result == string(content) {
		return false, nil
	}
	if dryRun {
		return true, nil
	}

	if err := os.WriteFile(path, []byte(result), 0o644); err != nil {
		return false, fmt.Errorf("failed to write file: %w", err)
	}
	return true, nil
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "analyze and report files without writing changes")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	rootCmd.Flags().IntVar(&contextLines, "context-lines", analyzer.DefaultSnippetLines, "number of lines fed to the comment heuristics per function")
}
