package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	soljsx "github.com/Frank-III/solid-jsx-go"
	"github.com/Frank-III/solid-jsx-go/dom"
)

var (
	outDir           string
	watch            bool
	noDelegateEvents bool
	extraDelegated   []string
	helperModule     string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build [dir|file]",
	Short: "Compile .jsx files to JavaScript modules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		opts := buildOptions()

		target := args[0]
		info, err := os.Stat(target)
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return buildFile(logger, opts, filepath.Dir(target), target)
		}

		if err := buildDir(logger, opts, target); err != nil {
			return err
		}
		if !watch {
			return nil
		}
		return watchDir(logger, opts, target)
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (defaults to the source directory)")
	buildCmd.Flags().BoolVarP(&watch, "watch", "w", false, "Recompile when source files change")
	buildCmd.Flags().BoolVar(&noDelegateEvents, "no-delegate-events", false, "Disable the event delegation fast path")
	buildCmd.Flags().StringArrayVar(&extraDelegated, "delegated-event", nil, "Extra event name to delegate (repeatable)")
	buildCmd.Flags().StringVar(&helperModule, "module", "", "Import source for runtime helpers")
}

func buildOptions() *dom.Options {
	opts := dom.NewOptions()
	opts.DelegateEvents = !noDelegateEvents
	opts.DelegatedEvents = extraDelegated
	if helperModule != "" {
		opts.ModuleName = helperModule
	}
	return opts
}

func buildDir(logger *slog.Logger, opts *dom.Options, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".jsx") {
			return nil
		}
		return buildFile(logger, opts, dir, path)
	})
}

func buildFile(logger *slog.Logger, opts *dom.Options, baseDir, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	out, err := soljsx.Compile(filepath.ToSlash(path), f, opts)
	if err != nil {
		return fmt.Errorf("compile %s: %w", path, err)
	}

	dst := strings.TrimSuffix(path, ".jsx") + ".js"
	if outDir != "" {
		rel, err := filepath.Rel(baseDir, dst)
		if err != nil {
			return err
		}
		dst = filepath.Join(outDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(dst, []byte(out), 0o644); err != nil {
		return err
	}
	logger.Info("Compiled", "src", path, "dst", dst)
	return nil
}

// watchDir blocks, recompiling any .jsx file that changes under dir.
func watchDir(logger *slog.Logger, opts *dom.Options, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info("Watching for changes", "dir", dir)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(ev.Name, ".jsx") {
				continue
			}
			if err := buildFile(logger, opts, dir, ev.Name); err != nil {
				logger.Error("Compile failed", "src", ev.Name, "error", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("Watcher error", "error", err)
		}
	}
}
