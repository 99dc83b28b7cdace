package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	soljsx "github.com/Frank-III/solid-jsx-go"
)

var addr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve [dir]",
	Short: "Serve a directory of JSX views with on-the-fly compilation and live reload",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		dir := args[0]

		handler := &soljsx.Handler{
			FileSystem: os.DirFS(dir),
			Options:    buildOptions(),
			Logger:     logger,
		}

		go notifyOnChange(logger, handler, dir)

		logger.Info("Serving", "dir", dir, "addr", addr)
		return http.ListenAndServe(addr, handler)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&addr, "addr", "localhost:8080", "Address to listen on")
}

// notifyOnChange pushes a live-reload notification whenever a source file
// under dir changes.
func notifyOnChange(logger *slog.Logger, h *soljsx.Handler, dir string) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Error("Create watcher", "error", err)
		return
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
		logger.Error("Watch dir", "error", err)
		return
	}

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if strings.HasPrefix(filepath.Base(ev.Name), ".") {
				continue
			}
			logger.Debug(fmt.Sprintf("Changed: %s", ev.Name))
			h.NotifyReload()
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error("Watcher error", "error", err)
		}
	}
}
