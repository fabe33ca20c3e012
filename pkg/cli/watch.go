package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/fsnotify/fsnotify"
)

// debounceDelay batches rapid editor writes into one re-lint, mirroring
// the fire-and-replace semantics of on-change validation.
const debounceDelay = 300 * time.Millisecond

// WatchFlows watches dir (recursively) for flow file changes and re-lints
// each changed file. It blocks until the watcher fails.
func WatchFlows(dir string, verbose bool) error {
	if dir == "" {
		dir = "."
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, dir); err != nil {
		return err
	}

	fmt.Println(console.FormatInfoMessage(fmt.Sprintf("Watching for flow changes in %s... press Ctrl+C to stop", dir)))

	var mu sync.Mutex
	modified := make(map[string]struct{})
	var debounce *time.Timer

	relint := func() {
		mu.Lock()
		files := make([]string, 0, len(modified))
		for file := range modified {
			files = append(files, file)
		}
		modified = make(map[string]struct{})
		mu.Unlock()

		for _, file := range files {
			if verbose {
				fmt.Println(console.FormatInfoMessage("Change detected: " + file))
			}
			result := LintFile(file)
			if result.Err != nil {
				fmt.Println(console.FormatErrorMessage(fmt.Sprintf("%s: %v", file, result.Err)))
				continue
			}
			if len(result.Diagnostics) == 0 {
				fmt.Println(console.FormatSuccessMessage(file + ": no findings"))
				continue
			}
			printFileResult(result)
		}
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !IsFlowFile(event.Name) {
				continue
			}
			mu.Lock()
			modified[event.Name] = struct{}{}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, relint)
			mu.Unlock()
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			fmt.Println(console.FormatWarningMessage(watchErr.Error()))
		}
	}
}

// addWatchDirs registers dir and all its subdirectories with the watcher;
// fsnotify does not recurse on its own.
func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		switch d.Name() {
		case ".git", "node_modules", "vendor":
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", path, err)
		}
		return nil
	})
}
