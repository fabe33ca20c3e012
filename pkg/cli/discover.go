// Package cli implements the flowlint command surface: discovering flow
// files, running the validation engine over them and rendering the
// results.
package cli

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flowlint/flowlint/pkg/constants"
)

// hasFlowExtension reports whether path carries a YAML extension.
func hasFlowExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range constants.FlowFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// HasFlowHeader reports whether content's first meaningful line declares
// an appId, the marker a YAML file is a flow document rather than some
// other YAML.
func HasFlowHeader(content string) bool {
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || line == "---" {
			continue
		}
		return strings.HasPrefix(line, "appId:")
	}
	return false
}

// IsFlowFile reports whether path is a flow document: a YAML file that
// either lives under a .maestro directory or opens with an appId line.
func IsFlowFile(path string) bool {
	if !hasFlowExtension(path) {
		return false
	}
	normalized := filepath.ToSlash(path)
	if strings.Contains(normalized, constants.FlowDirName+"/") {
		return true
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return HasFlowHeader(string(content))
}

// DiscoverFlowFiles walks root recursively and returns every flow file
// found, in walk order. Hidden VCS and dependency directories are
// skipped.
func DiscoverFlowFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			switch d.Name() {
			case ".git", "node_modules", "vendor":
				return filepath.SkipDir
			}
			return nil
		}
		if IsFlowFile(path) {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// resolveFlowFiles expands the lint command's path arguments: directories
// are searched recursively, explicit YAML files are taken as given, and
// no arguments means the current directory.
func resolveFlowFiles(paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if info.IsDir() {
			discovered, err := DiscoverFlowFiles(path)
			if err != nil {
				return nil, err
			}
			files = append(files, discovered...)
			continue
		}
		files = append(files, path)
	}
	return files, nil
}
