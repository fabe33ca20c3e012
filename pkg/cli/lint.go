package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/lint"
	"github.com/sourcegraph/conc/pool"
)

// MaxConcurrentLints caps the goroutines linting a batch of files.
const MaxConcurrentLints = 8

// FileResult is the outcome of linting one flow file.
type FileResult struct {
	Path        string
	Diagnostics []lint.Diagnostic
	Err         error
	source      string
}

// LintFile reads and validates a single flow file. The engine's runFlow
// existence rule resolves targets relative to the file's directory, so
// the path is made absolute first.
func LintFile(path string) FileResult {
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: err}
	}
	location := path
	if abs, absErr := filepath.Abs(path); absErr == nil {
		location = abs
	}

	text := string(content)
	diags := lint.Validate(text, location)
	diags = append(diags, lint.ValidateConfig(text)...)
	return FileResult{Path: path, Diagnostics: diags, source: text}
}

// LintFiles lints every flow file reachable from paths and renders the
// findings. It returns an error when any file produced an error-level
// diagnostic or could not be read, so the CLI exits non-zero.
func LintFiles(paths []string, verbose bool) error {
	files, err := resolveFlowFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no flow files found; flows are YAML files starting with an appId line")
	}

	spin := console.NewSpinner(fmt.Sprintf("Linting %d flow file(s)...", len(files)))
	spin.Start()
	p := pool.NewWithResults[FileResult]().WithMaxGoroutines(MaxConcurrentLints)
	for _, file := range files {
		p.Go(func() FileResult {
			return LintFile(file)
		})
	}
	results := p.Wait()
	spin.Stop()

	summary := console.Summary{Files: len(results)}
	var unreadable int
	for _, result := range results {
		if result.Err != nil {
			unreadable++
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(fmt.Sprintf("%s: %v", result.Path, result.Err)))
			continue
		}
		printFileResult(result)
		for _, d := range result.Diagnostics {
			if d.Severity == lint.SeverityError {
				summary.Errors++
			} else {
				summary.Warnings++
			}
		}
	}

	if verbose {
		fmt.Println(console.RenderTable(
			[]string{"File", "Errors", "Warnings"},
			summaryRows(results),
		))
	}
	fmt.Println(console.FormatSummary(summary))

	if unreadable > 0 {
		return fmt.Errorf("failed to read %d file(s)", unreadable)
	}
	if summary.Errors > 0 {
		return fmt.Errorf("found %d error(s)", summary.Errors)
	}
	return nil
}

// printFileResult writes each diagnostic of one file in IDE-parseable
// form with its source line as context.
func printFileResult(result FileResult) {
	lines := strings.Split(result.source, "\n")
	for _, d := range result.Diagnostics {
		finding := console.Finding{
			File:    result.Path,
			Line:    d.Line,
			Column:  d.Range.StartPos.Column + 1,
			Level:   d.Severity.String(),
			Message: d.Message,
		}
		if d.Line >= 1 && d.Line <= len(lines) {
			finding.Context = lines[d.Line-1]
		}
		fmt.Print(console.FormatFinding(finding))
	}
}

func summaryRows(results []FileResult) [][]string {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		if result.Err != nil {
			rows = append(rows, []string{result.Path, "unreadable", ""})
			continue
		}
		var errs, warns int
		for _, d := range result.Diagnostics {
			if d.Severity == lint.SeverityError {
				errs++
			} else {
				warns++
			}
		}
		rows = append(rows, []string{result.Path, strconv.Itoa(errs), strconv.Itoa(warns)})
	}
	return rows
}
