package main

import (
	"fmt"
	"os"

	"github.com/flowlint/flowlint/pkg/cli"
	"github.com/flowlint/flowlint/pkg/console"
	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/spf13/cobra"
)

// Build-time variables set by the release pipeline
var (
	version = "dev"
)

// Global flags
var verbose bool

var rootCmd = &cobra.Command{
	Use:   constants.CLIName,
	Short: "Lint Maestro flow files",
	Long: `flowlint validates Maestro mobile UI-test flow files.

A flow is a YAML document listing UI-test commands (tapOn, assertVisible,
scroll, ...) optionally preceded by a configuration document with the app
identifier. flowlint checks command structure, flags flaky-test patterns
and reports every finding with its exact source position.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var lintCmd = &cobra.Command{
	Use:   "lint [path ...]",
	Short: "Lint flow files or directories of flows",
	Long: `Lint flow files or directories of flows.

Directories are searched recursively for flow files: YAML files under a
.maestro directory or starting with an appId line. With no arguments the
current directory is searched.

Examples:
  ` + constants.CLIName + ` lint
  ` + constants.CLIName + ` lint .maestro/login.yaml
  ` + constants.CLIName + ` lint flows/ more-flows/`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.LintFiles(args, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and re-lint flows on change",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var dir string
		if len(args) > 0 {
			dir = args[0]
		}
		if err := cli.WatchFlows(dir, verbose); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List the supported flow commands",
	Run: func(cmd *cobra.Command, args []string) {
		cli.ListCommands(verbose)
	},
}

var docsCmd = &cobra.Command{
	Use:   "docs <command>",
	Short: "Show the usage note for one flow command",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.ShowDocs(args[0]); err != nil {
			fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
			os.Exit(1)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(console.FormatInfoMessage(fmt.Sprintf("%s version %s", constants.CLIName, cli.Version())))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output showing detailed information")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(commandsCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	cli.SetVersionInfo(version)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
