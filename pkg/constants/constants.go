package constants

// CLIName is how user-facing output refers to the linter binary.
const CLIName = "flowlint"

// FlowFileExtensions are the file extensions flow documents may carry.
var FlowFileExtensions = []string{".yaml", ".yml"}

// FlowDirName is the conventional directory Maestro flows live under; any
// YAML file below it is treated as a flow without sniffing its content.
const FlowDirName = ".maestro"
