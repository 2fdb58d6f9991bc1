package ccsync

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Sync a Home Assistant integration into custom_components"
	MsgSyncShort       = "Copy the project into its packaging directory"
	MsgStageShort      = "Stage the packaging directory in git"
	MsgGenConfigShort  = "Print or write the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun  = "Preview changes without writing anything"
	MsgFlagRoot    = "Project root (default: current directory)"
	MsgFlagConfig  = "Config file to use instead of the project file"
	MsgFlagOutput  = "Output format: auto, term, text or json"
	MsgFlagStage   = "Stage the output in git after syncing"
	MsgFlagBackend = "Staging backend: exec or gogit"
	MsgFlagFormat  = "Config format: toml or yaml"
	MsgFlagWrite   = "Write the config to the project root instead of stdout"
	MsgFlagManDir  = "Directory the man pages are written to"

	// Output
	MsgVersionFormat = "ccsync version %s\n  commit: %s\n  built:  %s\n"
	MsgConfigWritten = "Wrote %s"
	MsgConfigExists  = "%s already exists, not overwritten"
	MsgManWritten    = "Man pages written to %s"

	// Error messages
	MsgErrOutputFormat = "invalid --output: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/sync-long.txt
	msgSyncLongRaw string
	MsgSyncLong    = strings.TrimSpace(msgSyncLongRaw)

	//go:embed msgs/sync-example.txt
	msgSyncExampleRaw string
	MsgSyncExample    = strings.TrimRight(msgSyncExampleRaw, "\n")

	//go:embed msgs/stage-long.txt
	msgStageLongRaw string
	MsgStageLong    = strings.TrimSpace(msgStageLongRaw)

	//go:embed msgs/genconfig-long.txt
	msgGenConfigLongRaw string
	MsgGenConfigLong    = strings.TrimSpace(msgGenConfigLongRaw)

	//go:embed msgs/genconfig-example.txt
	msgGenConfigExampleRaw string
	MsgGenConfigExample    = strings.TrimRight(msgGenConfigExampleRaw, "\n")

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
