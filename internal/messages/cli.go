package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "cd-history"
	// RootShort is the short description for the root command.
	RootShort       = "Track and recall the directories you visit"
	RootVersionFlag = "Print version and exit"
	RootConfigFlag  = "Path to the config file (default ~/.config/cd-history/config.toml)"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// ResolveUse is the resolve command name.
	ResolveUse   = "resolve [path...]"
	ResolveShort = "Print the absolute form of a path, preferring root-level symlink names"

	// AddUse is the add command name.
	AddUse   = "add [dir]"
	AddShort = "Record a directory in the history (default: current directory)"

	AddNotADirectoryFmt = "not a directory: %s"

	// ListUse is the list command name.
	ListUse   = "list"
	ListShort = "Show recorded directories, most recent first"

	ListFlagLimit = "Show at most this many entries"
	ListFlagAll   = "Show all entries"

	// PruneUse is the prune command name.
	PruneUse   = "prune"
	PruneShort = "Drop history entries whose directories no longer exist"

	PruneFlagDryRun  = "Show what would be removed without writing the history file"
	PruneWouldDrop   = "would remove:"
	PruneDroppedFmt  = "removed %d entries"
	PruneNothingToDo = "nothing to remove"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Write the default config file"

	InitFlagForce           = "Overwrite an existing config file without prompting"
	InitWroteFmt            = "wrote %s"
	InitUpToDateFmt         = "%s already matches the default config"
	InitDiffHeaderFmt       = "Existing config %s differs from the default:"
	InitOverwritePromptFmt  = "Overwrite %s with the default config?"
	InitRequiresTerminal    = "overwrite prompts require an interactive terminal; re-run with --force to overwrite without prompting"
	InitAborted             = "init aborted; config file left unchanged"
	InitReadExistingFailFmt = "failed to read existing config %s: %w"
)
