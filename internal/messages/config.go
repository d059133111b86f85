package messages

// Config messages for configuration loading and validation.
const (
	// ConfigReadFailedFmt formats config file read errors.
	ConfigReadFailedFmt         = "failed to read config file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s contains unrecognized keys: %w."
	ConfigFailedReadTemplateFmt = "failed to read default config template: %w"
	ConfigHomeDirFailedFmt      = "failed to determine home directory: %w"
	ConfigValidationGuidance    = "Run 'cd-history init --force' to restore the default config."

	ConfigMaxEntriesInvalidFmt   = "%s: history.max-entries must be greater than zero"
	ConfigColorModeInvalidFmt    = "%s: output.color must be one of auto, always, never"
	ConfigIgnorePatternBadFmt    = "%s: history.ignore pattern %q is not a valid glob: %w"
	ConfigHistoryFileRequiredFmt = "%s: history.file must not be empty"
)
