package messages

// System messages for filesystem and locking failures.
const (
	// HistoryReadFailedFmt formats history file read errors.
	HistoryReadFailedFmt  = "failed to read history file %s: %w"
	HistoryWriteFailedFmt = "failed to write history file %s: %w"

	LockOpenFailedFmt    = "failed to open lock file %s: %w"
	LockAcquireFailedFmt = "failed to lock %s: %w"
	LockTimeoutFmt       = "timed out waiting for lock on %s"

	CreateDirFailedFmt = "failed to create directory %s: %w"
)
