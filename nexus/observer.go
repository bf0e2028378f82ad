package nexus

import "github.com/file-command-nexus/nexus/observability"

// Controller event types emitted during the upload/execute lifecycle.
const (
	EventUploadStart     observability.EventType = "nexus.upload.start"
	EventUploadComplete  observability.EventType = "nexus.upload.complete"
	EventUploadError     observability.EventType = "nexus.upload.error"
	EventExecuteStart    observability.EventType = "nexus.execute.start"
	EventExecuteComplete observability.EventType = "nexus.execute.complete"
	EventExecuteError    observability.EventType = "nexus.execute.error"
	EventLedgerClear     observability.EventType = "nexus.ledger.clear"
	EventCleanup         observability.EventType = "nexus.cleanup"
)
