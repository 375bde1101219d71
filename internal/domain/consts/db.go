package consts

// Tables
const (
	DBNormalizations = "normalizations"
)

// Normalizations
const (
	QNormID         = "id"
	QNormFilePath   = "filepath"
	QNormStage      = "stage"
	QNormParams     = "params"
	QNormStatus     = "status"
	QNormError      = "error"
	QNormStartedAt  = "started_at"
	QNormFinishedAt = "finished_at"
)

// Run statuses stored in the normalizations table.
const (
	RunStatusRunning = "running"
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"
)
