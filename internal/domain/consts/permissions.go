package consts

// Recommended permissions for files and directories audionorm might create.
const (
	PermsHomeProgDir = 0o755
	PermsLogFile     = 0o644
)
