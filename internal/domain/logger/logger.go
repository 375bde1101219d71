// Package logger holds the program logger.
package logger

import "audionorm/internal/logging"

// Pl holds the global *ProgramLogger variable.
var Pl = logging.Discard()
