package gbwt

import "go.uber.org/zap"

// logger is the package-wide diagnostic sink for corrupt compressed-record
// bytes (malformed headers, truncated run bodies), logged at Error before
// the matching panic. Nop by default; callers that want diagnostics call
// SetLogger.
var logger = zap.NewNop()

// SetLogger replaces the package's diagnostic logger. Passing nil
// restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
