package logging

import "context"

// Context key type to avoid collisions.
type contextKey string

const logDataContextKey contextKey = "logData"

// WithLogData returns a context carrying the request's LogData.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataContextKey, logData)
}

// GetLogData retrieves the request's LogData, or nil when the request did
// not come through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	if logData, ok := ctx.Value(logDataContextKey).(*LogData); ok {
		return logData
	}
	return nil
}
