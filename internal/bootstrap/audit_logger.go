package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operationally significant actions (shutdowns, roster
// lifecycle events) independently of the application log stream.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
