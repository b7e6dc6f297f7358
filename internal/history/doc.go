// Package history persists run history in SQLite: one row per completed
// translation plus a small engine-state table remembering the last used
// model. Recording honors the configured history limit by pruning the
// oldest rows.
package history
