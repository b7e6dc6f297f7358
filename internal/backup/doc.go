// Package backup preserves copies of files before destructive writes.
//
// Each copy lands in a flat directory next to a meta.json ledger recording
// source path, copy path, and expiry. Expired copies are pruned whenever a
// new backup is taken. A file lock serializes ledger updates so concurrent
// runs cannot clobber each other's records.
package backup
