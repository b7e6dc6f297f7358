// Package glot is the front door of a document/media translation engine.
//
// Callers describe a run with a Config (per-invocation options) and an
// optional Settings aggregate (persisted defaults, loadable from layered TOML
// files), then call Run or RunWithSettings. The engine validates the request,
// answers informational queries (language, style, model, and history
// listings) directly, and delegates actual translation, OCR, and speech
// recognition to a registered Translator collaborator. Outputs are written to
// disk when the run targets files; successful runs land in a local history
// database.
//
// The same surface is exported to C through cmd/libglot and to the command
// line through cmd/glot.
package glot
