// Package language provides the translation language registry.
//
// All language-code concerns (ISO 639-1/2 validation, Chinese script
// variants, display names, source-language "auto") are consolidated here so
// the engine, settings, and CLI agree on what counts as a language.
package language
