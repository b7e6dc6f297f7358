// Package catalog holds the static provider and model tables: which LLM
// providers exist, which models they serve, how API keys are resolved from
// the environment, and the whisper speech-model lineup.
package catalog
