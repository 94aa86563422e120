// Package analyzer extracts structured entities, intent and urgency
// from free-text energy questions.
//
// The primary path is pure pattern matching over keyword tables, which
// answers in microseconds and needs no API calls. An optional LLM
// refinement can fill entities the patterns missed; its JSON output is
// repaired before decoding since models routinely emit almost-JSON.
package analyzer
