// Package generator turns a retrieval result into a natural-language
// answer via an OpenAI-compatible chat model, with a deterministic
// template fallback when the model is unreachable.
package generator
