// Package embedder provides text embedding clients for echo-home's
// vector index.
//
// The Client interface is implemented by an OpenAI-backed client and a
// local in-process client. Decorators compose around any Client:
//
//   - NewRetryClient adds bounded retries with exponential backoff
//   - NewBreakerClient adds a circuit breaker so a failing provider
//     trips fast instead of queueing timeouts
//   - NewCachedClient adds a badger-backed cache keyed by content hash,
//     so rebuilding the index after a restart skips the provider
//     entirely for unchanged node texts
//
// Batches larger than the provider limit are chunked transparently.
package embedder
