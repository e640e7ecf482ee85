// Package retry provides exponential backoff retry logic with jitter and
// context cancellation support.
//
// SemPath uses it around remote graph fetches: transient transport failures
// may be retried before the fetch is reported as failed, while protocol
// errors are wrapped with NonRetryable so a malformed response is never
// re-requested within the same fetch.
//
// Basic usage:
//
//	err := retry.Do(ctx, retry.DefaultConfig(), func() error {
//	    return client.call()
//	})
//
// For operations that produce a value:
//
//	edges, err := retry.DoWithResult(ctx, cfg, func() ([]graph.Edge, error) {
//	    return fetchOnce(ctx, node)
//	})
package retry
