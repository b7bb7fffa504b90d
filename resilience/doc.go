// Package resilience provides async control-flow middleware: retry with
// pluggable backoff, keyed concurrency limiting, rate limiting and timeouts.
//
// Every helper comes as a direct call taking a context and a function, and
// as a middleware that wraps a func(context.Context, A) (R, error) into a
// function of the same shape:
//
//	limiter := resilience.NewKeyedLimiter(resilience.DefaultConcurrencyConfig("api"))
//	fetch := resilience.Concurrent(fetchEndpoint, limiter, func(r Request) string { return r.Endpoint })
//	fetch = resilience.RetryOnFail(fetch, resilience.DefaultRetryConfig())
//	fetch = resilience.WithTimeout(fetch, "fetch", 5*time.Second)
//
// Failures are reported as *errors.AppError values with the codes TIMEOUT,
// RATE_LIMITED, CONCURRENCY_LIMIT and RETRIES_EXHAUSTED. Retries, rejected
// admissions and timeouts are logged through logger.Get("resilience") and
// recorded on the observability instruments.
package resilience
