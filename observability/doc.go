// Package observability provides the OpenTelemetry instruments and spans
// emitted by the fnkit resilience helpers.
//
// Instruments come from the global meter provider, which is a no-op until
// the embedding application installs one. Applications without their own
// OpenTelemetry setup can use InitMeter and InitTracer:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("my-service"))
//	defer mp.Shutdown(ctx)
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("my-service"))
//	defer tp.Shutdown(ctx)
//
// Recorded instruments:
//
//	retry.attempts        counter    attempts made by resilience.Retry
//	concurrency.active    up-down    calls holding a KeyedLimiter slot
//	concurrency.wait      histogram  seconds spent waiting for a slot
//	ratelimit.rejected    counter    calls refused by a RateLimiter
//	timeout.total         counter    calls cut off by resilience.Timeout
package observability
