// Package timezone holds the single operating timezone of the provider.
//
// Usage Examples:
//
//  1. Reading the current time in the operating zone:
//     now := timezone.Now()
//
//  2. Injecting a clock into a service, and pinning it in tests:
//     svc := service.New(..., timezone.NewClock(), ...)
//     svc := service.New(..., timezone.FixedClock(monday9am), ...)
//
//  3. Parsing a calendar date as local midnight:
//     day, err := timezone.Parse(time.DateOnly, "2026-10-19")
//
// The zone is read from APP_TIMEZONE (IANA name such as "Europe/Moscow") when the package is
// imported. The IANA database is embedded so the zone resolves on hosts without tzdata.
package timezone
