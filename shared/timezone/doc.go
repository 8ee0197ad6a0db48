// Package timezone provides the application clock and timezone helpers.
//
// Due dates and reminder fire times are compared against Now, so every component that
// needs "the current time" goes through this package (or an injected clock defaulting to it).
//
// Usage:
//
//	now := timezone.Now()                     // current time in the app timezone
//	due := timezone.ToAppTime(item.DueDate)   // convert a stored instant for display
//	s := timezone.Format(due, time.RFC3339)   // format in the app timezone
//	t, err := timezone.Parse(layout, "...")   // parse a wall-clock value in the app timezone
//
// The timezone is read from APP_TIMEZONE when the package is imported and falls back to
// UTC. Use IANA names such as "UTC", "Asia/Shanghai" or "Europe/London".
package timezone
