// Package timezone keeps every timestamp the service produces or parses in one configured location.
//
//	now := timezone.Now()                          // current time in app timezone
//	today := timezone.Today()                      // midnight today, used for quote validity
//	d, err := timezone.Parse("2006-01-02", "2025-03-01")
//	s := timezone.Format(d, "2006-01-02")          // zero time formats as ""
//	day := timezone.FormatDate(quote.ValidUntil, "2006-01-02") // DATE column, never shifted
//
// The timezone is configured via the APP_TIMEZONE environment variable (IANA names only)
// and is initialized when the package is imported.
package timezone
