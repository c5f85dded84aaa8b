// Package timezone pins every wall-clock computation of the service to one location.
//
// The journal history groups entries by calendar day, and that day depends on where the
// couple lives rather than on the database session timezone. Configure it with
// APP_TIMEZONE using IANA names ("UTC", "Europe/Berlin", "Asia/Jakarta").
//
//	now := timezone.Now()
//	day := timezone.Day(entry.Timestamp) // "2024-06-01"
package timezone
