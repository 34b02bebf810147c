// Package timezone centralizes time handling in the configured application
// timezone so that stored timestamps, report date filters, and generated
// maintenance order codes all agree on what "today" means.
package timezone
