// Package datetime provides small time helpers: unit constructors, compact
// duration formatting, human-readable relative time and lenient date
// parsing.
//
//	datetime.PrettyDuration(45 * time.Hour)          // "1d 21h"
//	datetime.PrettyTimeDiff(then, time.Now())        // "2 minutes ago"
package datetime
