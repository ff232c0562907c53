// Package domain holds value types shared by every entity: calendar dates and
// fixed-point money. Both implement sql.Scanner and driver.Valuer so the same
// value binds identically in inserts, updates, and criteria comparisons.
package domain
