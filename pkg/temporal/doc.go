// Package temporal provides the immutable temporal value types used by the
// field extractor: calendar dates, microsecond-precision timestamps, and the
// two ANSI interval classes (year-to-month and day-to-second).
//
// Values are plain structs constructed from literals and never mutated.
// Timestamps carry no timezone; all calendar math is proleptic Gregorian.
package temporal
