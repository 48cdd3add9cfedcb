// Package datepart implements date_part-style field extraction over dates,
// timestamps, and intervals.
//
// Fields form a closed enumeration. Each field carries a static
// applicability mask (which value kinds it is legal on) and a fixed result
// type, so the (field, value kind) -> (computation, type) mapping is total
// over the supported set and checked in one place. External field-name
// strings enter the enumeration only through ParseField.
//
//	f, err := datepart.ParseField("minute")
//	res, err := datepart.Extract(f, iv) // res.Int == 55, res.Type == tinyint
//
// Extraction is pure and deterministic; values are never mutated and the
// extractor is safe for unsynchronized concurrent use.
package datepart
