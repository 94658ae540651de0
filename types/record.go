package types

import "time"

// Record is a single labeled input row of the sampling pool.
//
// The sampler only reads the three fields needed to derive a stratum key;
// everything else the concrete type carries is opaque payload that passes
// through to the output unchanged. Implementations must not mutate their
// state during a sampling run.
type Record interface {
	// Body returns the textual body used for word counting.
	// An empty string means the body is missing (zero words).
	Body() string

	// Date returns the record date. The zero time means the date is
	// undefined or was unparseable; such records are excluded from
	// stratification.
	Date() time.Time

	// Rating returns the integer rating label. Only consulted when rating
	// stratification is enabled; values outside 1-5 exclude the record.
	Rating() int
}
