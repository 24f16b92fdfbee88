package economics

import "errors"

// ErrInvalidConfig reports inputs rejected at the engine boundary: a discount
// rate <= -1, a non-positive horizon or lifetime, or a negative price,
// quantity or operating statistic. Wrapped errors carry the offending field.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrDegenerate reports inputs that make a requested metric undefined, such
// as zero served energy for COE and LCOE.
var ErrDegenerate = errors.New("degenerate computation")
