package bn254

import "errors"

// ErrZeroDivision is returned by Invert on every tower layer when the
// receiver has no multiplicative inverse (is the zero element, or has
// zero norm one layer down).
var ErrZeroDivision = errors.New("bn254: division by zero field element")
