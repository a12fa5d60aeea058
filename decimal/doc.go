// Package decimal provides a fixed point base 10 number.
//
// The equation for a decimal number is:
//
//	number = value * 10 ^ -scale
//
// Where number is fixed point number, value is an unscaled integer (see
// package integer), and scale is the count of fractional digits. For
// example:
//
//	1.23 = 123 * 10^-2
//
// All arithmetic is carried out on arbitrary precision integers. Nothing is
// ever rounded: operations that would drop a non-zero digit fail instead.
//
// # Parsing
//
// Parse accepts an optional sign, integer digits and an optional fraction.
// Either side of the point may be empty, but not both:
//
//	"12"     = 12 * 10^0
//	"-0.5"   = -5 * 10^-1
//	".25"    = 25 * 10^-2
//	"3."     = 3 * 10^0
//
// # Rendering
//
// String renders the shortest exact form. Trailing fractional zeros are
// removed, the point is dropped when no fraction remains and the integer
// part is always present:
//
//	1000 * 10^-3  = "1"
//	1 * 10^-9     = "0.000000001"
//	76912345678 * 10^-9 = "76.912345678"
//
// # Shifting
//
// Shift moves the point to the right (multiplies by a power of ten) and
// Unshift moves it to the left. Unshift never loses digits; it only grows
// the scale. Shift may leave a fraction behind which Integer then reports
// as an error.
package decimal
