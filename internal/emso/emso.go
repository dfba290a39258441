// Package emso implements validation of the Slovenian EMŠO personal
// identification number. The 13th digit is a control digit computed as a
// weighted sum over the first 12 digits, modulo 11.
// See http://www.uradni-list.si/1/objava.jsp?urlid=19998&stevilka=345
package emso

import "fmt"

// Length is the number of digits in a complete EMŠO.
const Length = 13

// weights applied to digit positions 0-11 when computing the control digit.
var weights = [12]int{7, 6, 5, 4, 3, 2, 7, 6, 5, 4, 3, 2}

// ControlDigit computes the control digit for the first 12 digits of s.
// s must be at least 12 characters long and the first 12 characters must be
// ASCII decimal digits.
//
// Note the computed value can be 10, which no single decimal digit can
// represent; any EMŠO whose prefix yields 10 is unconditionally invalid.
func ControlDigit(s string) (int, error) {
	if len(s) < Length-1 {
		return 0, fmt.Errorf("EMŠO prefix too short: need %d digits, got %d", Length-1, len(s))
	}

	sum := 0
	for i := 0; i < Length-1; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("EMŠO contains non-digit character %q at position %d", c, i)
		}
		sum += int(c-'0') * weights[i]
	}

	rem := sum % 11
	if rem == 0 {
		return 0, nil
	}
	return 11 - rem, nil
}

// Validate reports whether s is a well-formed EMŠO: at least 13 characters,
// the first 13 all decimal digits, with the 13th matching the control digit
// computed from the first 12.
func Validate(s string) bool {
	if len(s) < Length {
		return false
	}

	control, err := ControlDigit(s)
	if err != nil {
		return false
	}

	last := s[Length-1]
	if last < '0' || last > '9' {
		return false
	}

	return control == int(last-'0')
}
