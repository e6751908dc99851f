// Package acctcode decomposes TEA account codes into their fixed-width
// segments. A full code is 19 numeric digits:
//
//	fund [0:3] function [3:5] object [5:9] sub-object [9:13] location [13:19]
package acctcode

import (
	"fmt"
	"strings"
)

// FullLen is the length of a complete account code.
const FullLen = 19

// MinLen is the shortest code that still yields a valid object code.
const MinLen = 9

// Segments holds the five fixed-width components of an account code.
type Segments struct {
	FundCode      string
	FunctionCode  string
	ObjectCode    string
	SubObjectCode string
	LocationCode  string
}

// Parse splits a code into its segments. It never fails: codes shorter than
// 19 characters are right-padded with zeros before slicing.
func Parse(code string) Segments {
	padded := Pad(code)
	return Segments{
		FundCode:      padded[0:3],
		FunctionCode:  padded[3:5],
		ObjectCode:    padded[5:9],
		SubObjectCode: padded[9:13],
		LocationCode:  padded[13:19],
	}
}

// Pad right-pads a code with zeros to the full 19-character width.
func Pad(code string) string {
	if len(code) >= FullLen {
		return code[:FullLen]
	}
	return code + strings.Repeat("0", FullLen-len(code))
}

// ObjectCode returns the 4-digit object code, or ok=false when the code is
// too short to carry one.
func ObjectCode(code string) (string, bool) {
	if len(code) < MinLen {
		return "", false
	}
	return code[5:9], true
}

// FunctionCode returns the 2-digit function code, or ok=false when the code
// is too short to carry one.
func FunctionCode(code string) (string, bool) {
	if len(code) < 5 {
		return "", false
	}
	return code[3:5], true
}

// FundCode returns the 3-digit fund code, or ok=false when the code is too
// short to carry one.
func FundCode(code string) (string, bool) {
	if len(code) < 3 {
		return "", false
	}
	return code[0:3], true
}

// Validate checks that the fund/function/object window (the first 9
// characters) is present and numeric.
func Validate(code string) error {
	if len(code) < MinLen {
		return fmt.Errorf("account code %q too short: minimum %d digits required", code, MinLen)
	}
	for i := 0; i < MinLen; i++ {
		if code[i] < '0' || code[i] > '9' {
			return fmt.Errorf("account code %q contains non-numeric character at position %d", code, i)
		}
	}
	return nil
}
