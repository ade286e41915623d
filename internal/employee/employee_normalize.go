package employee

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Normalizers are total functions over whatever a spreadsheet cell may hold.
// They never fail: unrecognized input comes back as "" and the validator
// decides what that means for the row.

var (
	isoDatePrefixRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	brDateRe        = regexp.MustCompile(`^(\d{2})[/.\-](\d{2})[/.\-](\d{4})$`)
	nonDigitsRe     = regexp.MustCompile(`\D`)
)

// Excel date serials for 1927..2119. Outside this window a bare number is
// far more likely to be a year or a stray integer than a date cell.
const (
	minDateSerial = 10000
	maxDateSerial = 80000
)

// NormalizeDate converts a raw cell value into ISO YYYY-MM-DD. Accepted
// inputs: Excel numeric date serials, ISO-prefixed strings (time suffix
// dropped) and day-month-year text with "/", "-" or "." separators.
func NormalizeDate(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}

	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		if serial >= minDateSerial && serial <= maxDateSerial {
			if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
				return t.Format("2006-01-02")
			}
		}
		return ""
	}

	if m := isoDatePrefixRe.FindStringSubmatch(s); m != nil {
		return s[:10]
	}

	if m := brDateRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s-%s-%s", m[3], m[2], m[1])
	}

	return ""
}

// NormalizePhone strips punctuation and re-applies the Brazilian pattern.
// Empty when the cell has no digits at all.
func NormalizePhone(v string) string {
	digits := nonDigitsRe.ReplaceAllString(v, "")
	if digits == "" {
		return ""
	}
	return FormatPhoneBR(digits)
}

// FormatPhoneBR renders up to 11 digits as (DD) DDDDD-DDDD, falling back to
// the 4-digit local prefix when fewer digits are present. Partial inputs get
// partial punctuation; the function is idempotent over its own output.
func FormatPhoneBR(v string) string {
	digits := nonDigitsRe.ReplaceAllString(v, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	if len(digits) <= 2 {
		return digits
	}
	if len(digits) <= 6 {
		return fmt.Sprintf("(%s) %s", digits[:2], digits[2:])
	}

	p2 := sliceDigits(digits, 2, 7)
	p3 := sliceDigits(digits, 7, 11)
	return fmt.Sprintf("(%s) %s-%s", digits[:2], p2, p3)
}

// NormalizeCPF keeps only exactly-11-digit results; anything else is "".
func NormalizeCPF(v string) string {
	digits := nonDigitsRe.ReplaceAllString(v, "")
	if len(digits) != 11 {
		return ""
	}
	return digits
}

// FormatCPF renders digits as XXX.XXX.XXX-XX, progressively for partial
// input the same way the roster forms mask the field.
func FormatCPF(v string) string {
	digits := nonDigitsRe.ReplaceAllString(v, "")
	if len(digits) > 11 {
		digits = digits[:11]
	}
	p1 := sliceDigits(digits, 0, 3)
	p2 := sliceDigits(digits, 3, 6)
	p3 := sliceDigits(digits, 6, 9)
	p4 := sliceDigits(digits, 9, 11)

	switch {
	case len(digits) <= 3:
		return p1
	case len(digits) <= 6:
		return p1 + "." + p2
	case len(digits) <= 9:
		return p1 + "." + p2 + "." + p3
	default:
		return p1 + "." + p2 + "." + p3 + "-" + p4
	}
}

// FormatDateBR is the export-side inverse of NormalizeDate: ISO in,
// DD/MM/YYYY out. Already-Brazilian dates get their separators unified;
// anything else passes through untouched.
func FormatDateBR(v string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return ""
	}
	if m := isoDatePrefixRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s/%s/%s", m[3], m[2], m[1])
	}
	if m := brDateRe.FindStringSubmatch(s); m != nil {
		return fmt.Sprintf("%s/%s/%s", m[1], m[2], m[3])
	}
	return s
}

func sliceDigits(s string, from, to int) string {
	if from > len(s) {
		return ""
	}
	if to > len(s) {
		to = len(s)
	}
	return s[from:to]
}
