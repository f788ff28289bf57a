package formatting

import "fmt"

// FormatTaka formats an amount in Taka, e.g. "৳2,000".
func FormatTaka(amount int) string {
	return "৳" + groupDigits(amount)
}

// FormatRate formats an hourly rate, e.g. "৳2,000/hr".
func FormatRate(rate int) string {
	return FormatTaka(rate) + "/hr"
}

// groupDigits inserts thousand separators into a non-negative amount.
func groupDigits(amount int) string {
	if amount < 0 {
		return fmt.Sprintf("%d", amount)
	}

	s := fmt.Sprintf("%d", amount)
	if len(s) <= 3 {
		return s
	}

	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
