package gst

import "strings"

// States is the enumerated list of jurisdictions a Party may belong to.
var States = []string{
	"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh", "Goa", "Gujarat",
	"Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka", "Kerala", "Madhya Pradesh",
	"Maharashtra", "Manipur", "Meghalaya", "Mizoram", "Nagaland", "Odisha", "Punjab",
	"Rajasthan", "Sikkim", "Tamil Nadu", "Telangana", "Tripura", "Uttar Pradesh",
	"Uttarakhand", "West Bengal", "Delhi",
}

// IsState reports whether s names a known jurisdiction (case-insensitive).
func IsState(s string) bool {
	for _, st := range States {
		if strings.EqualFold(st, s) {
			return true
		}
	}
	return false
}

const gstinLength = 15

// NormalizeGSTIN trims, uppercases and truncates a tax registration code to
// its fixed length. No checksum validation is performed.
func NormalizeGSTIN(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) > gstinLength {
		s = s[:gstinLength]
	}
	return s
}
