package finance

// ValidateColombianID reports whether id looks like a valid cédula:
// 6 to 10 characters, decimal digits only.
func ValidateColombianID(id string) bool {
	if len(id) < 6 || len(id) > 10 {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
