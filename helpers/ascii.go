package helpers

func IsBetween(val rune, first, last rune) bool {
	if val > last {
		return false
	}
	if val >= first {
		return true
	}
	return false
}

// IsDigitChar matches the \d class: ASCII digits only.
func IsDigitChar(r rune) bool {
	return IsBetween(r, '0', '9')
}

// IsWordChar matches the \w class: ASCII letters, digits, and underscore.
// Deliberately narrower than the Unicode word-character definition.
func IsWordChar(r rune) bool {
	return IsBetween(r, 'a', 'z') ||
		IsBetween(r, 'A', 'Z') ||
		IsDigitChar(r) ||
		r == '_'
}
