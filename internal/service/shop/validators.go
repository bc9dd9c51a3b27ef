package shop

import "strings"

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

// Код магазина — короткий алфавитно-цифровой идентификатор,
// его вводят вручную или сканируют из QR.
func isValidCode(code string) bool {
	if len(code) < 3 || len(code) > 16 {
		return false
	}
	for _, char := range code {
		switch {
		case char >= '0' && char <= '9':
		case char >= 'a' && char <= 'z':
		case char >= 'A' && char <= 'Z':
		default:
			return false
		}
	}
	return true
}
