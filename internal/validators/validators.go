package validators

import (
	"regexp"
	"strings"

	"github.com/ebarbosa87/pixmart/internal/models"
)

var (
	nonDigits   = regexp.MustCompile(`\D`)
	emailRe     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phoneRe     = regexp.MustCompile(`^\d{10,14}$`)
	randomKeyRe = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

// CheckCPF validates the Brazilian CPF check digits
func CheckCPF(cpf string) bool {
	cpf = nonDigits.ReplaceAllString(cpf, "")
	if len(cpf) != 11 {
		return false
	}

	// sequences like 00000000000 pass the checksum but are not valid documents
	if strings.Count(cpf, string(cpf[0])) == 11 {
		return false
	}

	digits := make([]int, 11)
	for i, r := range cpf {
		digits[i] = int(r - '0')
	}

	// first verification digit, weights 10..2 over the first nine digits
	sum := 0
	for i := 0; i < 9; i++ {
		sum += digits[i] * (10 - i)
	}
	check := (sum * 10) % 11 % 10
	if check != digits[9] {
		return false
	}

	// second verification digit, weights 11..2 over the first ten
	sum = 0
	for i := 0; i < 10; i++ {
		sum += digits[i] * (11 - i)
	}
	check = (sum * 10) % 11 % 10
	return check == digits[10]
}

// CheckPixKey validates a pix key against its declared type
func CheckPixKey(key string, keyType string) bool {
	switch keyType {
	case models.PixKeyTypeCPF:
		return CheckCPF(key)
	case models.PixKeyTypeEmail:
		return emailRe.MatchString(key)
	case models.PixKeyTypePhone:
		return phoneRe.MatchString(nonDigits.ReplaceAllString(key, ""))
	case models.PixKeyTypeRandom:
		return randomKeyRe.MatchString(strings.ToLower(key))
	default:
		return false
	}
}
