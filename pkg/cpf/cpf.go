package cpf

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCPF возвращается, когда строка не является валидным CPF
	ErrInvalidCPF = errors.New("cpf: invalid CPF")
)

// Normalize убирает из CPF все символы, кроме цифр ("358.350.678-28" -> "35835067828")
func Normalize(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Equal сравнивает два CPF без учёта маски
func Equal(a, b string) bool {
	return Normalize(a) != "" && Normalize(a) == Normalize(b)
}

// Validate проверяет CPF: длина 11 цифр, не все цифры одинаковые,
// оба контрольных разряда сходятся
func Validate(raw string) error {
	clean := Normalize(raw)
	if len(clean) != 11 {
		return fmt.Errorf("%w: expected 11 digits, got %d", ErrInvalidCPF, len(clean))
	}

	allSame := true
	for i := 1; i < len(clean); i++ {
		if clean[i] != clean[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return fmt.Errorf("%w: repeated digits", ErrInvalidCPF)
	}

	if digit(clean, 9) != int(clean[9]-'0') || digit(clean, 10) != int(clean[10]-'0') {
		return fmt.Errorf("%w: check digits do not match", ErrInvalidCPF)
	}

	return nil
}

// digit вычисляет контрольный разряд на позиции pos (9 или 10)
func digit(clean string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(clean[i]-'0') * (pos + 1 - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return remainder
}

// Format приводит CPF к маске 000.000.000-00 для отображения
func Format(raw string) string {
	clean := Normalize(raw)
	if len(clean) != 11 {
		return raw
	}
	return fmt.Sprintf("%s.%s.%s-%s", clean[0:3], clean[3:6], clean[6:9], clean[9:11])
}
