package cnpj

import "fmt"

// Length cantidad de dígitos de un CNPJ sin separadores.
const Length = 14

// pesos del cálculo módulo 11 de los dígitos verificadores (Receita Federal).
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// Validate verifica que el CNPJ tenga exactamente 14 dígitos (sin puntos, barra ni guion),
// que no sea una secuencia repetida y que sus dos dígitos verificadores sean correctos.
func Validate(cnpj string) error {
	if len(cnpj) != Length {
		return fmt.Errorf("cnpj: se esperaban %d dígitos, se recibieron %d caracteres", Length, len(cnpj))
	}
	for i := 0; i < Length; i++ {
		if cnpj[i] < '0' || cnpj[i] > '9' {
			return fmt.Errorf("cnpj: carácter no numérico en la posición %d", i)
		}
	}
	if isRepeated(cnpj) {
		return fmt.Errorf("cnpj: secuencia repetida %q", cnpj)
	}
	expected, err := ComputeCheckDigits(cnpj[:12])
	if err != nil {
		return err
	}
	if cnpj[12:] != expected {
		return fmt.Errorf("cnpj: dígitos verificadores inválidos: esperado %s, recibido %s", expected, cnpj[12:])
	}
	return nil
}

// IsValid atajo booleano de Validate.
func IsValid(cnpj string) bool {
	return Validate(cnpj) == nil
}

// ComputeCheckDigits calcula los dos dígitos verificadores para la base de 12 dígitos.
func ComputeCheckDigits(base string) (string, error) {
	if len(base) != 12 {
		return "", fmt.Errorf("cnpj: la base debe tener 12 dígitos, se recibieron %d", len(base))
	}
	digits := make([]int, 0, 13)
	for i := 0; i < len(base); i++ {
		if base[i] < '0' || base[i] > '9' {
			return "", fmt.Errorf("cnpj: carácter no numérico en la posición %d", i)
		}
		digits = append(digits, int(base[i]-'0'))
	}
	first := checkDigit(digits, firstWeights[:])
	digits = append(digits, first)
	second := checkDigit(digits, secondWeights[:])
	return string([]byte{byte('0' + first), byte('0' + second)}), nil
}

func checkDigit(digits, weights []int) int {
	var sum int
	for i, w := range weights {
		sum += digits[i] * w
	}
	remainder := sum % 11
	if remainder < 2 {
		return 0
	}
	return 11 - remainder
}

func isRepeated(s string) bool {
	for i := 1; i < len(s); i++ {
		if s[i] != s[0] {
			return false
		}
	}
	return true
}
