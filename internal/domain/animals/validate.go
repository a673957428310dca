package animals

import (
	"math"
	"regexp"
)

const (
	MinAge    = 0
	MaxAge    = 50
	MaxWeight = 2000.0
)

var phonePattern = regexp.MustCompile(`^\(\d{2}\)\s\d{4,5}-\d{4}$`)

// ValidationError es un rechazo de negocio en el borde: el registro no se crea.
// Message ya viene listo para mostrar al usuario.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func ValidateAge(age int) error {
	if age < MinAge || age > MaxAge {
		return &ValidationError{Field: "idade", Message: "Idade deve estar entre 0 e 50 anos."}
	}
	return nil
}

func ValidateWeight(weight float64) error {
	if math.IsNaN(weight) || weight <= 0 || weight > MaxWeight {
		return &ValidationError{Field: "peso", Message: "Peso deve ser maior que 0 e menor que 2000kg."}
	}
	return nil
}

// ValidatePhone exige (DD) DDDD-DDDD o (DD) DDDDD-DDDD.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return &ValidationError{Field: "telefone", Message: "Formato de telefone inválido. Use (XX) XXXXX-XXXX"}
	}
	return nil
}

// ValidateFields corre las tres reglas en el orden del formulario y devuelve la primera falla.
func ValidateFields(age int, weight float64, phone string) error {
	if err := ValidateAge(age); err != nil {
		return err
	}
	if err := ValidateWeight(weight); err != nil {
		return err
	}
	return ValidatePhone(phone)
}
