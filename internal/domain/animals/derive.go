package animals

import "fmt"

type weightRange struct {
	min float64
	max float64
}

// Rangos de peso de referencia por especie (kg).
var referenceWeights = map[string]weightRange{
	"canino": {min: 15, max: 35},
	"felino": {min: 3, max: 8},
	"bovino": {min: 400, max: 800},
	"equino": {min: 300, max: 600},
	"suino":  {min: 80, max: 200},
	"ovino":  {min: 30, max: 80},
}

// ClassifyBodyCondition: especie sin rango de referencia => Normal.
func ClassifyBodyCondition(weight float64, species string) BodyCondition {
	r, ok := referenceWeights[species]
	if !ok {
		return ConditionNormal
	}
	if weight < r.min {
		return ConditionUnderweight
	}
	if weight > r.max {
		return ConditionOverweight
	}
	return ConditionNormal
}

// ClassifyAge: <1 Filhote, 1..6 Adulto, >=7 Idoso.
func ClassifyAge(age int) AgeCategory {
	if age < 1 {
		return CategoryPuppy
	}
	if age < 7 {
		return CategoryAdult
	}
	return CategorySenior
}

// AgeLabel es el texto de idade que muestra la consulta.
func AgeLabel(age int) string {
	switch age {
	case 0:
		return "Menos de 1 ano"
	case 1:
		return "1 ano"
	default:
		return fmt.Sprintf("%d anos", age)
	}
}
