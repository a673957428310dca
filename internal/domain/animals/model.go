package animals

import (
	"strings"
	"time"
)

// StorageKey es la key del backing store donde vive la colección completa.
const StorageKey = "animals"

// AgeCategory es la clase etaria derivada de la idade.
type AgeCategory string

const (
	CategoryPuppy  AgeCategory = "Filhote"
	CategoryAdult  AgeCategory = "Adulto"
	CategorySenior AgeCategory = "Idoso"
)

// BodyCondition (imc) compara el peso con el rango de referencia de la especie.
// No es un IMC literal.
type BodyCondition string

const (
	ConditionUnderweight BodyCondition = "Abaixo do peso"
	ConditionNormal      BodyCondition = "Normal"
	ConditionOverweight  BodyCondition = "Acima do peso"
)

// Vaccination guarda la semántica "sim"/"não" del formulario.
type Vaccination string

const (
	VaccinatedYes Vaccination = "sim"
	VaccinatedNo  Vaccination = "nao"
)

// ParseVaccination acepta las variantes habituales; cualquier otra cosa es "nao".
func ParseVaccination(s string) Vaccination {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sim", "s", "true", "yes", "1":
		return VaccinatedYes
	default:
		return VaccinatedNo
	}
}

// Animal es un registro del app genérico. ID, CreatedAt y los campos derivados
// se fijan al crear y no se recalculan después.
type Animal struct {
	ID string `json:"id"`

	Name    string `json:"nome"`
	Species string `json:"especie"`
	Breed   string `json:"raca"`
	Sex     string `json:"sexo"`
	Color   string `json:"cor"`

	Age    int     `json:"idade"` // años
	Weight float64 `json:"peso"`  // kg

	Vaccinated Vaccination `json:"vacinado"`

	Owner   string `json:"proprietario"`
	Address string `json:"endereco"`
	Phone   string `json:"telefone"`
	Notes   string `json:"observacoes"`

	BodyCondition BodyCondition `json:"imc"`
	AgeCategory   AgeCategory   `json:"categoria"`

	CreatedAt time.Time `json:"createdAt"`
}

func (a Animal) IsVaccinated() bool {
	return a.Vaccinated == VaccinatedYes
}
