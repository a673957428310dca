package classifier

// Especies con reglas de clasificación.
const (
	SpeciesCanino = "canino"
	SpeciesFelino = "felino"
	SpeciesBovino = "bovino"
	SpeciesEquino = "equino"
	SpeciesSuino  = "suino"
	SpeciesOvino  = "ovino"
)

// BreedRule describe qué portes, pelos y colores acepta una raza y cuánto
// confiamos en ella (peso base en (0,1]).
type BreedRule struct {
	Name       string
	Porte      []string
	Pelo       []string
	Cores      []string
	Confidence float64
}

// SpeciesRules agrupa las razas de una especie en orden de tabla.
// El orden importa: en empate gana la primera raza.
type SpeciesRules struct {
	Species string
	Breeds  []BreedRule
}

type Rules []SpeciesRules

// DefaultRules es la tabla de referencia. Se arma una vez al iniciar y no se muta.
func DefaultRules() Rules {
	return Rules{
		{
			Species: SpeciesCanino,
			Breeds: []BreedRule{
				{Name: "Labrador", Porte: []string{"medio", "grande"}, Pelo: []string{"curto"}, Cores: []string{"amarelo", "chocolate", "preto", "dourado"}, Confidence: 0.9},
				{Name: "Golden Retriever", Porte: []string{"grande"}, Pelo: []string{"longo"}, Cores: []string{"dourado", "amarelo", "creme"}, Confidence: 0.85},
				{Name: "Pastor Alemão", Porte: []string{"grande"}, Pelo: []string{"medio"}, Cores: []string{"preto", "marrom", "cinza"}, Confidence: 0.9},
				{Name: "Bulldog", Porte: []string{"medio"}, Pelo: []string{"curto"}, Cores: []string{"branco", "tigrado", "fulvo"}, Confidence: 0.8},
				{Name: "Poodle", Porte: []string{"pequeno", "medio", "grande"}, Pelo: []string{"crespo"}, Cores: []string{"branco", "preto", "marrom", "cinza"}, Confidence: 0.85},
				{Name: "Beagle", Porte: []string{"medio"}, Pelo: []string{"curto"}, Cores: []string{"tricolor", "branco", "marrom"}, Confidence: 0.8},
			},
		},
		{
			Species: SpeciesFelino,
			Breeds: []BreedRule{
				{Name: "Persa", Porte: []string{"medio"}, Pelo: []string{"longo"}, Cores: []string{"branco", "preto", "cinza", "laranja"}, Confidence: 0.85},
				{Name: "Siamês", Porte: []string{"medio"}, Pelo: []string{"curto"}, Cores: []string{"creme", "chocolate", "seal point"}, Confidence: 0.9},
				{Name: "Maine Coon", Porte: []string{"grande"}, Pelo: []string{"longo"}, Cores: []string{"tabby", "preto", "branco", "cinza"}, Confidence: 0.8},
				{Name: "British Shorthair", Porte: []string{"medio"}, Pelo: []string{"curto"}, Cores: []string{"azul", "cinza", "preto", "branco"}, Confidence: 0.85},
			},
		},
		{
			Species: SpeciesBovino,
			Breeds: []BreedRule{
				{Name: "Nelore", Porte: []string{"grande"}, Pelo: []string{"curto"}, Cores: []string{"branco", "cinza", "bege"}, Confidence: 0.9},
				{Name: "Angus", Porte: []string{"grande"}, Pelo: []string{"curto"}, Cores: []string{"preto", "vermelho"}, Confidence: 0.85},
				{Name: "Holandês", Porte: []string{"grande"}, Pelo: []string{"curto"}, Cores: []string{"preto", "branco", "malhado"}, Confidence: 0.9},
			},
		},
		{
			Species: SpeciesEquino,
			Breeds: []BreedRule{
				{Name: "Quarto de Milha", Porte: []string{"grande"}, Pelo: []string{"curto"}, Cores: []string{"alazão", "castanho", "tordilho"}, Confidence: 0.8},
				{Name: "Árabe", Porte: []string{"medio"}, Pelo: []string{"curto"}, Cores: []string{"tordilho", "alazão", "castanho"}, Confidence: 0.85},
			},
		},
	}
}

// colorSynonyms: si la cor ingresada contiene la key, alguna cor de la raza
// debe contener una de las alternativas para puntuar parcial.
var colorSynonyms = []struct {
	word         string
	alternatives []string
}{
	{"amarelo", []string{"dourado", "creme", "bege"}},
	{"dourado", []string{"amarelo", "creme"}},
	{"marrom", []string{"chocolate", "castanho"}},
	{"chocolate", []string{"marrom", "castanho"}},
	{"cinza", []string{"azul", "tordilho"}},
	{"azul", []string{"cinza"}},
	{"tigrado", []string{"listrado", "rajado"}},
	{"tricolor", []string{"três cores", "malhado"}},
}

// Sugerencias del formulario de cadastro (incluye especies sin reglas de clasificación).
var breedSuggestions = map[string][]string{
	SpeciesCanino: {"Labrador", "Golden Retriever", "Pastor Alemão", "Bulldog", "Poodle", "Rottweiler", "Beagle", "SRD"},
	SpeciesFelino: {"Persa", "Siamês", "Maine Coon", "British Shorthair", "Ragdoll", "Bengal", "SRD"},
	SpeciesBovino: {"Nelore", "Angus", "Brahman", "Gir", "Holandês", "Jersey"},
	SpeciesEquino: {"Quarto de Milha", "Mangalarga", "Árabe", "Puro Sangue Inglês", "Crioulo"},
	SpeciesSuino:  {"Landrace", "Large White", "Duroc", "Hampshire", "Pietrain"},
	SpeciesOvino:  {"Santa Inês", "Dorper", "Morada Nova", "Somalis Brasileira"},
}

// BreedSuggestions devuelve una copia; especie desconocida => vacío.
func BreedSuggestions(species string) []string {
	return append([]string{}, breedSuggestions[species]...)
}
