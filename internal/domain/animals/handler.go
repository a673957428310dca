package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-registry/internal/recordstore"

	"github.com/go-chi/chi/v5"
)

// PersistWarning acompaña un 201 cuando el registro quedó solo en memoria.
const PersistWarning = "registro salvo apenas em memória: falha ao persistir"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/animals", func(ar chi.Router) {
		ar.Post("/", createAnimalHandler(svc))
		ar.Get("/", listAnimalsHandler(svc))
		ar.Get("/{animalID}", getAnimalHandler(svc))
	})
}

// createAnimalRequest es el formulario de cadastro. Idade es puntero para
// distinguir "no enviado" de 0 (Filhote).
type createAnimalRequest struct {
	Nome         string   `json:"nome"`
	Especie      string   `json:"especie"`
	Raca         string   `json:"raca"`
	Sexo         string   `json:"sexo"`
	Idade        *int     `json:"idade"`
	Peso         *float64 `json:"peso"`
	Cor          string   `json:"cor"`
	Vacinado     string   `json:"vacinado" enums:"sim,nao"`
	Proprietario string   `json:"proprietario"`
	Endereco     string   `json:"endereco"`
	Telefone     string   `json:"telefone"`
	Observacoes  string   `json:"observacoes"`
}

type animalResponse struct {
	ID             string        `json:"id"`
	Nome           string        `json:"nome"`
	Especie        string        `json:"especie"`
	Raca           string        `json:"raca"`
	Sexo           string        `json:"sexo"`
	Idade          int           `json:"idade"`
	IdadeDescricao string        `json:"idadeDescricao"`
	Peso           float64       `json:"peso"`
	Cor            string        `json:"cor"`
	Vacinado       Vaccination   `json:"vacinado"`
	Proprietario   string        `json:"proprietario"`
	Endereco       string        `json:"endereco"`
	Telefone       string        `json:"telefone"`
	Observacoes    string        `json:"observacoes"`
	IMC            BodyCondition `json:"imc"`
	Categoria      AgeCategory   `json:"categoria"`
	CreatedAt      time.Time     `json:"createdAt"`
	Warning        string        `json:"warning,omitempty"`
}

type errorResponse struct {
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

// createAnimalHandler godoc
// @Summary Cadastrar animal
// @Description Valida idade (0-50), peso (0-2000kg) y telefone "(XX) XXXXX-XXXX"; deriva imc y categoria. Si el backend durable falla responde 201 igual, con `warning`.
// @Tags animals
// @Accept json
// @Produce json
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {object} errorResponse
// @Router /animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Especie) == "" ||
			req.Idade == nil || req.Peso == nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Por favor, preencha todos os campos obrigatórios."})
			return
		}

		if err := ValidateFields(*req.Idade, *req.Peso, req.Telefone); err != nil {
			var ve *ValidationError
			if errors.As(err, &ve) {
				writeJSON(w, http.StatusBadRequest, errorResponse{Field: ve.Field, Error: ve.Message})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
			return
		}

		a, err := svc.Create(r.Context(), CreateInput{
			Name:       req.Nome,
			Species:    req.Especie,
			Breed:      req.Raca,
			Sex:        req.Sexo,
			Color:      req.Cor,
			Age:        *req.Idade,
			Weight:     *req.Peso,
			Vaccinated: req.Vacinado,
			Owner:      req.Proprietario,
			Address:    req.Endereco,
			Phone:      req.Telefone,
			Notes:      req.Observacoes,
		})
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, toAnimalResponse(a))
		case errors.Is(err, recordstore.ErrPersist):
			resp := toAnimalResponse(a)
			resp.Warning = PersistWarning
			writeJSON(w, http.StatusCreated, resp)
		case errors.Is(err, ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "nome e especie são obrigatórios"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}
}

// listAnimalsHandler godoc
// @Summary Consultar animais
// @Description Sin filtros lista todo. raca filtra por substring sin distinguir mayúsculas, especie por igualdad exacta.
// @Tags animals
// @Produce json
// @Param raca query string false "Substring de la raça"
// @Param especie query string false "Especie exacta"
// @Success 200 {array} animalResponse
// @Router /animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.Search(SearchFilter{
			Breed:   strings.TrimSpace(q.Get("raca")),
			Species: strings.TrimSpace(q.Get("especie")),
		})

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getAnimalHandler godoc
// @Summary Detalle de animal
// @Tags animals
// @Produce json
// @Param animalID path string true "ID del animal"
// @Success 200 {object} animalResponse
// @Failure 404 {object} errorResponse
// @Router /animals/{animalID} [get]
func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByID(chi.URLParam(r, "animalID"))
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				writeJSON(w, http.StatusNotFound, errorResponse{Error: "animal not found"})
				return
			}
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func toAnimalResponse(a Animal) animalResponse {
	return animalResponse{
		ID:             a.ID,
		Nome:           a.Name,
		Especie:        a.Species,
		Raca:           a.Breed,
		Sexo:           a.Sex,
		Idade:          a.Age,
		IdadeDescricao: AgeLabel(a.Age),
		Peso:           a.Weight,
		Cor:            a.Color,
		Vacinado:       a.Vaccinated,
		Proprietario:   a.Owner,
		Endereco:       a.Address,
		Telefone:       a.Phone,
		Observacoes:    a.Notes,
		IMC:            a.BodyCondition,
		Categoria:      a.AgeCategory,
		CreatedAt:      a.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
