package classifications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"animal-registry/internal/domain/classifier"
	"animal-registry/internal/recordstore"

	"github.com/go-chi/chi/v5"
)

const persistWarning = "registro salvo apenas em memória: falha ao persistir"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/classifications", func(cr chi.Router) {
		cr.Post("/classify", classifyHandler(svc))
		cr.Post("/", saveClassificationHandler(svc))
		cr.Get("/", listClassificationsHandler(svc))
		cr.Get("/species", listSpeciesHandler(svc))
	})

	r.Get("/breeds", breedSuggestionsHandler())
}

type classifyRequest struct {
	Especie string `json:"especie"`
	Porte   string `json:"porte" enums:"pequeno,medio,grande"`
	Pelo    string `json:"pelo" enums:"curto,medio,longo"`
	Cor     string `json:"cor"`
}

// errorResponse es el mismo sobre JSON que usan /animals y /bovinos.
type errorResponse struct {
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

type recordResponse struct {
	ID              string                     `json:"id"`
	Breed           string                     `json:"breed"`
	Confidence      int                        `json:"confidence"`
	Characteristics classifier.Characteristics `json:"characteristics"`
	Alternatives    []classifier.Match         `json:"alternatives"`
	CreatedAt       time.Time                  `json:"createdAt"`
	Warning         string                     `json:"warning,omitempty"`
}

// classifyHandler godoc
// @Summary Clasificar raza
// @Description Puntúa las razas de la especie por porte, pelo y cor. Bajo 50% devuelve "SRD (Sem Raça Definida)" con 75 y sin alternativas. No persiste.
// @Tags classifications
// @Accept json
// @Produce json
// @Param payload body classifyRequest true "Características observadas"
// @Success 200 {object} classifier.Result
// @Failure 400 {object} errorResponse "invalid json / campos obrigatórios"
// @Router /classifications/classify [post]
func classifyHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		res, err := svc.Classify(classifier.Characteristics{
			Especie: strings.TrimSpace(req.Especie),
			Porte:   strings.TrimSpace(req.Porte),
			Pelo:    strings.TrimSpace(req.Pelo),
			Cor:     strings.TrimSpace(req.Cor),
		})
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Por favor, preencha todas as características."})
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

// saveClassificationHandler godoc
// @Summary Salvar classificação
// @Description Guarda un resultado devuelto por /classifications/classify.
// @Tags classifications
// @Accept json
// @Produce json
// @Param payload body classifier.Result true "Resultado a guardar"
// @Success 201 {object} recordResponse
// @Failure 400 {object} errorResponse "invalid json / resultado inválido"
// @Router /classifications [post]
func saveClassificationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req classifier.Result
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		rec, err := svc.Save(r.Context(), req)
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, toRecordResponse(rec))
		case errors.Is(err, recordstore.ErrPersist):
			resp := toRecordResponse(rec)
			resp.Warning = persistWarning
			writeJSON(w, http.StatusCreated, resp)
		case errors.Is(err, ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid classification result"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}
}

// listClassificationsHandler godoc
// @Summary Listar classificações
// @Tags classifications
// @Produce json
// @Success 200 {array} recordResponse
// @Router /classifications [get]
func listClassificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		items := svc.List()
		out := make([]recordResponse, 0, len(items))
		for _, rec := range items {
			out = append(out, toRecordResponse(rec))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// listSpeciesHandler godoc
// @Summary Especies del clasificador
// @Tags classifications
// @Produce json
// @Success 200 {array} string
// @Router /classifications/species [get]
func listSpeciesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Species())
	}
}

// breedSuggestionsHandler godoc
// @Summary Sugestões de raça
// @Description Razas sugeridas para el formulario de cadastro. Especie desconocida => lista vacía.
// @Tags classifications
// @Produce json
// @Param especie query string true "canino, felino, bovino, equino, suino u ovino"
// @Success 200 {array} string
// @Router /breeds [get]
func breedSuggestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, classifier.BreedSuggestions(strings.TrimSpace(r.URL.Query().Get("especie"))))
	}
}

func toRecordResponse(rec Record) recordResponse {
	alts := rec.Alternatives
	if alts == nil {
		alts = []classifier.Match{}
	}
	return recordResponse{
		ID:              rec.ID,
		Breed:           rec.Breed,
		Confidence:      rec.Confidence,
		Characteristics: rec.Characteristics,
		Alternatives:    alts,
		CreatedAt:       rec.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
