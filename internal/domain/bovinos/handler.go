package bovinos

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"animal-registry/internal/domain/animals"
	"animal-registry/internal/recordstore"

	"github.com/go-chi/chi/v5"
)

const persistWarning = "registro salvo apenas em memória: falha ao persistir"

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/bovinos", func(br chi.Router) {
		br.Post("/", createBovinoHandler(svc))
		br.Get("/", listBovinosHandler(svc))

		// Painel do rebanho
		br.Get("/stats", statsHandler(svc))
		br.Get("/growth", growthHandler(svc))
		br.Get("/breeds", breedDistributionHandler(svc))

		br.Post("/activities", createActivityHandler(svc))
		br.Get("/activities", listActivitiesHandler(svc))

		br.Post("/alerts", createAlertHandler(svc))
		br.Get("/alerts", listAlertsHandler(svc))
		br.Post("/alerts/refresh", refreshAlertsHandler(svc))

		br.Get("/{bovinoID}", getBovinoHandler(svc))
	})
}

type createBovinoRequest struct {
	Nome                string  `json:"nome"`
	Brinco              string  `json:"brinco"`
	Raca                string  `json:"raca"`
	Sexo                string  `json:"sexo"`
	Idade               *int    `json:"idade"`
	Peso                float64 `json:"peso"`
	Cor                 string  `json:"cor"`
	Vacinado            string  `json:"vacinado"`
	Proprietario        string  `json:"proprietario"`
	Endereco            string  `json:"endereco"`
	Telefone            string  `json:"telefone"` // opcional
	Observacoes         string  `json:"observacoes"`
	Status              Status  `json:"status" enums:"saudavel,tratamento,reproducao,observacao"`
	Localizacao         string  `json:"localizacao"`
	DataUltimaVacinacao string  `json:"dataUltimaVacinacao"` // YYYY-MM-DD opcional
	DataNascimento      string  `json:"dataNascimento"`      // YYYY-MM-DD opcional
}

type bovinoResponse struct {
	Bovino
	IdadeDescricao string `json:"idadeDescricao"`
	Warning        string `json:"warning,omitempty"`
}

type activityRequest struct {
	Type        ActivityType `json:"type" enums:"vaccination,weight,birth,treatment,note"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	BovinoID    string       `json:"bovinoId"`
	OccurredAt  string       `json:"occurredAt"` // RFC3339 opcional
}

type alertRequest struct {
	Type        AlertType `json:"type" enums:"warning,error,info"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BovinoID    string    `json:"bovinoId"`
}

type errorResponse struct {
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

// createBovinoHandler godoc
// @Summary Cadastrar bovino
// @Description brinco es obligatorio y único (409 si ya existe). Si no viene idade y sí dataNascimento, la idade se calcula en años cumplidos.
// @Tags bovinos
// @Accept json
// @Produce json
// @Param payload body createBovinoRequest true "Datos del bovino"
// @Success 201 {object} bovinoResponse
// @Failure 400 {object} errorResponse
// @Failure 409 {object} errorResponse
// @Router /bovinos [post]
func createBovinoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createBovinoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		if msg, field := validateBovino(req); msg != "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{Field: field, Error: msg})
			return
		}

		lastVac, err := parseDate(req.DataUltimaVacinacao)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Field: "dataUltimaVacinacao", Error: "dataUltimaVacinacao must be YYYY-MM-DD"})
			return
		}
		birth, err := parseDate(req.DataNascimento)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Field: "dataNascimento", Error: "dataNascimento must be YYYY-MM-DD"})
			return
		}

		b, err := svc.Create(r.Context(), CreateInput{
			Name:            req.Nome,
			Tag:             req.Brinco,
			Breed:           req.Raca,
			Sex:             req.Sexo,
			Color:           req.Cor,
			Age:             req.Idade,
			Weight:          req.Peso,
			Vaccinated:      req.Vacinado,
			Owner:           req.Proprietario,
			Address:         req.Endereco,
			Phone:           req.Telefone,
			Notes:           req.Observacoes,
			Status:          req.Status,
			Location:        req.Localizacao,
			LastVaccination: lastVac,
			BirthDate:       birth,
		})
		var ve *animals.ValidationError
		switch {
		case err == nil:
			writeJSON(w, http.StatusCreated, toBovinoResponse(b))
		case errors.Is(err, recordstore.ErrPersist):
			resp := toBovinoResponse(b)
			resp.Warning = persistWarning
			writeJSON(w, http.StatusCreated, resp)
		case errors.As(err, &ve):
			writeJSON(w, http.StatusBadRequest, errorResponse{Field: ve.Field, Error: ve.Message})
		case errors.Is(err, ErrDuplicateTag):
			writeJSON(w, http.StatusConflict, errorResponse{Field: "brinco", Error: "Brinco já cadastrado."})
		case errors.Is(err, ErrInvalidInput):
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "nome, brinco e status válido são obrigatórios"})
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		}
	}
}

// validateBovino devuelve el mensaje y campo del primer error, o "" si está ok.
func validateBovino(req createBovinoRequest) (string, string) {
	if strings.TrimSpace(req.Nome) == "" || strings.TrimSpace(req.Brinco) == "" {
		return "Por favor, preencha todos os campos obrigatórios.", ""
	}

	var ve *animals.ValidationError
	if req.Idade != nil {
		if err := animals.ValidateAge(*req.Idade); errors.As(err, &ve) {
			return ve.Message, ve.Field
		}
	}
	if err := animals.ValidateWeight(req.Peso); errors.As(err, &ve) {
		return ve.Message, ve.Field
	}
	if strings.TrimSpace(req.Telefone) != "" {
		if err := animals.ValidatePhone(req.Telefone); errors.As(err, &ve) {
			return ve.Message, ve.Field
		}
	}
	if req.Status != "" && !req.Status.Valid() {
		return "status inválido", "status"
	}
	return "", ""
}

// listBovinosHandler godoc
// @Summary Consultar bovinos
// @Tags bovinos
// @Produce json
// @Param raca query string false "Substring de la raça"
// @Param brinco query string false "Substring del brinco"
// @Param status query string false "Status exacto"
// @Success 200 {array} bovinoResponse
// @Router /bovinos [get]
func listBovinosHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items := svc.Search(SearchFilter{
			Breed:  q.Get("raca"),
			Tag:    q.Get("brinco"),
			Status: Status(strings.TrimSpace(q.Get("status"))),
		})

		out := make([]bovinoResponse, 0, len(items))
		for _, b := range items {
			out = append(out, toBovinoResponse(b))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// getBovinoHandler godoc
// @Summary Detalle de bovino
// @Tags bovinos
// @Produce json
// @Param bovinoID path string true "ID del bovino"
// @Success 200 {object} bovinoResponse
// @Failure 404 {object} errorResponse
// @Router /bovinos/{bovinoID} [get]
func getBovinoHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.GetByID(chi.URLParam(r, "bovinoID"))
		if err != nil {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "bovino not found"})
			return
		}
		writeJSON(w, http.StatusOK, toBovinoResponse(b))
	}
}

// statsHandler godoc
// @Summary Indicadores do rebanho
// @Tags bovinos
// @Produce json
// @Success 200 {object} HerdStats
// @Router /bovinos/stats [get]
func statsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Stats())
	}
}

// growthHandler godoc
// @Summary Crescimento do rebanho
// @Description Total acumulado al final de cada mes. months por defecto 6, máximo 24.
// @Tags bovinos
// @Produce json
// @Param months query int false "Cantidad de meses"
// @Success 200 {array} GrowthPoint
// @Failure 400 {object} errorResponse "months inválido"
// @Router /bovinos/growth [get]
func growthHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		months, err := intQuery(r, "months")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Field: "months", Error: "months must be an integer"})
			return
		}
		writeJSON(w, http.StatusOK, svc.Growth(months))
	}
}

// breedDistributionHandler godoc
// @Summary Distribución por raça
// @Tags bovinos
// @Produce json
// @Success 200 {array} BreedCount
// @Router /bovinos/breeds [get]
func breedDistributionHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.BreedDistribution())
	}
}

// createActivityHandler godoc
// @Summary Registrar atividade
// @Tags bovinos
// @Accept json
// @Produce json
// @Param payload body activityRequest true "Atividade; occurredAt en RFC3339"
// @Success 201 {object} Activity
// @Failure 400 {object} errorResponse "invalid json / occurredAt inválido / reglas de negocio"
// @Failure 404 {object} errorResponse "bovino not found"
// @Router /bovinos/activities [post]
func createActivityHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req activityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		var occurred time.Time
		if strings.TrimSpace(req.OccurredAt) != "" {
			t, err := time.Parse(time.RFC3339, req.OccurredAt)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Field: "occurredAt", Error: "occurredAt must be RFC3339"})
				return
			}
			occurred = t
		}

		a, err := svc.RecordActivity(r.Context(), ActivityInput{
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			BovinoID:    req.BovinoID,
			OccurredAt:  occurred,
		})
		if err != nil && !errors.Is(err, recordstore.ErrPersist) {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

// listActivitiesHandler godoc
// @Summary Atividades recentes
// @Tags bovinos
// @Produce json
// @Param limit query int false "Por defecto 50, máximo 200"
// @Success 200 {array} Activity
// @Router /bovinos/activities [get]
func listActivitiesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := intQuery(r, "limit")
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Field: "limit", Error: "limit must be an integer"})
			return
		}
		writeJSON(w, http.StatusOK, svc.RecentActivities(limit))
	}
}

// createAlertHandler godoc
// @Summary Crear alerta manual
// @Tags bovinos
// @Accept json
// @Produce json
// @Param payload body alertRequest true "Alerta"
// @Success 201 {object} Alert
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /bovinos/alerts [post]
func createAlertHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req alertRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid json"})
			return
		}

		a, err := svc.CreateAlert(r.Context(), AlertInput{
			Type:        req.Type,
			Title:       req.Title,
			Description: req.Description,
			BovinoID:    req.BovinoID,
		})
		if err != nil && !errors.Is(err, recordstore.ErrPersist) {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, a)
	}
}

// listAlertsHandler godoc
// @Summary Listar alertas
// @Tags bovinos
// @Produce json
// @Success 200 {array} Alert
// @Router /bovinos/alerts [get]
func listAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, svc.Alerts())
	}
}

// refreshAlertsHandler godoc
// @Summary Recalcular alertas
// @Description Reemplaza las alertas de barrida (vacunación, peso, tratamiento); las manuales se mantienen.
// @Tags bovinos
// @Produce json
// @Success 200 {array} Alert
// @Router /bovinos/alerts/refresh [post]
func refreshAlertsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := svc.RefreshAlerts(r.Context()); err != nil && !errors.Is(err, recordstore.ErrPersist) {
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
			return
		}
		writeJSON(w, http.StatusOK, svc.Alerts())
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "bovino not found"})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func parseDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// intQuery: ausente => 0.
func intQuery(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func toBovinoResponse(b Bovino) bovinoResponse {
	return bovinoResponse{
		Bovino:         b,
		IdadeDescricao: animals.AgeLabel(b.Age),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
