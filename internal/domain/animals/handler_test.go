package animals

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/ports/kv"
)

func newTestServer(t *testing.T, store kv.Store) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, newTestService(t, store))
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) (*http.Response, map[string]any) {
	t.Helper()
	b, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func validAnimal() map[string]any {
	return map[string]any{
		"nome":         "Rex",
		"especie":      "canino",
		"raca":         "Labrador Retriever",
		"sexo":         "macho",
		"idade":        0,
		"peso":         12.5,
		"cor":          "dourado",
		"vacinado":     "sim",
		"proprietario": "Ana",
		"telefone":     "(11) 98765-4321",
	}
}

func TestHandler_Create_OK(t *testing.T) {
	ts := newTestServer(t, memory.NewKVStore())

	resp, body := postJSON(t, ts.URL+"/animals", validAnimal())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%v", resp.StatusCode, body)
	}
	if body["imc"] != string(ConditionUnderweight) || body["categoria"] != string(CategoryPuppy) {
		t.Fatalf("derived fields: %v", body)
	}
	if body["idadeDescricao"] != "Menos de 1 ano" {
		t.Fatalf("idadeDescricao=%v", body["idadeDescricao"])
	}
	if _, ok := body["warning"]; ok {
		t.Fatalf("unexpected warning: %v", body["warning"])
	}
}

func TestHandler_Create_ValidationMessages(t *testing.T) {
	ts := newTestServer(t, memory.NewKVStore())

	cases := []struct {
		name  string
		patch map[string]any
		field string
		msg   string
	}{
		{"age", map[string]any{"idade": 60}, "idade", "Idade deve estar entre 0 e 50 anos."},
		{"weight", map[string]any{"peso": 2500}, "peso", "Peso deve ser maior que 0 e menor que 2000kg."},
		{"phone", map[string]any{"telefone": "11987654321"}, "telefone", "Formato de telefone inválido. Use (XX) XXXXX-XXXX"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAnimal()
			for k, v := range tc.patch {
				req[k] = v
			}
			resp, body := postJSON(t, ts.URL+"/animals", req)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", resp.StatusCode)
			}
			if body["field"] != tc.field || body["error"] != tc.msg {
				t.Fatalf("body=%v", body)
			}
		})
	}

	// nada quedó guardado
	resp, err := http.Get(ts.URL + "/animals")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	var list []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&list)
	if len(list) != 0 {
		t.Fatalf("expected empty list, got %d", len(list))
	}
}

func TestHandler_Create_MissingRequired(t *testing.T) {
	ts := newTestServer(t, memory.NewKVStore())

	req := validAnimal()
	delete(req, "peso")
	resp, _ := postJSON(t, ts.URL+"/animals", req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without peso, got %d", resp.StatusCode)
	}

	req = validAnimal()
	req["nome"] = " "
	resp, _ = postJSON(t, ts.URL+"/animals", req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without nome, got %d", resp.StatusCode)
	}
}

func TestHandler_Create_PersistFailureWarns(t *testing.T) {
	ts := newTestServer(t, failingSetStore{Store: memory.NewKVStore()})

	resp, body := postJSON(t, ts.URL+"/animals", validAnimal())
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if body["warning"] != PersistWarning {
		t.Fatalf("expected persist warning, got %v", body["warning"])
	}
}

func TestHandler_ListAndGet(t *testing.T) {
	ts := newTestServer(t, memory.NewKVStore())

	_, created := postJSON(t, ts.URL+"/animals", validAnimal())
	cat := validAnimal()
	cat["nome"], cat["especie"], cat["raca"], cat["peso"] = "Mia", "felino", "Siamês", 4
	postJSON(t, ts.URL+"/animals", cat)

	resp, err := http.Get(ts.URL + "/animals?raca=labrador")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	var list []map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&list)
	resp.Body.Close()
	if len(list) != 1 || list[0]["nome"] != "Rex" {
		t.Fatalf("filtered list: %v", list)
	}

	id, _ := created["id"].(string)
	resp, err = http.Get(ts.URL + "/animals/" + id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp, err = http.Get(ts.URL + "/animals/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}
