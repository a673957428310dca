package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mem "animal-registry/internal/adapters/storage/memory"
	"animal-registry/internal/ports/kv"
	"animal-registry/internal/router"
)

type readOnlyStore struct {
	kv.Store
}

func (readOnlyStore) Set(context.Context, string, []byte) error {
	return errors.New("read-only filesystem")
}

func TestHTTP_EndToEnd_RegistryFlow(t *testing.T) {
	store := mem.NewKVStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
	defer ts.Close()

	// 1) health
	{
		st, body := doReq(t, ts.URL, "GET", "/health", nil)
		if st != http.StatusOK || string(body) != "ok" {
			t.Fatalf("health: %d %s", st, body)
		}
	}

	// 2) clasificar y guardar
	{
		st, body := doReq(t, ts.URL, "POST", "/classifications/classify", map[string]any{
			"especie": "canino", "porte": "grande", "pelo": "longo", "cor": "dourado",
		})
		if st != http.StatusOK {
			t.Fatalf("classify: %d %s", st, body)
		}
		var res map[string]any
		_ = json.Unmarshal(body, &res)
		primary, _ := res["primary"].(map[string]any)
		if primary["breed"] != "Golden Retriever" || primary["confidence"] != float64(85) {
			t.Fatalf("unexpected classification: %s", body)
		}

		st, body = doReq(t, ts.URL, "POST", "/classifications", json.RawMessage(body))
		if st != http.StatusCreated {
			t.Fatalf("save classification: %d %s", st, body)
		}
	}

	// 3) cadastrar animales
	rexID := createAnimal(t, ts.URL, map[string]any{
		"nome": "Rex", "especie": "canino", "raca": "Golden Retriever",
		"idade": 3, "peso": 30, "vacinado": "sim", "telefone": "(11) 98765-4321",
	})
	createAnimal(t, ts.URL, map[string]any{
		"nome": "Mia", "especie": "felino", "raca": "Persa",
		"idade": 9, "peso": 9, "vacinado": "nao", "telefone": "(21) 3333-4444",
	})

	// 4) validación de borde
	{
		st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{
			"nome": "Bad", "especie": "canino", "idade": 3, "peso": 30, "telefone": "123",
		})
		if st != http.StatusBadRequest || !strings.Contains(string(body), "Formato de telefone inválido") {
			t.Fatalf("expected phone validation, got %d %s", st, body)
		}
	}

	// 5) consulta
	{
		st, body := doReq(t, ts.URL, "GET", "/animals?raca=golden", nil)
		var list []map[string]any
		_ = json.Unmarshal(body, &list)
		if st != http.StatusOK || len(list) != 1 || list[0]["id"] != rexID {
			t.Fatalf("search: %d %s", st, body)
		}

		st, _ = doReq(t, ts.URL, "GET", "/animals/does-not-exist", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", st)
		}
	}

	// 6) dashboard
	{
		st, body := doReq(t, ts.URL, "GET", "/stats", nil)
		var stats map[string]any
		_ = json.Unmarshal(body, &stats)
		if st != http.StatusOK || stats["totalAnimals"] != float64(2) || stats["totalBreeds"] != float64(2) || stats["totalClassifications"] != float64(1) {
			t.Fatalf("stats: %d %s", st, body)
		}
	}

	// 7) todo sobrevive a un reinicio sobre el mismo store
	{
		ts2 := httptest.NewServer(router.NewRouter(router.Options{Store: store}))
		defer ts2.Close()

		st, body := doReq(t, ts2.URL, "GET", "/animals/"+rexID, nil)
		if st != http.StatusOK {
			t.Fatalf("after restart: %d %s", st, body)
		}
		_, body = doReq(t, ts2.URL, "GET", "/classifications", nil)
		var recs []map[string]any
		_ = json.Unmarshal(body, &recs)
		if len(recs) != 1 || recs[0]["breed"] != "Golden Retriever" {
			t.Fatalf("classifications after restart: %s", body)
		}
	}
}

func TestHTTP_EndToEnd_HerdPanel(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/bovinos", map[string]any{
		"nome": "Mimosa", "brinco": "BR0123", "raca": "Nelore", "peso": 380, "status": "tratamento",
	})
	if st != http.StatusCreated {
		t.Fatalf("create bovino: %d %s", st, body)
	}
	var b map[string]any
	_ = json.Unmarshal(body, &b)

	st, _ = doReq(t, ts.URL, "POST", "/bovinos", map[string]any{"nome": "Dup", "brinco": "BR0123", "peso": 400})
	if st != http.StatusConflict {
		t.Fatalf("expected 409, got %d", st)
	}

	st, _ = doReq(t, ts.URL, "POST", "/bovinos/activities", map[string]any{
		"type": "treatment", "title": "Tratamento iniciado", "bovinoId": b["id"],
	})
	if st != http.StatusCreated {
		t.Fatalf("activity: %d", st)
	}

	st, body = doReq(t, ts.URL, "POST", "/bovinos/alerts/refresh", nil)
	var alerts []map[string]any
	_ = json.Unmarshal(body, &alerts)
	if st != http.StatusOK || len(alerts) != 3 {
		t.Fatalf("refresh: %d %s", st, body)
	}

	st, body = doReq(t, ts.URL, "GET", "/bovinos/stats", nil)
	if st != http.StatusOK || !strings.Contains(string(body), `"total":1`) {
		t.Fatalf("herd stats: %d %s", st, body)
	}
}

func TestHTTP_PersistFailure_WarnsButKeepsRecord(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{Store: readOnlyStore{Store: mem.NewKVStore()}}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/animals", map[string]any{
		"nome": "Rex", "especie": "canino", "idade": 3, "peso": 30, "telefone": "(11) 98765-4321",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201, got %d %s", st, body)
	}
	var created map[string]any
	_ = json.Unmarshal(body, &created)
	if w, _ := created["warning"].(string); w == "" {
		t.Fatalf("expected warning, got %s", body)
	}

	st, body = doReq(t, ts.URL, "GET", "/animals", nil)
	var list []map[string]any
	_ = json.Unmarshal(body, &list)
	if st != http.StatusOK || len(list) != 1 {
		t.Fatalf("expected record in memory, got %d %s", st, body)
	}
}

func TestHTTP_Metrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	doReq(t, ts.URL, "GET", "/health", nil)

	st, body := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(body), "animal_registry_http_request_duration_seconds") {
		t.Fatalf("metrics: %d", st)
	}
}

// -------------------------
// Helpers
// -------------------------

func createAnimal(t *testing.T, baseURL string, body map[string]any) string {
	t.Helper()

	st, resp := doReq(t, baseURL, "POST", "/animals", body)
	if st != http.StatusCreated {
		t.Fatalf("create animal expected 201, got %d body=%s", st, string(resp))
	}

	var out struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(resp, &out); err != nil {
		t.Fatalf("unmarshal create animal: %v", err)
	}
	if out.ID == "" {
		t.Fatalf("create animal returned empty id")
	}
	return out.ID
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
