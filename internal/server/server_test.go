// Released under an MIT license. See LICENSE.

package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lisp/internal/engine"
)

func post(t *testing.T, h http.Handler, body string) (*httptest.ResponseRecorder, Response) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/submit-code", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	var res Response

	if rec.Code == http.StatusOK {
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("cannot decode response: %v", err)
		}
	}

	return rec, res
}

func TestSubmit(t *testing.T) {
	h := New(nil).Handler()

	rec, res := post(t, h, `{"code": "(+ 1 2)"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	if !res.Success || res.Output != "3" {
		t.Fatalf("unexpected response %+v", res)
	}

	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("expected CORS header")
	}
}

func TestSubmitError(t *testing.T) {
	_, res := post(t, New(nil).Handler(), `{"code": "(car 1)"}`)

	if res.Success || !strings.HasPrefix(res.Output, "not a list") {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestRequestsAreIsolated(t *testing.T) {
	h := New(nil).Handler()

	if _, res := post(t, h, `{"code": "(def x 1)"}`); !res.Success {
		t.Fatalf("unexpected response %+v", res)
	}

	_, res := post(t, h, `{"code": "x"}`)
	if res.Success || !strings.HasPrefix(res.Output, "unbound symbol") {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestBudget(t *testing.T) {
	h := New(nil, engine.WithStepLimit(500)).Handler()

	_, res := post(t, h, `{"code": "(defn f (n) (f n)) (f 1)"}`)
	if res.Success || !strings.HasPrefix(res.Output, "budget exceeded") {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestMethods(t *testing.T) {
	h := New(nil).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/submit-code", nil))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/submit-code", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestMalformedJSON(t *testing.T) {
	rec, _ := post(t, New(nil).Handler(), `{"code": `)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestDefaultBudget(t *testing.T) {
	for _, code := range []string{
		"(do (defn f () (f)) (f))",
		"(do (defn f (n) (f (+ n 1))) (f 0))",
	} {
		res := New(nil).Submit(code)
		if res.Success || !strings.HasPrefix(res.Output, "budget exceeded") {
			t.Fatalf("%s: unexpected response %+v", code, res)
		}
	}
}

func TestSelfContainingList(t *testing.T) {
	body := `{"code": "(do (def x (list 1)) (push x x))"}`

	_, res := post(t, New(nil).Handler(), body)
	if res.Success || !strings.HasPrefix(res.Output, "type mismatch") {
		t.Fatalf("unexpected response %+v", res)
	}
}

func TestEmptyProgram(t *testing.T) {
	for _, code := range []string{"", "   ", "; only a comment"} {
		if res := New(nil).Submit(code); res.Success {
			t.Fatalf("%q: unexpected response %+v", code, res)
		}
	}
}

func TestOversizedBody(t *testing.T) {
	body := `{"code": "` + strings.Repeat("1 ", maxBody) + `"}`

	rec, _ := post(t, New(nil).Handler(), body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
