package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorderObservesGenerations(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, err := NewRecorder(reg, "life")
	if err != nil {
		t.Fatal(err)
	}
	r.ObserveGeneration(1, 40, time.Millisecond)
	r.ObserveGeneration(2, 37, time.Millisecond)

	if got := testutil.ToFloat64(r.generations); got != 2 {
		t.Fatalf("expected 2 generations, got %v", got)
	}
	if got := testutil.ToFloat64(r.population); got != 37 {
		t.Fatalf("expected population 37, got %v", got)
	}
	if got := testutil.ToFloat64(r.generation); got != 2 {
		t.Fatalf("expected generation 2, got %v", got)
	}
}

func TestRecorderRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewRecorder(reg, "life"); err != nil {
		t.Fatal(err)
	}
	if _, err := NewRecorder(reg, "life"); err == nil {
		t.Fatal("second registration with the same labels must fail")
	}
}

func TestHandlerServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	r, _ := NewRecorder(reg, "seeds")
	r.ObserveGeneration(5, 12, 2*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body := rec.Body.String()
	for _, want := range []string{`ca_population{rule="seeds"} 12`, `ca_generations_total{rule="seeds"} 1`} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q:\n%s", want, body)
		}
	}
}
