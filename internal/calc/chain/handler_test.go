package chain

import (
	auth "ChainDrive/internal/auth"
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"
)

func TestHandlerCalc(t *testing.T) {
	h := &Handler{}
	body := `{"torque_nm":50,"speed_rpm":1440,"gear_ratio":2,"service_factor":1,"min_center_distance_mm":300}`
	rec := httptest.NewRecorder()
	h.Calc(rec, httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(body)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body.String())
	}
	var res Result
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.DrivingTeeth != 15 || res.ChainLengthLinks != 70 || res.CenterDistanceMM != 300.1 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestHandlerCalcStatuses(t *testing.T) {
	cases := []struct {
		body string
		want int
	}{
		{`not json`, http.StatusBadRequest},
		{`{"torque_nm":0,"speed_rpm":1,"gear_ratio":1,"service_factor":1,"min_center_distance_mm":1}`, http.StatusBadRequest},
		{`{"torque_nm":1e7,"speed_rpm":100,"gear_ratio":5,"service_factor":1,"min_center_distance_mm":1000}`, http.StatusUnprocessableEntity},
		{`{"torque_nm":50,"speed_rpm":1e308,"gear_ratio":2,"service_factor":1,"min_center_distance_mm":300}`, http.StatusBadRequest},
		{`{"torque_nm":50,"speed_rpm":1440,"gear_ratio":1e19,"service_factor":1,"min_center_distance_mm":300}`, http.StatusUnprocessableEntity},
		{`{"torque_nm":50,"speed_rpm":1440,"gear_ratio":2,"service_factor":1,"min_center_distance_mm":1e300}`, http.StatusUnprocessableEntity},
	}
	h := &Handler{}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		h.Calc(rec, httptest.NewRequest(http.MethodPost, "/calc", strings.NewReader(c.body)))
		if rec.Code != c.want {
			t.Fatalf("body %q: status %d, want %d", c.body, rec.Code, c.want)
		}
		if strings.TrimSpace(rec.Body.String()) == "" || strings.Contains(rec.Body.String(), "-9223372036854775808") {
			t.Fatalf("body %q: unexpected response %q", c.body, rec.Body.String())
		}
	}
}

func TestHandlerCatalog(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Catalog(rec, httptest.NewRequest(http.MethodGet, "/catalog", nil))
	var got []StandardChain
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 6 || got[5].PitchMM != 38.1 {
		t.Fatalf("unexpected catalog %+v", got)
	}
}

func TestStatusFor(t *testing.T) {
	if s := StatusFor(errors.New("boom")); s != http.StatusInternalServerError {
		t.Fatalf("plain error -> %d", s)
	}
	if s := StatusFor(ErrGeometryInfeasible); s != http.StatusUnprocessableEntity {
		t.Fatalf("geometry -> %d", s)
	}
}

func TestRows(t *testing.T) {
	res := Result{DrivingTeeth: 15, DrivenTeeth: 30, PitchMM: 12.7, ChainLengthLinks: 70, CenterDistanceMM: 300.1, ChainVelocityMS: 4.5, BreakingLoadN: 18100, MassKgM: 0.8}
	rows := res.Rows("ru")
	if len(rows) != 8 || rows[0].Label != "Малая звездочка, зубья" || rows[5].Value != "4.50" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if Label("de", "pitch_mm") != "Chain pitch, mm" {
		t.Fatal("unknown language should fall back to English")
	}
}

func TestWriteJSONUnencodable(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	env := &auth.Authenv{JWTkey: []byte("k")}
	token, err := env.NewToken(7, "ivan", time.Now())
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	h := env.AuthMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, r, map[string]float64{"v": math.Inf(1)})
	}))
	req := httptest.NewRequest(http.MethodPost, "/calc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status %d, want 500", rec.Code)
	}
	if strings.Contains(rec.Header().Get("Content-Type"), "application/json") {
		t.Fatalf("error response labelled as JSON")
	}
	if !strings.Contains(logs.String(), `"ivan"`) {
		t.Fatalf("log does not name the user: %q", logs.String())
	}
}
