package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/foremanhq/foreman/pkg/routes"
)

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/widgets",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: respond("list")},
			{Method: "GET", Pattern: "/{id}", Handler: respond("find")},
		},
		Children: []routes.Group{
			{
				Prefix: "/nested",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "/deep", Handler: respond("deep")},
				},
			},
		},
	})

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"GET", "/widgets", "list"},
		{"GET", "/widgets/7", "find"},
		{"GET", "/widgets/nested/deep", "deep"},
	}

	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("%s %s status = %d, want 200", tt.method, tt.path, rec.Code)
			continue
		}
		if rec.Body.String() != tt.want {
			t.Errorf("%s %s body = %q, want %q", tt.method, tt.path, rec.Body.String(), tt.want)
		}
	}
}

func TestRegisterMethodMismatch(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, routes.Group{
		Prefix: "/widgets",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: respond("create")},
		},
	})

	req := httptest.NewRequest("GET", "/widgets", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}
}
