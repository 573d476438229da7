package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func startHTTPServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	defer func() {
		if r := recover(); r != nil {
			msg := fmt.Sprint(r)
			if strings.Contains(msg, "operation not permitted") {
				t.Skip("network operations not permitted in sandbox")
			}
			panic(r)
		}
	}()
	return httptest.NewServer(handler)
}

func TestHTTPFetcher_OK(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"name":"n","description":"d","attributes":[],"private_data_cid":"bafy1"}`))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	meta, err := f.Fetch(context.Background(), srv.URL+"/m.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if meta.Name != "n" || meta.PrivateDataCID != "bafy1" {
		t.Fatalf("unexpected metadata: %+v", meta)
	}
}

func TestHTTPFetcher_Non200(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestHTTPFetcher_BadJSON(t *testing.T) {
	srv := startHTTPServer(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(5 * time.Second)
	if _, err := f.Fetch(context.Background(), srv.URL+"/m.json"); err == nil {
		t.Fatal("expected error for malformed body")
	}
}
