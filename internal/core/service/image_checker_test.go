package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}

func TestImageCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/image.png":
			w.Write(pngHeader)
		case "/page.html":
			w.Write([]byte("<!DOCTYPE html><html><body>hi</body></html>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	checker := NewImageChecker()
	ctx := context.Background()

	if err := checker.Check(ctx, ""); err != nil {
		t.Errorf("empty url should pass, got %v", err)
	}
	if err := checker.Check(ctx, srv.URL+"/image.png"); err != nil {
		t.Errorf("png url should pass, got %v", err)
	}
	if err := checker.Check(ctx, srv.URL+"/page.html"); err == nil {
		t.Error("html url should fail")
	}
	if err := checker.Check(ctx, srv.URL+"/missing.png"); err == nil {
		t.Error("404 url should fail")
	}
	if err := checker.Check(ctx, "http://127.0.0.1:1/image.png"); err == nil {
		t.Error("unreachable url should fail")
	}
	if err := checker.Check(ctx, "::notaurl"); err == nil {
		t.Error("malformed url should fail")
	}
}
