package siteurl

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

func TestHandlerInstallsCurrent(t *testing.T) {
	r := New(Config{BaseURL: "http://example.com/"})

	h := r.Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cur, ok := FromContext(req.Context())
		if !ok {
			t.Error("FromContext: no Current in request context")
			return
		}
		rel, err := cur.RelativePath()
		if err != nil {
			t.Errorf("RelativePath: %v", err)
			return
		}
		io.WriteString(w, rel)
	}))

	srv := httptest.NewServer(h)
	defer srv.Close()

	tests := []struct {
		path string
		want string
	}{
		{path: "/blog/posts/2024", want: "blog/posts/2024"},
		{path: "/", want: ""},
		{path: "/admin?tab=users", want: "admin"},
	}

	for _, tt := range tests {
		resp, err := http.Get(srv.URL + tt.path)
		if err != nil {
			t.Fatal(err)
		}
		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != tt.want {
			t.Errorf("GET %s: relative path = %q, want %q", tt.path, body, tt.want)
		}
	}
}

func TestHandlerRequestScopedCache(t *testing.T) {
	r := New(Config{BaseURL: "http://example.com/"})

	var mu sync.Mutex
	seen := make(map[*Current]bool)

	h := r.Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cur, _ := FromContext(req.Context())
		mu.Lock()
		seen[cur] = true
		mu.Unlock()
	}))

	srv := httptest.NewServer(h)
	defer srv.Close()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(srv.URL + "/x")
			if err != nil {
				t.Error(err)
				return
			}
			resp.Body.Close()
		}()
	}
	wg.Wait()

	// Every request must receive an independently initialised Current.
	if len(seen) != 8 {
		t.Errorf("got %d distinct Current values for 8 requests", len(seen))
	}
}

func TestHandlerHostPolicyApplies(t *testing.T) {
	r := New(Config{
		BaseURL:      "http://example.com/",
		AllowedHosts: []string{"www.example.jp"},
	})

	h := r.Handler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		cur, _ := FromContext(req.Context())
		u, err := cur.URL()
		if err != nil {
			t.Errorf("URL: %v", err)
			return
		}
		io.WriteString(w, u.Host())
	}))

	// The test server reports 127.0.0.1:<port>, which is not on the
	// allow-list, so the configured host must win.
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "example.com" {
		t.Errorf("host = %q, want %q", body, "example.com")
	}
}

func TestFromContextMissing(t *testing.T) {
	if _, ok := FromContext(context.Background()); ok {
		t.Error("FromContext reported a Current on an empty context")
	}
}

func TestRequestFromHTTP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://www.example.jp:8080/foo/bar?x=1", nil)

	got := RequestFromHTTP(req)
	if got.Host != "www.example.jp" {
		t.Errorf("Host = %q, want %q", got.Host, "www.example.jp")
	}
	if got.Port != 8080 {
		t.Errorf("Port = %d, want 8080", got.Port)
	}
	if got.URI != "/foo/bar?x=1" {
		t.Errorf("URI = %q, want %q", got.URI, "/foo/bar?x=1")
	}

	// No port in the Host header.
	req = httptest.NewRequest(http.MethodGet, "http://www.example.jp/", nil)
	got = RequestFromHTTP(req)
	if got.Host != "www.example.jp" || got.Port != 0 {
		t.Errorf("Host/Port = %q/%d, want www.example.jp/0", got.Host, got.Port)
	}
}
