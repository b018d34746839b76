package vibora

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestListMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/matches" {
			t.Errorf("path = %s, want /api/matches", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("auth header = %q, want Bearer tok", got)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"matches": []Match{
				{ID: "m1", Name: "semis", Status: "done"},
				{ID: "m2", Name: "finals", Status: "processing"},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	matches, err := client.ListMatches(context.Background())
	if err != nil {
		t.Fatalf("ListMatches: %v", err)
	}
	if len(matches) != 2 || matches[0].ID != "m1" {
		t.Errorf("matches = %+v", matches)
	}
}

func TestGetMatchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	_, err := client.GetMatch(context.Background(), "nope")
	if err == nil || !strings.Contains(err.Error(), "HTTP 404") {
		t.Errorf("err = %v, want HTTP 404", err)
	}
}

func TestUploadVideo(t *testing.T) {
	videoPath := filepath.Join(t.TempDir(), "match.mp4")
	if err := os.WriteFile(videoPath, []byte("fake video bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "POST" || r.URL.Path != "/api/matches" {
			t.Errorf("%s %s, want POST /api/matches", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("missing X-Request-ID header")
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		if got := r.FormValue("name"); got != "friday night" {
			t.Errorf("name field = %q", got)
		}
		f, _, err := r.FormFile("video")
		if err != nil {
			t.Fatalf("video part: %v", err)
		}
		defer f.Close()
		var buf bytes.Buffer
		buf.ReadFrom(f)
		if buf.String() != "fake video bytes" {
			t.Errorf("video content = %q", buf.String())
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Match{ID: "m9", Name: "friday night", Status: "queued"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	m, err := client.UploadVideo(context.Background(), videoPath, "friday night")
	if err != nil {
		t.Fatalf("UploadVideo: %v", err)
	}
	if m.ID != "m9" || m.Status != "queued" {
		t.Errorf("match = %+v", m)
	}
}

// newCSVServer serves a match record plus its CSV at csvPath.
func newCSVServer(t *testing.T, csvPath string, payload []byte) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/matches/m1", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Match{ID: "m1", Status: "done", CSVURL: csvPath})
	})
	mux.HandleFunc(csvPath, func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAnalysisCSVPlain(t *testing.T) {
	csv := "ball_vnorm\n1.0\n"
	srv := newCSVServer(t, "/files/m1.csv", []byte(csv))

	client := NewClient(srv.URL, "tok")
	got, err := client.FetchAnalysisCSV(context.Background(), "m1")
	if err != nil {
		t.Fatalf("FetchAnalysisCSV: %v", err)
	}
	if got != csv {
		t.Errorf("csv = %q, want %q", got, csv)
	}
}

func TestFetchAnalysisCSVGzip(t *testing.T) {
	csv := "ball_vnorm\n2.0\n"
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	gz.Write([]byte(csv))
	gz.Close()
	srv := newCSVServer(t, "/files/m1.csv.gz", buf.Bytes())

	client := NewClient(srv.URL, "tok")
	got, err := client.FetchAnalysisCSV(context.Background(), "m1")
	if err != nil {
		t.Fatalf("FetchAnalysisCSV: %v", err)
	}
	if got != csv {
		t.Errorf("csv = %q, want %q", got, csv)
	}
}

func TestFetchAnalysisCSVZstd(t *testing.T) {
	csv := "ball_vnorm\n3.0\n"
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	enc.Write([]byte(csv))
	enc.Close()
	srv := newCSVServer(t, "/files/m1.csv.zst", buf.Bytes())

	client := NewClient(srv.URL, "tok")
	got, err := client.FetchAnalysisCSV(context.Background(), "m1")
	if err != nil {
		t.Fatalf("FetchAnalysisCSV: %v", err)
	}
	if got != csv {
		t.Errorf("csv = %q, want %q", got, csv)
	}
}

func TestFetchAnalysisCSVNotReady(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Match{ID: "m1", Status: "processing"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "tok")
	_, err := client.FetchAnalysisCSV(context.Background(), "m1")
	if err == nil || !strings.Contains(err.Error(), "no analysis CSV") {
		t.Errorf("err = %v, want no-CSV error", err)
	}
}
