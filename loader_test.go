// SPDX-License-Identifier: EPL-2.0

package audmix

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFileLoader_Open(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFixture(t, dir, "sfx/hit.wav", []byte("payload"))
	loader := FileLoader{Root: dir}

	rc, err := loader.Open(context.Background(), "sfx/hit.wav")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("Open() content = %q, want %q", got, "payload")
	}
}

func TestFileLoader_Errors(t *testing.T) {
	t.Parallel()

	loader := FileLoader{Root: t.TempDir()}

	_, err := loader.Open(context.Background(), "missing.wav")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Open(missing) error = %v, want fs.ErrNotExist", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = loader.Open(ctx, "missing.wav")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open(canceled) error = %v, want context.Canceled", err)
	}
}

func newAssetServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/assets/1.wav", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("riff"))
	})
	mux.HandleFunc("/assets/broken.wav", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPLoader_Open(t *testing.T) {
	t.Parallel()

	srv := newAssetServer(t)

	tests := []struct {
		name    string
		loader  HTTPLoader
		ref     string
		want    string
		wantErr error
	}{
		{
			name:   "relative to base",
			loader: HTTPLoader{Client: srv.Client(), BaseURL: srv.URL + "/assets"},
			ref:    "1.wav",
			want:   "riff",
		},
		{
			name:   "absolute url",
			loader: HTTPLoader{Client: srv.Client(), BaseURL: "http://unused.invalid/"},
			ref:    srv.URL + "/assets/1.wav",
			want:   "riff",
		},
		{
			name:    "not found",
			loader:  HTTPLoader{Client: srv.Client(), BaseURL: srv.URL + "/assets/"},
			ref:     "2.wav",
			wantErr: fs.ErrNotExist,
		},
		{
			name:   "server error",
			loader: HTTPLoader{Client: srv.Client(), BaseURL: srv.URL + "/assets"},
			ref:    "broken.wav",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rc, err := tt.loader.Open(context.Background(), tt.ref)
			if tt.want == "" {
				if err == nil {
					rc.Close()
					t.Fatal("Open() error = nil, want error")
				}
				if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
					t.Errorf("Open() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Open() error = %v", err)
			}
			defer rc.Close()

			got, _ := io.ReadAll(rc)
			if string(got) != tt.want {
				t.Errorf("Open() body = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHTTPLoader_Canceled(t *testing.T) {
	t.Parallel()

	srv := newAssetServer(t)
	loader := HTTPLoader{Client: srv.Client(), BaseURL: srv.URL + "/assets"}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Open(ctx, "1.wav")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Open() error = %v, want context.Canceled", err)
	}
}

func TestFormatOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		ref  string
		want string
	}{
		{"1.wav", "wav"},
		{"viper.MP3", "mp3"},
		{"midis/60.ogg", "ogg"},
		{"https://example.com/a/b.flac?sig=abc#t=1", "flac"},
		{"noext", ""},
	}

	for _, tt := range tests {
		if got := formatOf(tt.ref); got != tt.want {
			t.Errorf("formatOf(%q) = %q, want %q", tt.ref, got, tt.want)
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := DefaultRegistry()
	for _, format := range []string{"wav", "mp3", "ogg", "oga", "aiff", "aif", "flac"} {
		if _, ok := r.Get(format); !ok {
			t.Errorf("DefaultRegistry() missing %q", format)
		}
	}
}
