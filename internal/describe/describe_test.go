package describe

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStem(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1.jpg", "1"},
		{"a.b.jpg", "a.b"},
		{"noext", "noext"},
		{"photos/kyoto.png", "kyoto"},
		{".hidden", ".hidden"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.input))
		})
	}
}

func TestDirFetcher(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "1.txt"), []byte("Temple at dawn\n"), 0o600))

	f := DirFetcher{Dir: dir}

	text, err := f.Fetch(context.Background(), "1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Temple at dawn\n", text)

	_, err = f.Fetch(context.Background(), "2.jpg")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestHTTPFetcher(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/desc/1.txt":
			_, _ = w.Write([]byte("Fushimi Inari"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.URL+"/desc/", time.Second)

	text, err := f.Fetch(context.Background(), "1.jpg")
	require.NoError(t, err)
	assert.Equal(t, "Fushimi Inari", text)

	_, err = f.Fetch(context.Background(), "2.jpg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

type stubFetcher struct {
	text  string
	err   error
	calls atomic.Int32
}

func (s *stubFetcher) Fetch(_ context.Context, _ string) (string, error) {
	s.calls.Add(1)
	return s.text, s.err
}

func TestLoader_Load(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		err     error
		want    string
		wantErr bool
	}{
		{"success is trimmed", "  Night market \n", nil, "Night market", false},
		{"fetch error", "", errors.New("connection refused"), Placeholder, true},
		{"empty body", "  \n", nil, Placeholder, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &stubFetcher{text: tt.text, err: tt.err}
			l := NewLoader(f, 0, nil)

			r := l.Load(context.Background(), "1.jpg")

			assert.Equal(t, tt.want, r.Text)
			assert.Equal(t, tt.wantErr, r.Err != nil)
			assert.Equal(t, int32(1), f.calls.Load(), "never retried")
		})
	}
}

func TestLoader_HTTPErrorUsesPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	l := NewLoader(NewHTTPFetcher(srv.URL, time.Second), time.Second, nil)
	r := l.Load(context.Background(), "1.jpg")

	assert.Equal(t, Placeholder, r.Text)
	assert.Error(t, r.Err)
}

func TestLoader_Cmd(t *testing.T) {
	l := NewLoader(&stubFetcher{text: "Lanterns"}, 0, nil)

	msg := l.Cmd(3, "3.jpg")()

	loaded, ok := msg.(LoadedMsg)
	require.True(t, ok)
	assert.Equal(t, LoadedMsg{Index: 3, Filename: "3.jpg", Text: "Lanterns"}, loaded)
}
