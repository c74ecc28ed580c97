package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a multipart.FileHeader the way a parsed request would.
func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="image"; filename="`+name+`"`)
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestDiskImageStore_Save(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskImageStore(dir, "http://localhost:8080/", 5)
	require.NoError(t, err)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }
	s.suffix = func() string { return "a1b2c3d4" }

	url, err := s.Save(fileHeader(t, "me.png", "image/png", []byte("png-bytes")))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/1700000000000-a1b2c3d4-me.png", url)

	b, err := os.ReadFile(filepath.Join(dir, "1700000000000-a1b2c3d4-me.png"))
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(b))
}

func TestDiskImageStore_RejectsNonImages(t *testing.T) {
	s, err := NewDiskImageStore(t.TempDir(), "", 5)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "notes.txt", "text/plain", []byte("hi")))
	assert.ErrorIs(t, err, ErrNotImage)
}

func TestDiskImageStore_RejectsLargeFiles(t *testing.T) {
	s, err := NewDiskImageStore(t.TempDir(), "", 1)
	require.NoError(t, err)

	_, err = s.Save(fileHeader(t, "big.png", "image/png", make([]byte, 1024*1024+1)))
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestDiskImageStore_SameNameSameMillisecond(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskImageStore(dir, "", 5)
	require.NoError(t, err)
	s.now = func() time.Time { return time.UnixMilli(1700000000000) }

	first, err := s.Save(fileHeader(t, "me.png", "image/png", []byte("first")))
	require.NoError(t, err)
	second, err := s.Save(fileHeader(t, "me.png", "image/png", []byte("second")))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDiskImageStore_Remove(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDiskImageStore(dir, "http://localhost:8080", 5)
	require.NoError(t, err)

	url, err := s.Save(fileHeader(t, "me.png", "image/png", []byte("png-bytes")))
	require.NoError(t, err)
	require.NoError(t, s.Remove(url))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Already gone
	assert.NoError(t, s.Remove(url))
}
