package file

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingStorage struct {
	path string
	data []byte
}

func (s *recordingStorage) Upload(_ context.Context, file io.Reader, path string, _ string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	s.path, s.data = path, data
	return path, nil
}

func (s *recordingStorage) Delete(context.Context, string) error { return nil }

func (s *recordingStorage) URL(path string) string { return "http://cdn.test/" + path }

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadAvatar_ResizesToSquareJPEG(t *testing.T) {
	store := &recordingStorage{}
	svc := NewFileService(store)

	url, err := svc.UploadAvatar(context.Background(), 42, bytes.NewReader(encodePNG(t, 640, 480)))
	require.NoError(t, err)
	assert.Equal(t, "http://cdn.test/avatars/42.jpg", url)
	assert.Equal(t, "avatars/42.jpg", store.path)

	cfg, format, err := image.DecodeConfig(bytes.NewReader(store.data))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
	assert.Equal(t, AvatarSize, cfg.Width)
	assert.Equal(t, AvatarSize, cfg.Height)

	_, err = jpeg.Decode(bytes.NewReader(store.data))
	assert.NoError(t, err)
}

func TestUploadAvatar_RejectsNonImages(t *testing.T) {
	svc := NewFileService(&recordingStorage{})

	_, err := svc.UploadAvatar(context.Background(), 1, strings.NewReader("GIF89a not really"))
	assert.ErrorIs(t, err, ErrUnsupportedImage)
}

func TestCoverCrop(t *testing.T) {
	assert.Equal(t, image.Rect(80, 0, 560, 480), coverCrop(image.Rect(0, 0, 640, 480)))
	assert.Equal(t, image.Rect(0, 10, 100, 110), coverCrop(image.Rect(0, 0, 100, 120)))
}
