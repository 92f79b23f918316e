package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"

	"github.com/taskmate/taskmate-backend-go/internal/pkg/storage"
	"golang.org/x/image/draw"
)

const (
	AvatarSize    = 300
	avatarQuality = 80

	// MaxAvatarBytes caps the encoded upload read into memory.
	MaxAvatarBytes = 5 << 20
)

var ErrUnsupportedImage = errors.New("image must be a jpeg or png")

type FileService interface {
	// UploadAvatar normalizes the image and stores it as avatars/<userID>.jpg,
	// returning its public URL.
	UploadAvatar(ctx context.Context, userID int64, file io.Reader) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

func (s *fileServiceImpl) UploadAvatar(ctx context.Context, userID int64, file io.Reader) (string, error) {
	buffer, err := io.ReadAll(io.LimitReader(file, MaxAvatarBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}
	if len(buffer) > MaxAvatarBytes {
		return "", fmt.Errorf("%w: larger than %d bytes", ErrUnsupportedImage, MaxAvatarBytes)
	}

	encoded, err := resizeAvatar(buffer)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("avatars/%d.jpg", userID)
	key, err := s.storage.Upload(ctx, bytes.NewReader(encoded), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	return s.storage.URL(key), nil
}

// resizeAvatar decodes a jpeg or png, crops the centered square and scales it
// to AvatarSize, then re-encodes as jpeg.
func resizeAvatar(buffer []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}
	if format != "jpeg" && format != "png" {
		return nil, fmt.Errorf("%w: got %s", ErrUnsupportedImage, format)
	}

	dst := image.NewRGBA(image.Rect(0, 0, AvatarSize, AvatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, coverCrop(img.Bounds()), draw.Src, nil)

	var out bytes.Buffer
	if err := jpeg.Encode(&out, dst, &jpeg.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode JPEG: %w", err)
	}
	return out.Bytes(), nil
}

// coverCrop returns the largest centered square inside b.
func coverCrop(b image.Rectangle) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	side := min(w, h)
	x0 := b.Min.X + (w-side)/2
	y0 := b.Min.Y + (h-side)/2
	return image.Rect(x0, y0, x0+side, y0+side)
}
