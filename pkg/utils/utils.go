package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

type IUtils interface {
	NewULIDFromTimestamp(t time.Time) (string, error)
	ValidateImageFile(file *multipart.FileHeader) error
	ReadImageFile(file *multipart.FileHeader) ([]byte, error)
	ValidateImageBytes(data []byte) error
	Digest(data []byte) string
}

type utils struct {
	maxFileSize int64
}

func New(maxFileSize int64) IUtils {
	if maxFileSize <= 0 {
		maxFileSize = 10 * 1024 * 1024
	}
	return &utils{
		maxFileSize: maxFileSize,
	}
}

func (u *utils) NewULIDFromTimestamp(t time.Time) (string, error) {
	ms := ulid.Timestamp(t)
	entropy := ulid.Monotonic(rand.Reader, 0)

	id, err := ulid.New(ms, entropy)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}

func (u *utils) ValidateImageFile(file *multipart.FileHeader) error {
	if file == nil {
		return errors.New("no file uploaded")
	}

	if file.Size > u.maxFileSize {
		return fmt.Errorf("file size %d exceeds limit %d", file.Size, u.maxFileSize)
	}

	return nil
}

// ReadImageFile reads an uploaded file and checks that it looks like an image,
// either by sniffing its bytes or by its declared content type.
func (u *utils) ReadImageFile(file *multipart.FileHeader) ([]byte, error) {
	if err := u.ValidateImageFile(file); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, u.maxFileSize+1))
	if err != nil {
		return nil, err
	}

	if strings.HasPrefix(file.Header.Get("Content-Type"), "image/") && len(data) > 0 && int64(len(data)) <= u.maxFileSize {
		return data, nil
	}

	if err := u.ValidateImageBytes(data); err != nil {
		return nil, err
	}

	return data, nil
}

func (u *utils) ValidateImageBytes(data []byte) error {
	if len(data) == 0 {
		return errors.New("empty image")
	}

	if int64(len(data)) > u.maxFileSize {
		return fmt.Errorf("image size %d exceeds limit %d", len(data), u.maxFileSize)
	}

	if contentType := http.DetectContentType(data); !strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("uploaded file is not an image (%s)", contentType)
	}

	return nil
}

// Digest returns the hex SHA-256 of data, used to recognise repeated uploads.
func (u *utils) Digest(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
