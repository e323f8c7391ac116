// Package media convierte una imagen local en el string base64 que
// viaja dentro de los bodies JSON (pet_photo, profile_photo, proof).
// El backend no acepta multipart: todo es base64 embebido.
package media

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"os"

	// Formatos que entregan los pickers de galería.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var (
	ErrEmptyPath        = errors.New("media: empty image path")
	ErrUnsupportedImage = errors.New("media: not a supported image")
)

// Image es el payload listo para embeber en JSON.
type Image struct {
	Base64 string
	MIME   string
}

// EncodeFile lee y codifica una imagen local.
// Falla explícito si el archivo no se puede leer o no decodifica como
// jpeg/png/webp; nunca sustituye un placeholder (eso lo decide el caller).
func EncodeFile(path string) (Image, error) {
	if path == "" {
		return Image{}, ErrEmptyPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("media: read %s: %w", path, err)
	}

	img, err := EncodeBytes(data)
	if err != nil {
		return Image{}, fmt.Errorf("media: %s: %w", path, err)
	}
	return img, nil
}

// EncodeBytes valida que los bytes decodifiquen como imagen y los
// codifica. DecodeConfig solo lee headers, no decodifica pixels.
func EncodeBytes(data []byte) (Image, error) {
	if len(data) == 0 {
		return Image{}, ErrUnsupportedImage
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrUnsupportedImage, err)
	}

	return Image{
		Base64: base64.StdEncoding.EncodeToString(data),
		MIME:   "image/" + format,
	}, nil
}
