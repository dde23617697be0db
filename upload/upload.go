package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Multipart form field names the upload endpoint accepts files under.
const (
	ImageField = "imageFile"
	ModelField = "modelFile"
)

// ErrExtension is returned when a file's original name carries an
// extension outside the allow-list for its field.
var ErrExtension = errors.New("Only images (.jpg, .jpeg, .png) and 3D models (.glb, .gltf) are allowed.")

var (
	imageExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}
	modelExtensions = map[string]bool{".glb": true, ".gltf": true}
)

// Saver routes uploaded files to the image or model directory depending
// on the form field they arrived under, under a generated filename.
type Saver struct {
	ImageDir string
	ModelDir string
}

// NewSaver creates both destination directories if absent.
func NewSaver(imageDir, modelDir string) (*Saver, error) {
	for _, dir := range []string{imageDir, modelDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("error creating directory %s: %v", dir, err)
		}
	}
	return &Saver{ImageDir: imageDir, ModelDir: modelDir}, nil
}

// Allowed reports whether the original filename carries a permitted
// extension for the given field. The check is case-insensitive.
func Allowed(field, filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	switch field {
	case ImageField:
		return imageExtensions[ext]
	case ModelField:
		return modelExtensions[ext]
	}
	return false
}

// Save streams the uploaded file into the destination directory for its
// field and returns the generated filename.
func (s *Saver) Save(field string, fileHeader *multipart.FileHeader) (string, error) {
	if !Allowed(field, fileHeader.Filename) {
		return "", ErrExtension
	}

	dir, err := s.dirFor(field)
	if err != nil {
		return "", err
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %v", err)
	}
	defer src.Close()

	name := uuid.New().String() + strings.ToLower(filepath.Ext(fileHeader.Filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %v", name, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to write file %s: %v", name, err)
	}
	return name, nil
}

// Remove deletes a previously saved file. Callers use it to clean up
// when a later step of the upload fails.
func (s *Saver) Remove(field, name string) error {
	dir, err := s.dirFor(field)
	if err != nil {
		return err
	}
	return os.Remove(filepath.Join(dir, name))
}

func (s *Saver) dirFor(field string) (string, error) {
	switch field {
	case ImageField:
		return s.ImageDir, nil
	case ModelField:
		return s.ModelDir, nil
	}
	return "", fmt.Errorf("unknown upload field %q", field)
}
