package upload

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func fileHeaderFor(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing writer: %v", err)
	}

	req := httptest.NewRequest("POST", "/upload-model", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(32 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File[field][0]
}

func newTestSaver(t *testing.T) *Saver {
	t.Helper()
	saver, err := NewSaver(filepath.Join(t.TempDir(), "images"), filepath.Join(t.TempDir(), "uploads"))
	if err != nil {
		t.Fatalf("NewSaver: %v", err)
	}
	return saver
}

func TestAllowed(t *testing.T) {
	tests := []struct {
		field    string
		filename string
		want     bool
	}{
		{ImageField, "photo.jpg", true},
		{ImageField, "photo.jpeg", true},
		{ImageField, "photo.png", true},
		{ImageField, "PHOTO.JPG", true},
		{ImageField, "photo.gif", false},
		{ImageField, "model.glb", false},
		{ImageField, "noextension", false},
		{ModelField, "house.glb", true},
		{ModelField, "house.gltf", true},
		{ModelField, "HOUSE.GLTF", true},
		{ModelField, "house.obj", false},
		{ModelField, "photo.jpg", false},
		{"otherField", "photo.jpg", false},
	}

	for _, tt := range tests {
		if got := Allowed(tt.field, tt.filename); got != tt.want {
			t.Errorf("Allowed(%q, %q) = %v, want %v", tt.field, tt.filename, got, tt.want)
		}
	}
}

func TestSaveWritesGeneratedName(t *testing.T) {
	saver := newTestSaver(t)
	header := fileHeaderFor(t, ImageField, "PHOTO.JPG", "jpegbytes")

	name, err := saver.Save(ImageField, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !regexp.MustCompile(`^[0-9a-f-]{36}\.jpg$`).MatchString(name) {
		t.Errorf("generated name %q does not match uuid pattern", name)
	}

	data, err := os.ReadFile(filepath.Join(saver.ImageDir, name))
	if err != nil {
		t.Fatalf("reading saved file: %v", err)
	}
	if string(data) != "jpegbytes" {
		t.Errorf("saved content = %q, want %q", data, "jpegbytes")
	}
}

func TestSaveRoutesModelToModelDir(t *testing.T) {
	saver := newTestSaver(t)
	header := fileHeaderFor(t, ModelField, "house.glb", "glbbytes")

	name, err := saver.Save(ModelField, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasSuffix(name, ".glb") {
		t.Errorf("generated name %q should keep the .glb extension", name)
	}
	if _, err := os.Stat(filepath.Join(saver.ModelDir, name)); err != nil {
		t.Errorf("expected model file in ModelDir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(saver.ImageDir, name)); !os.IsNotExist(err) {
		t.Errorf("model file must not land in ImageDir")
	}
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	saver := newTestSaver(t)
	header := fileHeaderFor(t, ImageField, "malware.exe", "bytes")

	if _, err := saver.Save(ImageField, header); err != ErrExtension {
		t.Fatalf("Save = %v, want ErrExtension", err)
	}

	entries, err := os.ReadDir(saver.ImageDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("rejected upload left %d files on disk", len(entries))
	}
}

func TestRemove(t *testing.T) {
	saver := newTestSaver(t)
	header := fileHeaderFor(t, ImageField, "photo.png", "bytes")

	name, err := saver.Save(ImageField, header)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := saver.Remove(ImageField, name); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(filepath.Join(saver.ImageDir, name)); !os.IsNotExist(err) {
		t.Errorf("file still present after Remove")
	}
}

func TestSaveUnknownField(t *testing.T) {
	saver := newTestSaver(t)
	if _, err := saver.Save("otherField", fileHeaderFor(t, "otherField", "photo.png", "x")); err == nil {
		t.Fatal("expected error for unknown field")
	}
}
