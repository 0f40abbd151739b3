package services

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"jobportal/internal/storage"
	"jobportal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cvTypes = []string{
	"application/pdf",
	"application/msword",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// fileHeader собирает multipart-форму и возвращает заголовок единственного файла
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	require.Len(t, form.File["file"], 1)
	return form.File["file"][0]
}

func newUploadFixture(t *testing.T, maxSize int64) (UploadService, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(storage.Config{BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)
	return NewUploadService(store, UploadConfig{MaxSize: maxSize, AllowedTypes: cvTypes}), dir
}

func TestUploadCV_PDFBySignature(t *testing.T) {
	svc, dir := newUploadFixture(t, 1024)
	content := []byte("%PDF-1.4\n%fake cv\n")

	resp, err := svc.UploadCV(context.Background(), fileHeader(t, "cv.bin", "application/octet-stream", content))
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", resp.ContentType)
	assert.Equal(t, "cv.bin", resp.FileName)
	assert.EqualValues(t, len(content), resp.Size)
	require.True(t, strings.HasPrefix(resp.CVURL, "/uploads/cv/"))
	assert.True(t, strings.HasSuffix(resp.CVURL, ".pdf"))

	stored, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(resp.CVURL, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestUploadCV_DeclaredWordType(t *testing.T) {
	svc, _ := newUploadFixture(t, 1024)
	docx := "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

	resp, err := svc.UploadCV(context.Background(), fileHeader(t, "cv.docx", docx, []byte("PK\x03\x04 not really a zip")))
	require.NoError(t, err)
	assert.Equal(t, docx, resp.ContentType)
	assert.True(t, strings.HasSuffix(resp.CVURL, ".docx"))
}

func TestUploadCV_Rejects(t *testing.T) {
	svc, dir := newUploadFixture(t, 16)

	_, err := svc.UploadCV(context.Background(), nil)
	assertField(t, err, apperrors.CodeValidation, "file")

	_, err = svc.UploadCV(context.Background(), fileHeader(t, "notes.txt", "text/plain", []byte("hello")))
	assertField(t, err, apperrors.CodeValidation, "file")

	_, err = svc.UploadCV(context.Background(), fileHeader(t, "big.pdf", "application/pdf", bytes.Repeat([]byte("x"), 17)))
	assertField(t, err, apperrors.CodeValidation, "file")

	_, err = svc.UploadCV(context.Background(), fileHeader(t, "empty.pdf", "application/pdf", nil))
	assertField(t, err, apperrors.CodeValidation, "file")

	// ничего не сохранено
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUploadCV_ChecksWordSignatures(t *testing.T) {
	svc, dir := newUploadFixture(t, 1024)
	ole := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, []byte("legacy word body")...)

	resp, err := svc.UploadCV(context.Background(), fileHeader(t, "cv.doc", "application/msword", ole))
	require.NoError(t, err)
	assert.Equal(t, "application/msword", resp.ContentType)
	assert.True(t, strings.HasSuffix(resp.CVURL, ".doc"))

	// тип по расширению тоже сверяется с содержимым
	resp, err = svc.UploadCV(context.Background(), fileHeader(t, "old.doc", "application/octet-stream", ole))
	require.NoError(t, err)
	assert.Equal(t, "application/msword", resp.ContentType)

	cases := map[string]*multipart.FileHeader{
		"html as doc": fileHeader(t, "cv.doc", "application/msword", []byte("<html><script>alert(1)</script></html>")),
		"zip as doc":  fileHeader(t, "cv.doc", "application/msword", []byte("PK\x03\x04 zip body")),
		"ole as docx": fileHeader(t, "cv.docx", cvTypes[2], ole),
		"text as pdf": fileHeader(t, "cv.pdf", "application/pdf", []byte("plain text")),
		"html by ext": fileHeader(t, "cv.doc", "", []byte("<html></html>")),
	}
	for name, file := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.UploadCV(context.Background(), file)
			assertField(t, err, apperrors.CodeValidation, "file")
		})
	}

	entries, err := os.ReadDir(filepath.Join(dir, "cv"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}
