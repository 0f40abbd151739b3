package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"jobportal/internal/logger"
	"jobportal/internal/services/dto"
	"jobportal/internal/storage"
	"jobportal/pkg/apperrors"

	"github.com/google/uuid"
)

// UploadConfig - ограничения на файлы резюме
type UploadConfig struct {
	MaxSize      int64
	AllowedTypes []string
}

type UploadService interface {
	UploadCV(ctx context.Context, file *multipart.FileHeader) (*dto.CVUploadResponse, error)
}

type uploadService struct {
	storage storage.Storage
	config  UploadConfig
}

func NewUploadService(storage storage.Storage, config UploadConfig) UploadService {
	return &uploadService{storage: storage, config: config}
}

var extensionsByType = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// сигнатуры начала файла: .doc - OLE2 контейнер, .docx - ZIP
var magicByType = map[string][]byte{
	"application/pdf":    []byte("%PDF-"),
	"application/msword": {0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": []byte("PK\x03\x04"),
}

func matchesSignature(contentType string, head []byte) bool {
	magic, ok := magicByType[contentType]
	return !ok || bytes.HasPrefix(head, magic)
}

func (s *uploadService) isAllowed(contentType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}

// detectContentType: PDF по сигнатуре, иначе заявленный тип или расширение
func detectContentType(file *multipart.FileHeader, head []byte) string {
	declared := strings.ToLower(strings.TrimSpace(strings.SplitN(file.Header.Get("Content-Type"), ";", 2)[0]))
	sniffed := http.DetectContentType(head)

	switch {
	case sniffed == "application/pdf":
		return sniffed
	case declared != "" && declared != "application/octet-stream":
		return declared
	}

	for contentType, ext := range extensionsByType {
		if strings.EqualFold(filepath.Ext(file.Filename), ext) {
			return contentType
		}
	}
	return sniffed
}

func (s *uploadService) UploadCV(ctx context.Context, file *multipart.FileHeader) (*dto.CVUploadResponse, error) {
	if file == nil {
		return nil, fieldError("upload", "file", "File is required")
	}
	if file.Size <= 0 {
		return nil, fieldError("upload", "file", "File is empty")
	}
	if s.config.MaxSize > 0 && file.Size > s.config.MaxSize {
		return nil, fieldError("upload", "file", fmt.Sprintf("File size exceeds the limit of %d bytes", s.config.MaxSize))
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	head := make([]byte, 512)
	n, err := io.ReadFull(src, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, apperrors.InternalError(err)
	}
	head = head[:n]

	contentType := detectContentType(file, head)
	if !s.isAllowed(contentType) {
		return nil, fieldError("upload", "file", "Unsupported file type: "+contentType)
	}
	if !matchesSignature(contentType, head) {
		logger.CtxWarn(ctx, "CV content does not match its type", "file_name", file.Filename, "content_type", contentType)
		return nil, fieldError("upload", "file", "File content does not match type "+contentType)
	}

	ext := extensionsByType[contentType]
	if ext == "" {
		ext = strings.ToLower(filepath.Ext(file.Filename))
	}
	key := fmt.Sprintf("cv/%s%s", uuid.NewString(), ext)

	reader := io.MultiReader(bytes.NewReader(head), src)
	if err := s.storage.Save(ctx, key, reader, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "CV uploaded", "key", key, "size", file.Size, "content_type", contentType)
	return &dto.CVUploadResponse{
		CVURL:       url,
		FileName:    file.Filename,
		Size:        file.Size,
		ContentType: contentType,
	}, nil
}
