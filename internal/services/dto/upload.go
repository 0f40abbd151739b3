package dto

// CVUploadResponse - ответ POST /api/applications/cv
type CVUploadResponse struct {
	CVURL       string `json:"cvUrl"`
	FileName    string `json:"fileName"`
	Size        int64  `json:"size"`
	ContentType string `json:"contentType"`
}
