package handlers

import (
	"errors"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/mapper"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/repository"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/validation"
	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// maxImageSize is the upload ceiling in bytes.
const maxImageSize = 10 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Images serves the /api/images endpoints.
type Images struct {
	repo repository.ImageRepository
}

func NewImages(repo repository.ImageRepository) *Images {
	return &Images{repo: repo}
}

// Upload handles POST /api/images/upload. The multipart form carries the
// binary under "file" plus "fileName" and an optional "fileDescription".
func (h *Images) Upload(w http.ResponseWriter, r *http.Request) error {
	// Cut oversized uploads off at the transport. The slack covers the
	// multipart envelope around a file at the limit.
	r.Body = http.MaxBytesReader(w, r.Body, maxImageSize+4096)

	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return writeViolations(w, validation.Violations{
				"file": {"file size cannot exceed 10MB"},
			})
		}
		return writeViolations(w, validation.Violations{
			"file": {"request is not a valid multipart form"},
		})
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return writeViolations(w, validation.Violations{
			"file": {"The file field is required"},
		})
	}
	defer file.Close()

	fileName := r.FormValue("fileName")
	extension := strings.ToLower(filepath.Ext(header.Filename))

	violations := validation.Violations{}
	if fileName == "" {
		violations["fileName"] = append(violations["fileName"], "The fileName field is required")
	} else if strings.ContainsAny(fileName, `/\`) || fileName == "." || fileName == ".." {
		violations["fileName"] = append(violations["fileName"], "fileName must not contain path separators")
	}
	if !allowedExtensions[extension] {
		violations["file"] = append(violations["file"], "unsupported file extension, use .jpg, .jpeg or .png")
	}
	if header.Size > maxImageSize {
		violations["file"] = append(violations["file"], "file size cannot exceed 10MB")
	}
	if len(violations) > 0 {
		return writeViolations(w, violations)
	}

	image := models.Image{
		FileName:        fileName,
		FileExtension:   extension,
		FileSizeInBytes: header.Size,
	}
	if description := r.FormValue("fileDescription"); description != "" {
		image.FileDescription = &description
	}

	if err := h.repo.Upload(r.Context(), &image, file, requestBaseURL(r)); err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.ImageToDto(image))
}
