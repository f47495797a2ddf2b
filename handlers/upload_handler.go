package handlers

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/thethao247/backend/apperrors"
	"github.com/thethao247/backend/models"
	"github.com/thethao247/backend/utils"
)

// 10 MB cap on uploaded images.
const maxUploadSize = 10 << 20

type UploadHandler struct{}

// UploadImage accepts a multipart image from an admin, pushes it to R2 and
// returns the public URL to use as an article's image_url.
func (h *UploadHandler) UploadImage(w http.ResponseWriter, r *http.Request, user *models.User) {
	if !user.IsAdmin() {
		writeError(w, apperrors.ErrForbidden)
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid multipart form: " + err.Error(),
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "image file is required",
		})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize))
	if err != nil {
		writeError(w, err)
		return
	}

	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "only image uploads are allowed",
		})
		return
	}

	filename := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(header.Filename))
	fileURL, err := utils.UploadToR2(data, filename, contentType)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, ApiResponse{
		Success: true,
		Message: "Image uploaded successfully",
		Data: map[string]interface{}{
			"url": fileURL,
		},
	})
}
