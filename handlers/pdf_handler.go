package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/thethao247/backend/repository"
	"github.com/thethao247/backend/utils"
)

type PDFHandler struct {
	Repo *repository.PDFRepository
}

// ArticlePDF renders an article to PDF and streams it back for download.
func (h *PDFHandler) ArticlePDF(w http.ResponseWriter, r *http.Request, id string) {
	articleID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, ApiResponse{
			Success: false,
			Message: "invalid article id",
		})
		return
	}

	pdfBytes, err := utils.GenerateArticlePDF(h.Repo, articleID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, ApiResponse{
			Success: false,
			Message: "failed to generate PDF: " + err.Error(),
		})
		return
	}
	if len(pdfBytes) == 0 {
		writeJSON(w, http.StatusNotFound, ApiResponse{
			Success: false,
			Message: "article not found",
		})
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="article_%d.pdf"`, articleID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
