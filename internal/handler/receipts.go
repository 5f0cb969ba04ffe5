package handler

import (
	"fmt"
	"net/http"

	"showroom/internal/dto"
	"showroom/internal/service"

	"github.com/gin-gonic/gin"
)

type ReceiptsHandler struct{ svc service.ReceiptService }

func NewReceiptsHandler(svc service.ReceiptService) *ReceiptsHandler {
	return &ReceiptsHandler{svc: svc}
}

// Download streams the receipt PDF for a recorded sale.
func (h *ReceiptsHandler) Download(c *gin.Context) {
	invoice := c.Param("invoice")
	pdfData, err := h.svc.Render(c.Request.Context(), invoice)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="receipt_%s.pdf"`, invoice))
	c.Data(http.StatusOK, "application/pdf", pdfData)
}

// Email queues the receipt for async delivery and returns 202.
func (h *ReceiptsHandler) Email(c *gin.Context) {
	var req dto.EmailReceiptRequest
	// body is optional; an empty POST falls back to the customer's address
	if c.Request.ContentLength > 0 && !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Email(c.Request.Context(), c.Param("invoice"), req.To); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
