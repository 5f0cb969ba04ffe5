package handler

import (
	"net/http"

	"showroom/internal/dto"
	"showroom/internal/model"
	"showroom/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct{ svc service.SettingsService }

func NewSettingsHandler(svc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	resp, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Tags serves the closed enumerations the frontend renders as pickers.
func Tags(c *gin.Context) {
	c.JSON(http.StatusOK, dto.TagsResponse{
		Categories:     model.Categories,
		Sizes:          model.Sizes,
		Colors:         model.Colors,
		PaymentMethods: model.PaymentMethods,
		LoyaltyTiers:   model.LoyaltyTiers,
	})
}
