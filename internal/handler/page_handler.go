package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"agroworld/internal/model"
)

// PageHandler serves the static reference pages and the session stub. Login
// is a placeholder: it stamps a fixed identity with no credential check.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

func (h *PageHandler) GetIndex(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{Page: "index"})
}

func (h *PageHandler) GetCropCare(c *gin.Context) {
	crops := make([]CropGuideResponse, 0, len(model.CropCatalog))
	for _, crop := range model.CropCatalog {
		crops = append(crops, CropGuideResponse{
			NameKey:     crop.NameKey,
			DiseaseKeys: crop.DiseaseKeys,
			CareKey:     crop.CareKey,
			Icon:        crop.Icon,
		})
	}

	c.JSON(http.StatusOK, gin.H{"crops": crops})
}

func (h *PageHandler) GetLogistics(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{Page: "logistics"})
}

func (h *PageHandler) GetSchemes(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{Page: "schemes"})
}

func (h *PageHandler) GetMarket(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{Page: "market", PageTitle: "Market Price Index"})
}

func (h *PageHandler) GetLogin(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{Page: "auth", AuthType: "login"})
}

func (h *PageHandler) PostLogin(c *gin.Context) {
	session := sessions.Default(c)
	session.Set("user_id", 1)
	session.Set("user_name", "Rahul")
	if err := session.Save(); err != nil {
		slog.Error("error saving session", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Session error"})
		return
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) GetLogout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		slog.Error("error clearing session", "error", err)
	}

	c.Redirect(http.StatusFound, "/")
}

func (h *PageHandler) GetRegister(c *gin.Context) {
	c.JSON(http.StatusOK, PageResponse{Page: "auth", AuthType: "register"})
}
