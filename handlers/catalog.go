package handlers

import (
	"net/http"

	"maison/catalog"
	"maison/models"
	"maison/utils"

	"github.com/gin-gonic/gin"
)

// consultationView decorates an offering with its display price.
type consultationView struct {
	models.ConsultationType
	DisplayPrice string `json:"displayPrice"`
}

// GetLocations handles GET /api/catalog/locations.
func (h *HandlerBundle) GetLocations(c *gin.Context) {
	c.JSON(http.StatusOK, catalog.Locations())
}

// GetLocationByID handles GET /api/catalog/locations/:locationID.
func (h *HandlerBundle) GetLocationByID(c *gin.Context) {
	loc, ok := catalog.LocationByID(c.Param("locationID"))
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "location not found", c.Param("locationID"))
		return
	}
	c.JSON(http.StatusOK, loc)
}

// GetConsultationTypes handles GET /api/catalog/consultations.
func (h *HandlerBundle) GetConsultationTypes(c *gin.Context) {
	types := catalog.ConsultationTypes()
	views := make([]consultationView, 0, len(types))
	for _, ct := range types {
		views = append(views, consultationView{
			ConsultationType: ct,
			DisplayPrice:     utils.FormatCurrency(ct.Price),
		})
	}
	c.JSON(http.StatusOK, views)
}

// HealthCheck handles GET /health.
func (h *HandlerBundle) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
