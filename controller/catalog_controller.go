// api/controller/catalog_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	hazard_errors "github.com/dev-mohitbeniwal/hazard/api/errors"
	"github.com/dev-mohitbeniwal/hazard/api/model"
	"github.com/dev-mohitbeniwal/hazard/api/service"
)

type CatalogController struct {
	catalogService service.ICatalogService
}

func NewCatalogController(catalogService service.ICatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// RegisterRoutes registers the API routes
func (cc *CatalogController) RegisterRoutes(r *gin.RouterGroup) {
	observationTypes := r.Group("/observation-types")
	{
		observationTypes.POST("", cc.CreateObservationType)
		observationTypes.GET("", cc.ListObservationTypes)
		observationTypes.GET("/:id", cc.GetObservationType)
		observationTypes.PUT("/:id", cc.UpdateObservationType)
		observationTypes.DELETE("/:id", cc.DeleteObservationType)
		observationTypes.GET("/:id/values", cc.ListObservationValues)
		observationTypes.POST("/:id/values", cc.CreateObservationValue)
	}
	r.PUT("/observation-values/:id", cc.UpdateObservationValue)
	r.DELETE("/observation-values/:id", cc.DeleteObservationValue)

	mitigationTypes := r.Group("/mitigation-types")
	{
		mitigationTypes.POST("", cc.CreateMitigationType)
		mitigationTypes.GET("", cc.ListMitigationTypes)
		mitigationTypes.GET("/:id", cc.GetMitigationType)
		mitigationTypes.PUT("/:id", cc.UpdateMitigationType)
		mitigationTypes.DELETE("/:id", cc.DeleteMitigationType)
		mitigationTypes.GET("/:id/values", cc.ListMitigationValues)
		mitigationTypes.POST("/:id/values", cc.CreateMitigationValue)
	}
	r.PUT("/mitigation-values/:id", cc.UpdateMitigationValue)
	r.DELETE("/mitigation-values/:id", cc.DeleteMitigationValue)
}

func (cc *CatalogController) CreateObservationType(c *gin.Context) {
	var observationType model.ObservationType
	if err := c.ShouldBindJSON(&observationType); err != nil {
		respondWithBindError(c, "Invalid observation type", hazard_errors.ErrInvalidCatalogData, err)
		return
	}

	created, err := cc.catalogService.CreateObservationType(c, observationType)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create observation type")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (cc *CatalogController) GetObservationType(c *gin.Context) {
	observationType, err := cc.catalogService.GetObservationType(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve observation type")
		return
	}

	c.JSON(http.StatusOK, observationType)
}

func (cc *CatalogController) ListObservationTypes(c *gin.Context) {
	types, err := cc.catalogService.ListObservationTypes(c)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list observation types")
		return
	}

	c.JSON(http.StatusOK, types)
}

func (cc *CatalogController) UpdateObservationType(c *gin.Context) {
	var observationType model.ObservationType
	if err := c.ShouldBindJSON(&observationType); err != nil {
		respondWithBindError(c, "Invalid observation type", hazard_errors.ErrInvalidCatalogData, err)
		return
	}

	updated, err := cc.catalogService.UpdateObservationType(c, c.Param("id"), observationType)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update observation type")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (cc *CatalogController) DeleteObservationType(c *gin.Context) {
	if err := cc.catalogService.DeleteObservationType(c, c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete observation type")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateObservationValue endpoint. The type comes from the path.
func (cc *CatalogController) CreateObservationValue(c *gin.Context) {
	var value model.ObservationValue
	if err := c.ShouldBindJSON(&value); err != nil {
		respondWithBindError(c, "Invalid observation value", hazard_errors.ErrInvalidCatalogData, err)
		return
	}
	value.ObservationTypeID = c.Param("id")

	created, err := cc.catalogService.CreateObservationValue(c, value)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create observation value")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (cc *CatalogController) ListObservationValues(c *gin.Context) {
	values, err := cc.catalogService.ListObservationValues(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list observation values")
		return
	}

	c.JSON(http.StatusOK, values)
}

func (cc *CatalogController) UpdateObservationValue(c *gin.Context) {
	var value model.ObservationValue
	if err := c.ShouldBindJSON(&value); err != nil {
		respondWithBindError(c, "Invalid observation value", hazard_errors.ErrInvalidCatalogData, err)
		return
	}

	updated, err := cc.catalogService.UpdateObservationValue(c, c.Param("id"), value)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update observation value")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (cc *CatalogController) DeleteObservationValue(c *gin.Context) {
	if err := cc.catalogService.DeleteObservationValue(c, c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete observation value")
		return
	}

	c.Status(http.StatusNoContent)
}

func (cc *CatalogController) CreateMitigationType(c *gin.Context) {
	var mitigationType model.MitigationType
	if err := c.ShouldBindJSON(&mitigationType); err != nil {
		respondWithBindError(c, "Invalid mitigation type", hazard_errors.ErrInvalidCatalogData, err)
		return
	}

	created, err := cc.catalogService.CreateMitigationType(c, mitigationType)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create mitigation type")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (cc *CatalogController) GetMitigationType(c *gin.Context) {
	mitigationType, err := cc.catalogService.GetMitigationType(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve mitigation type")
		return
	}

	c.JSON(http.StatusOK, mitigationType)
}

func (cc *CatalogController) ListMitigationTypes(c *gin.Context) {
	types, err := cc.catalogService.ListMitigationTypes(c)
	if err != nil {
		respondWithServiceError(c, err, "Failed to list mitigation types")
		return
	}

	c.JSON(http.StatusOK, types)
}

func (cc *CatalogController) UpdateMitigationType(c *gin.Context) {
	var mitigationType model.MitigationType
	if err := c.ShouldBindJSON(&mitigationType); err != nil {
		respondWithBindError(c, "Invalid mitigation type", hazard_errors.ErrInvalidCatalogData, err)
		return
	}

	updated, err := cc.catalogService.UpdateMitigationType(c, c.Param("id"), mitigationType)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update mitigation type")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (cc *CatalogController) DeleteMitigationType(c *gin.Context) {
	if err := cc.catalogService.DeleteMitigationType(c, c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete mitigation type")
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateMitigationValue endpoint. The type comes from the path.
func (cc *CatalogController) CreateMitigationValue(c *gin.Context) {
	var value model.MitigationValue
	if err := c.ShouldBindJSON(&value); err != nil {
		respondWithBindError(c, "Invalid mitigation value", hazard_errors.ErrInvalidCatalogData, err)
		return
	}
	value.MitigationTypeID = c.Param("id")

	created, err := cc.catalogService.CreateMitigationValue(c, value)
	if err != nil {
		respondWithServiceError(c, err, "Failed to create mitigation value")
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (cc *CatalogController) ListMitigationValues(c *gin.Context) {
	values, err := cc.catalogService.ListMitigationValues(c, c.Param("id"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to list mitigation values")
		return
	}

	c.JSON(http.StatusOK, values)
}

func (cc *CatalogController) UpdateMitigationValue(c *gin.Context) {
	var value model.MitigationValue
	if err := c.ShouldBindJSON(&value); err != nil {
		respondWithBindError(c, "Invalid mitigation value", hazard_errors.ErrInvalidCatalogData, err)
		return
	}

	updated, err := cc.catalogService.UpdateMitigationValue(c, c.Param("id"), value)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update mitigation value")
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (cc *CatalogController) DeleteMitigationValue(c *gin.Context) {
	if err := cc.catalogService.DeleteMitigationValue(c, c.Param("id")); err != nil {
		respondWithServiceError(c, err, "Failed to delete mitigation value")
		return
	}

	c.Status(http.StatusNoContent)
}
