package handlers

import (
	"errors"
	"net/http"

	"planner/backend/internal/models"
	"planner/backend/internal/services"
	"planner/backend/internal/store"

	"github.com/gin-gonic/gin"
)

type AreaHandler struct {
	areaService services.AreaService
}

func NewAreaHandler(areaService services.AreaService) *AreaHandler {
	return &AreaHandler{areaService: areaService}
}

func (h *AreaHandler) CreateArea(c *gin.Context) {
	var input struct {
		Name string `json:"name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := h.areaService.Create(input.Name)
	if err != nil {
		handleAreaError(c, err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

func (h *AreaHandler) GetAreas(c *gin.Context) {
	areas, err := h.areaService.List()
	if err != nil {
		handleAreaError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *AreaHandler) GetAreaByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "area not found"})
		return
	}
	area, err := h.areaService.Get(id)
	if err != nil {
		handleAreaError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) UpdateArea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "area not found"})
		return
	}
	var patch models.AreaPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	area, err := h.areaService.Update(id, patch)
	if err != nil {
		handleAreaError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *AreaHandler) DeleteArea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "area not found"})
		return
	}
	if err := h.areaService.Delete(id); err != nil {
		handleAreaError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Area deleted!"})
}

func handleAreaError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "area not found"})
	case errors.Is(err, store.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process area request"})
	}
}
