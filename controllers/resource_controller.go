package controllers

import (
	"net/http"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

// ResourceController serves one table through the generic CRUD engine.
// Everything entity-specific lives in the TableConfig hooks.
type ResourceController struct {
	crud *services.CrudService
	cfg  services.TableConfig
}

func NewResourceController(crud *services.CrudService, cfg services.TableConfig) *ResourceController {
	return &ResourceController{crud: crud, cfg: cfg}
}

func (rc *ResourceController) List(c *gin.Context) {
	var filterColumn, filterValue string
	for param, column := range rc.cfg.Filters {
		if v := c.Query(param); v != "" {
			filterColumn, filterValue = column, v
			break
		}
	}

	items, err := rc.crud.List(rc.cfg, filterColumn, filterValue)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", items)
}

func (rc *ResourceController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	item, err := rc.crud.Get(rc.cfg, id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", item)
}

func (rc *ResourceController) Create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	item, err := rc.crud.Create(rc.cfg, body, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rc.cfg.Resource+" created successfully", item)
}

func (rc *ResourceController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	item, err := rc.crud.Update(rc.cfg, id, body, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.cfg.Resource+" updated successfully", item)
}

func (rc *ResourceController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.crud.Delete(rc.cfg, id, actor(c), requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rc.cfg.Resource+" deleted successfully", nil)
}
