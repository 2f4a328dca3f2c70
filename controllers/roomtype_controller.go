package controllers

import (
	"net/http"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

// RoomTypeController reuses the generic engine for reads and writes; only
// delete goes through the room type service for the in-use check.
type RoomTypeController struct {
	*ResourceController
	types *services.RoomTypeService
}

func NewRoomTypeController(crud *services.CrudService, types *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{
		ResourceController: NewResourceController(crud, services.RoomTypesConfig()),
		types:              types,
	}
}

func (rc *RoomTypeController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.types.Delete(id, actor(c), requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room Type deleted successfully", nil)
}
