package controllers

import (
	"net/http"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomAmenityController struct {
	amenities *services.RoomAmenityService
}

func NewRoomAmenityController(amenities *services.RoomAmenityService) *RoomAmenityController {
	return &RoomAmenityController{amenities: amenities}
}

func (ac *RoomAmenityController) List(c *gin.Context) {
	amenities, err := ac.amenities.ListByRoom(c.Query("room_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", amenities)
}

func (ac *RoomAmenityController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	amenity, err := ac.amenities.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", amenity)
}

// Create handles both shapes: a single amenity row, or a bulk replace when
// the body carries room_id plus an amenities array.
func (ac *RoomAmenityController) Create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	if rawList, isBulk := body["amenities"]; isBulk {
		roomID, hasRoom := numberField(body, "roomId", "room_id")
		list, isList := rawList.([]interface{})
		if !hasRoom || !isList {
			utils.JSONError(c, http.StatusBadRequest, "room_id and amenities array are required", nil)
			return
		}
		amenities := make([]map[string]interface{}, 0, len(list))
		for _, item := range list {
			m, isMap := item.(map[string]interface{})
			if !isMap {
				utils.JSONError(c, http.StatusBadRequest, "amenities must be an array of objects", nil)
				return
			}
			amenities = append(amenities, m)
		}

		result, err := ac.amenities.ReplaceForRoom(uint(roomID), amenities, actor(c), requestMeta(c))
		if err != nil {
			respondError(c, err)
			return
		}
		utils.JSONSuccess(c, http.StatusOK, "Room amenities updated successfully", result)
		return
	}

	amenity, err := ac.amenities.Create(body, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Room amenity created successfully", amenity)
}

func (ac *RoomAmenityController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	amenity, err := ac.amenities.Update(id, body, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room amenity updated successfully", amenity)
}

func (ac *RoomAmenityController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := ac.amenities.Delete(id, actor(c), requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room amenity deleted successfully", nil)
}
