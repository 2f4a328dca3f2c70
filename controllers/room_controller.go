package controllers

import (
	"net/http"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

func (rc *RoomController) List(c *gin.Context) {
	rooms, err := rc.rooms.List(c.Query("status"), c.Query("room_type_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", rooms)
}

func (rc *RoomController) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	room, err := rc.rooms.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", room)
}

func (rc *RoomController) Create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}
	room, err := rc.rooms.Create(body, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Room created successfully", room)
}

func (rc *RoomController) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	body, ok := bindBody(c)
	if !ok {
		return
	}
	room, err := rc.rooms.Update(id, body, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room updated successfully", room)
}

func (rc *RoomController) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := rc.rooms.Delete(id, actor(c), requestMeta(c)); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Room deleted successfully", nil)
}
