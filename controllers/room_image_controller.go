package controllers

import (
	"net/http"

	"cms-backend/services"
	"cms-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomImageController struct {
	images *services.RoomImageService
}

func NewRoomImageController(images *services.RoomImageService) *RoomImageController {
	return &RoomImageController{images: images}
}

func (ic *RoomImageController) List(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID == "" {
		utils.JSONError(c, http.StatusBadRequest, "room_id is required", nil)
		return
	}
	links, err := ic.images.ListByRoom(roomID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Success", links)
}

// Create links an image to a room.
func (ic *RoomImageController) Create(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	roomID, hasRoom := numberField(body, "roomId", "room_id")
	imageID, hasImage := numberField(body, "imageId", "image_id")
	if !hasRoom || !hasImage {
		utils.JSONError(c, http.StatusBadRequest, "room_id and image_id are required", nil)
		return
	}

	isPrimary := false
	if v, ok := body["isPrimary"]; ok {
		isPrimary = utils.AsBool(v)
	} else if v, ok := body["is_primary"]; ok {
		isPrimary = utils.AsBool(v)
	}
	sortOrder := 0
	if n, ok := numberField(body, "sortOrder", "sort_order"); ok {
		sortOrder = int(n)
	}

	err := ic.images.Add(uint(roomID), uint(imageID), isPrimary, sortOrder, actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "Image added to room successfully", nil)
}

// Delete removes a link; the (room_id, image_id) pair comes in the body.
func (ic *RoomImageController) Delete(c *gin.Context) {
	body, ok := bindBody(c)
	if !ok {
		return
	}

	roomID, hasRoom := numberField(body, "roomId", "room_id")
	imageID, hasImage := numberField(body, "imageId", "image_id")
	if !hasRoom || !hasImage {
		utils.JSONError(c, http.StatusBadRequest, "room_id and image_id are required", nil)
		return
	}

	err := ic.images.Remove(uint(roomID), uint(imageID), actor(c), requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "Image removed from room successfully", nil)
}
