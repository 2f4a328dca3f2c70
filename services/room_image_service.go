package services

import (
	"errors"
	"fmt"

	"cms-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoomImageService manages the room_images join table. A room has at most
// one primary link; setting a new primary clears the flag on its siblings
// inside the same transaction as the upsert.
type RoomImageService struct {
	db     *gorm.DB
	logger *ActivityLogger
}

func NewRoomImageService(db *gorm.DB, logger *ActivityLogger) *RoomImageService {
	return &RoomImageService{db: db, logger: logger}
}

func (s *RoomImageService) ListByRoom(roomID string) ([]models.RoomImageDetail, error) {
	links := make([]models.RoomImageDetail, 0)
	err := s.db.Table("room_images").
		Select("room_images.*, images.src, images.alt, images.type, images.description").
		Joins("JOIN images ON room_images.image_id = images.id").
		Where("room_images.room_id = ?", roomID).
		Order("room_images.is_primary DESC, room_images.sort_order ASC").
		Scan(&links).Error
	return links, err
}

func (s *RoomImageService) exists(model interface{}, id uint) bool {
	var count int64
	s.db.Model(model).Where("id = ?", id).Count(&count)
	return count > 0
}

// Add links an image to a room, idempotent on the (roomId, imageId) pair: an
// existing link has its sort order and primary flag updated instead.
func (s *RoomImageService) Add(roomID, imageID uint, isPrimary bool, sortOrder int, actor *Actor, meta RequestMeta) error {
	errs := map[string]string{}
	if !s.exists(&models.Room{}, roomID) {
		errs["roomId"] = "Invalid room ID"
	}
	if !s.exists(&models.Image{}, imageID) {
		errs["imageId"] = "Invalid image ID"
	}
	if len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if isPrimary {
			if err := tx.Model(&models.RoomImage{}).
				Where("room_id = ?", roomID).
				Update("is_primary", false).Error; err != nil {
				return err
			}
		}
		link := models.RoomImage{
			RoomID:    roomID,
			ImageID:   imageID,
			SortOrder: sortOrder,
			IsPrimary: isPrimary,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "room_id"}, {Name: "image_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"sort_order", "is_primary"}),
		}).Create(&link).Error
	})
	if err != nil {
		return err
	}

	s.logger.Log("room_images", fmt.Sprintf("%d_%d", roomID, imageID), ActionCreate, nil, map[string]interface{}{
		"roomId":    roomID,
		"imageId":   imageID,
		"isPrimary": isPrimary,
		"sortOrder": sortOrder,
	}, actor, meta)
	return nil
}

func (s *RoomImageService) Remove(roomID, imageID uint, actor *Actor, meta RequestMeta) error {
	var link models.RoomImage
	err := s.db.Where("room_id = ? AND image_id = ?", roomID, imageID).Take(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &NotFoundError{Resource: "Room image"}
	}
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.RoomImage{}, link.ID).Error; err != nil {
		return err
	}

	s.logger.Log("room_images", fmt.Sprintf("%d_%d", roomID, imageID), ActionDelete, link, nil, actor, meta)
	return nil
}
