package services

import (
	"cms-backend/models"

	"gorm.io/gorm"
)

// RoomTypeService adds the one rule the generic engine cannot express for
// room_types: a type still referenced by rooms cannot be deleted.
type RoomTypeService struct {
	db   *gorm.DB
	crud *CrudService
}

func NewRoomTypeService(db *gorm.DB, crud *CrudService) *RoomTypeService {
	return &RoomTypeService{db: db, crud: crud}
}

func (s *RoomTypeService) Delete(id uint, actor *Actor, meta RequestMeta) error {
	cfg := RoomTypesConfig()

	existing, err := s.crud.fetchRow(cfg.Table, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Resource: cfg.Resource}
	}

	var inUse int64
	if err := s.db.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&inUse).Error; err != nil {
		return err
	}
	if inUse > 0 {
		return &ConflictError{Message: "Cannot delete room type that is being used by rooms"}
	}

	return s.crud.Delete(cfg, id, actor, meta)
}
