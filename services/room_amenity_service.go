package services

import (
	"errors"
	"fmt"
	"strconv"

	"cms-backend/models"
	"cms-backend/utils"

	"gorm.io/gorm"
)

// RoomAmenityService supports single-row create/update/delete plus the bulk
// "replace all amenities for room X" operation.
type RoomAmenityService struct {
	db     *gorm.DB
	logger *ActivityLogger
}

func NewRoomAmenityService(db *gorm.DB, logger *ActivityLogger) *RoomAmenityService {
	return &RoomAmenityService{db: db, logger: logger}
}

func (s *RoomAmenityService) roomExists(id interface{}) bool {
	var count int64
	s.db.Model(&models.Room{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (s *RoomAmenityService) ListByRoom(roomID string) ([]models.RoomAmenity, error) {
	q := s.db.Model(&models.RoomAmenity{})
	if roomID != "" {
		q = q.Where("room_id = ?", roomID)
	}
	amenities := make([]models.RoomAmenity, 0)
	err := q.Order("is_highlighted DESC, amenity_type ASC, amenity_name ASC").Find(&amenities).Error
	return amenities, err
}

func (s *RoomAmenityService) GetByID(id uint) (models.RoomAmenity, error) {
	var amenity models.RoomAmenity
	err := s.db.First(&amenity, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return amenity, &NotFoundError{Resource: "Room amenity"}
	}
	return amenity, err
}

func amenityFromFields(fields map[string]interface{}) models.RoomAmenity {
	amenity := models.RoomAmenity{AmenityType: "comfort"}
	if v, ok := fields["amenity_name"].(string); ok {
		amenity.AmenityName = v
	}
	if v, ok := fields["amenity_type"].(string); ok && v != "" {
		amenity.AmenityType = v
	}
	if v, ok := fields["description"].(string); ok {
		amenity.Description = &v
	}
	if v, ok := fields["icon"].(string); ok {
		amenity.Icon = &v
	}
	if v, ok := fields["is_highlighted"]; ok {
		amenity.IsHighlighted = utils.AsBool(v)
	}
	return amenity
}

func amenitiesTable() TableConfig {
	return TableConfig{
		Table:    "room_amenities",
		Resource: "Room amenity",
		Required: []string{"room_id", "amenity_name"},
		Columns: []string{
			"room_id", "amenity_name", "amenity_type",
			"description", "icon", "is_highlighted",
		},
	}
}

func (s *RoomAmenityService) Create(input map[string]interface{}, actor *Actor, meta RequestMeta) (models.RoomAmenity, error) {
	cfg := amenitiesTable()
	fields := normalizeFields(cfg, input)

	errs := requiredErrors(fields, cfg.Required)
	if v, ok := fields["room_id"]; ok && v != nil {
		if !s.roomExists(v) {
			errs["roomId"] = "Invalid room ID"
		}
	}
	if len(errs) > 0 {
		return models.RoomAmenity{}, &ValidationError{Fields: errs}
	}

	amenity := amenityFromFields(fields)
	if n, ok := utils.AsNumber(fields["room_id"]); ok {
		amenity.RoomID = uint(n)
	}
	if err := s.db.Create(&amenity).Error; err != nil {
		return models.RoomAmenity{}, err
	}

	s.logger.Log(cfg.Table, strconv.FormatUint(uint64(amenity.ID), 10), ActionCreate, nil, input, actor, meta)
	return s.GetByID(amenity.ID)
}

func (s *RoomAmenityService) Update(id uint, input map[string]interface{}, actor *Actor, meta RequestMeta) (models.RoomAmenity, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.RoomAmenity{}, err
	}

	cfg := amenitiesTable()
	fields := normalizeFields(cfg, input)
	delete(fields, "room_id") // an amenity never moves between rooms
	if len(fields) == 0 {
		return models.RoomAmenity{}, ErrNoFields
	}

	if err := s.db.Model(&models.RoomAmenity{}).Where("id = ?", id).Updates(fields).Error; err != nil {
		return models.RoomAmenity{}, err
	}

	s.logger.Log(cfg.Table, strconv.FormatUint(uint64(id), 10), ActionUpdate, existing, input, actor, meta)
	return s.GetByID(id)
}

func (s *RoomAmenityService) Delete(id uint, actor *Actor, meta RequestMeta) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(&models.RoomAmenity{}, id).Error; err != nil {
		return err
	}

	s.logger.Log("room_amenities", strconv.FormatUint(uint64(id), 10), ActionDelete, existing, nil, actor, meta)
	return nil
}

// ReplaceForRoom atomically swaps the room's amenity set: all existing rows
// are deleted and the new set inserted in one transaction, logged as a
// single BULK_UPDATE entry.
func (s *RoomAmenityService) ReplaceForRoom(roomID uint, amenities []map[string]interface{}, actor *Actor, meta RequestMeta) ([]models.RoomAmenity, error) {
	if !s.roomExists(roomID) {
		return nil, &ValidationError{Fields: map[string]string{"roomId": "Invalid room ID"}}
	}

	cfg := amenitiesTable()
	rows := make([]models.RoomAmenity, 0, len(amenities))
	for i, raw := range amenities {
		fields := normalizeFields(cfg, raw)
		if errs := requiredErrors(fields, []string{"amenity_name"}); len(errs) > 0 {
			return nil, &ValidationError{Fields: map[string]string{
				"amenities": fmt.Sprintf("amenity %d: amenityName is required", i),
			}}
		}
		amenity := amenityFromFields(fields)
		amenity.RoomID = roomID
		rows = append(rows, amenity)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", roomID).Delete(&models.RoomAmenity{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		return nil, err
	}

	s.logger.Log(cfg.Table, strconv.FormatUint(uint64(roomID), 10), ActionBulkUpdate, nil, amenities, actor, meta)
	return s.ListByRoom(strconv.FormatUint(uint64(roomID), 10))
}
