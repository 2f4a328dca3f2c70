package services

import (
	"errors"
	"strconv"
	"strings"

	"cms-backend/models"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func roomsTable() TableConfig {
	return TableConfig{
		Table:    "rooms",
		Resource: "Room",
		Required: []string{"room_number", "room_type_id", "name", "price_per_night"},
		Columns: []string{
			"room_number", "room_type_id", "name", "description", "floor", "view_type",
			"price_per_night", "max_guests", "bedrooms", "bathrooms", "size_sqm", "bed_type",
			"main_image_id", "status", "is_active", "check_in_time", "check_out_time",
		},
	}
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// RoomService owns the rooms table and its relational invariants: the room
// type reference, room number uniqueness, and the cascading delete of
// amenity and image-link rows.
type RoomService struct {
	db     *gorm.DB
	crud   *CrudService
	logger *ActivityLogger
}

func NewRoomService(db *gorm.DB, crud *CrudService, logger *ActivityLogger) *RoomService {
	return &RoomService{db: db, crud: crud, logger: logger}
}

func (s *RoomService) detailQuery() *gorm.DB {
	return s.db.Table("rooms").
		Select("rooms.*, " +
			"room_types.name AS room_type_name, room_types.description AS room_type_description, " +
			"images.src AS main_image_src, images.alt AS main_image_alt").
		Joins("LEFT JOIN room_types ON rooms.room_type_id = room_types.id").
		Joins("LEFT JOIN images ON rooms.main_image_id = images.id")
}

// List returns active rooms joined with room type and main image, optionally
// filtered by status or room type.
func (s *RoomService) List(status string, roomTypeID string) ([]models.RoomDetail, error) {
	q := s.detailQuery().Where("rooms.is_active = ?", true)
	if status != "" {
		q = q.Where("rooms.status = ?", status)
	}
	if roomTypeID != "" {
		q = q.Where("rooms.room_type_id = ?", roomTypeID)
	}

	// allocate up front so zero matches marshals as [] rather than null
	rooms := make([]models.RoomDetail, 0)
	if err := q.Order("rooms.room_number ASC").Scan(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *RoomService) GetByID(id uint) (models.RoomDetail, error) {
	var room models.RoomDetail
	err := s.detailQuery().Where("rooms.id = ?", id).Take(&room).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return room, &NotFoundError{Resource: "Room"}
	}
	return room, err
}

func (s *RoomService) roomTypeExists(id interface{}) bool {
	var count int64
	s.db.Model(&models.RoomType{}).Where("id = ?", id).Count(&count)
	return count > 0
}

func (s *RoomService) roomNumberTaken(number interface{}, excludeID uint) bool {
	q := s.db.Model(&models.Room{}).Where("room_number = ?", number)
	if excludeID != 0 {
		q = q.Where("id != ?", excludeID)
	}
	var count int64
	q.Count(&count)
	return count > 0
}

func (s *RoomService) Create(input map[string]interface{}, actor *Actor, meta RequestMeta) (models.RoomDetail, error) {
	cfg := roomsTable()
	fields := normalizeFields(cfg, input)

	errs := requiredErrors(fields, cfg.Required)
	if v, ok := fields["room_type_id"]; ok && v != nil {
		if !s.roomTypeExists(v) {
			errs["roomTypeId"] = "Invalid room type"
		}
	}
	if v, ok := fields["room_number"]; ok && v != nil {
		if s.roomNumberTaken(v, 0) {
			errs["roomNumber"] = "Room number already exists"
		}
	}
	if len(errs) > 0 {
		return models.RoomDetail{}, &ValidationError{Fields: errs}
	}

	applyRoomDefaults(fields)

	id, err := s.crud.InsertRow(cfg.Table, fields)
	if err != nil {
		if isDuplicateKey(err) {
			return models.RoomDetail{}, &ValidationError{Fields: map[string]string{
				"roomNumber": "Room number already exists",
			}}
		}
		return models.RoomDetail{}, err
	}

	s.logger.Log(cfg.Table, strconv.FormatInt(id, 10), ActionCreate, nil, input, actor, meta)
	return s.GetByID(uint(id))
}

func applyRoomDefaults(fields map[string]interface{}) {
	defaults := map[string]interface{}{
		"status":         "available",
		"max_guests":     2,
		"bedrooms":       1,
		"bathrooms":      1,
		"check_in_time":  "14:00:00",
		"check_out_time": "12:00:00",
		"is_active":      true,
	}
	for col, v := range defaults {
		if _, ok := fields[col]; !ok {
			fields[col] = v
		}
	}
}

func (s *RoomService) Update(id uint, input map[string]interface{}, actor *Actor, meta RequestMeta) (models.RoomDetail, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return models.RoomDetail{}, err
	}

	cfg := roomsTable()
	fields := normalizeFields(cfg, input)

	errs := map[string]string{}
	if v, ok := fields["room_type_id"]; ok && v != nil {
		if !s.roomTypeExists(v) {
			errs["roomTypeId"] = "Invalid room type"
		}
	}
	if v, ok := fields["room_number"]; ok && v != nil {
		if s.roomNumberTaken(v, id) {
			errs["roomNumber"] = "Room number already exists"
		}
	}
	if len(errs) > 0 {
		return models.RoomDetail{}, &ValidationError{Fields: errs}
	}
	if len(fields) == 0 {
		return models.RoomDetail{}, ErrNoFields
	}

	if err := s.crud.UpdateRowByID(cfg.Table, id, fields); err != nil {
		if isDuplicateKey(err) {
			return models.RoomDetail{}, &ValidationError{Fields: map[string]string{
				"roomNumber": "Room number already exists",
			}}
		}
		return models.RoomDetail{}, err
	}

	s.logger.Log(cfg.Table, strconv.FormatUint(uint64(id), 10), ActionUpdate, existing, input, actor, meta)
	return s.GetByID(id)
}

// Delete removes the room together with its amenity and image-link rows in
// one transaction; a failure partway through rolls everything back.
func (s *RoomService) Delete(id uint, actor *Actor, meta RequestMeta) error {
	existing, err := s.GetByID(id)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomAmenity{}).Error; err != nil {
			return err
		}
		if err := tx.Where("room_id = ?", id).Delete(&models.RoomImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Room{}, id).Error
	})
	if err != nil {
		return err
	}

	s.logger.Log("rooms", strconv.FormatUint(uint64(id), 10), ActionDelete, existing, nil, actor, meta)
	return nil
}
