package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"cms-backend/models"
)

func seedRoomType(t *testing.T, db *gorm.DB) models.RoomType {
	t.Helper()
	rt := models.RoomType{Name: "Deluxe", BasePrice: 120, MaxGuests: 2}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func newRoomService(db *gorm.DB) *RoomService {
	logger := NewActivityLogger(db)
	return NewRoomService(db, NewCrudService(db, logger), logger)
}

func TestRoomCreateAppliesDefaults(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	rt := seedRoomType(t, db)

	room, err := svc.Create(map[string]interface{}{
		"roomNumber":    "101",
		"roomTypeId":    rt.ID,
		"name":          "Deluxe Garden View",
		"pricePerNight": 150.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	assert.Equal(t, "101", room.RoomNumber)
	assert.Equal(t, "available", room.Status)
	assert.Equal(t, 2, room.MaxGuests)
	assert.Equal(t, 1, room.Bedrooms)
	assert.Equal(t, 1, room.Bathrooms)
	assert.Equal(t, "14:00:00", room.CheckInTime)
	assert.Equal(t, "12:00:00", room.CheckOutTime)
	assert.True(t, room.IsActive)
	require.NotNil(t, room.RoomTypeName)
	assert.Equal(t, "Deluxe", *room.RoomTypeName)

	entry := lastLog(t, db)
	assert.Equal(t, "rooms", entry.LogTableName)
	assert.Equal(t, ActionCreate, entry.Action)
}

func TestRoomCreateRejectsInvalidInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)

	_, err := svc.Create(map[string]interface{}{
		"roomNumber": "101",
		"roomTypeId": 999,
	}, testActor(), testMeta())

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "roomTypeId")
	assert.Contains(t, vErr.Fields, "name")
	assert.Contains(t, vErr.Fields, "pricePerNight")

	var count int64
	db.Model(&models.Room{}).Count(&count)
	assert.Equal(t, int64(0), count)
	assert.Equal(t, int64(0), countLogs(t, db))
}

func TestRoomNumberMustBeUnique(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	rt := seedRoomType(t, db)

	base := map[string]interface{}{
		"roomNumber":    "201",
		"roomTypeId":    rt.ID,
		"name":          "First",
		"pricePerNight": 100.0,
	}
	_, err := svc.Create(base, testActor(), testMeta())
	require.NoError(t, err)

	_, err = svc.Create(map[string]interface{}{
		"roomNumber":    "201",
		"roomTypeId":    rt.ID,
		"name":          "Second",
		"pricePerNight": 110.0,
	}, testActor(), testMeta())

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "Room number already exists", vErr.Fields["roomNumber"])

	var count int64
	db.Model(&models.Room{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRoomUpdateKeepsOwnNumber(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	rt := seedRoomType(t, db)

	room, err := svc.Create(map[string]interface{}{
		"roomNumber":    "301",
		"roomTypeId":    rt.ID,
		"name":          "Suite",
		"pricePerNight": 200.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	// re-submitting the room's own number is not a collision
	updated, err := svc.Update(room.ID, map[string]interface{}{
		"roomNumber": "301",
		"status":     "maintenance",
	}, testActor(), testMeta())
	require.NoError(t, err)
	assert.Equal(t, "maintenance", updated.Status)

	other, err := svc.Create(map[string]interface{}{
		"roomNumber":    "302",
		"roomTypeId":    rt.ID,
		"name":          "Second Suite",
		"pricePerNight": 210.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	_, err = svc.Update(other.ID, map[string]interface{}{"roomNumber": "301"}, testActor(), testMeta())
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "roomNumber")
}

func TestRoomUpdateNoValidFields(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	rt := seedRoomType(t, db)

	room, err := svc.Create(map[string]interface{}{
		"roomNumber":    "401",
		"roomTypeId":    rt.ID,
		"name":          "Plain",
		"pricePerNight": 90.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	_, err = svc.Update(room.ID, map[string]interface{}{"bogus": 1}, testActor(), testMeta())
	assert.ErrorIs(t, err, ErrNoFields)
}

func TestRoomDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	amenities := NewRoomAmenityService(db, logger)
	images := NewRoomImageService(db, logger)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "501",
		"roomTypeId":    rt.ID,
		"name":          "Doomed",
		"pricePerNight": 80.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	_, err = amenities.Create(map[string]interface{}{
		"roomId":      room.ID,
		"amenityName": "WiFi",
	}, testActor(), testMeta())
	require.NoError(t, err)

	img := models.Image{Src: "/images/room.jpg", Alt: "room", Type: "gallery"}
	require.NoError(t, db.Create(&img).Error)
	require.NoError(t, images.Add(room.ID, img.ID, true, 0, testActor(), testMeta()))

	require.NoError(t, rooms.Delete(room.ID, testActor(), testMeta()))

	var amenityCount, linkCount int64
	db.Model(&models.RoomAmenity{}).Where("room_id = ?", room.ID).Count(&amenityCount)
	db.Model(&models.RoomImage{}).Where("room_id = ?", room.ID).Count(&linkCount)
	assert.Equal(t, int64(0), amenityCount)
	assert.Equal(t, int64(0), linkCount)

	_, err = rooms.GetByID(room.ID)
	var nfErr *NotFoundError
	assert.True(t, errors.As(err, &nfErr))
}

func TestRoomDeleteRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	svc := newRoomService(db)
	rt := seedRoomType(t, db)

	room, err := svc.Create(map[string]interface{}{
		"roomNumber":    "601",
		"roomTypeId":    rt.ID,
		"name":          "Survivor",
		"pricePerNight": 70.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	// sabotage the second delete inside the transaction
	require.NoError(t, db.Migrator().DropTable(&models.RoomImage{}))

	err = svc.Delete(room.ID, testActor(), testMeta())
	require.Error(t, err)

	var count int64
	db.Model(&models.Room{}).Where("id = ?", room.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRoomTypeDeleteBlockedWhileInUse(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	types := NewRoomTypeService(db, crud)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "701",
		"roomTypeId":    rt.ID,
		"name":          "Occupier",
		"pricePerNight": 60.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	err = types.Delete(rt.ID, testActor(), testMeta())
	var cErr *ConflictError
	require.True(t, errors.As(err, &cErr))
	assert.Equal(t, "Cannot delete room type that is being used by rooms", cErr.Message)

	var count int64
	db.Model(&models.RoomType{}).Where("id = ?", rt.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	require.NoError(t, rooms.Delete(room.ID, testActor(), testMeta()))
	require.NoError(t, types.Delete(rt.ID, testActor(), testMeta()))
}

func TestReplaceAmenitiesForRoom(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	svc := NewRoomAmenityService(db, logger)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "801",
		"roomTypeId":    rt.ID,
		"name":          "Amenity Room",
		"pricePerNight": 50.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	_, err = svc.Create(map[string]interface{}{
		"roomId":      room.ID,
		"amenityName": "Old TV",
	}, testActor(), testMeta())
	require.NoError(t, err)
	before := countLogs(t, db)

	result, err := svc.ReplaceForRoom(room.ID, []map[string]interface{}{
		{"amenityName": "Smart TV", "amenityType": "entertainment"},
		{"amenityName": "Mini Bar", "isHighlighted": true},
	}, testActor(), testMeta())
	require.NoError(t, err)
	require.Len(t, result, 2)

	names := []string{result[0].AmenityName, result[1].AmenityName}
	assert.Contains(t, names, "Smart TV")
	assert.Contains(t, names, "Mini Bar")
	assert.NotContains(t, names, "Old TV")

	// the whole swap is a single audit entry
	assert.Equal(t, before+1, countLogs(t, db))
	entry := lastLog(t, db)
	assert.Equal(t, ActionBulkUpdate, entry.Action)
	assert.Equal(t, "room_amenities", entry.LogTableName)
}

func TestReplaceAmenitiesValidatesEachEntry(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	svc := NewRoomAmenityService(db, logger)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "802",
		"roomTypeId":    rt.ID,
		"name":          "Strict Room",
		"pricePerNight": 55.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	_, err = svc.ReplaceForRoom(room.ID, []map[string]interface{}{
		{"amenityName": "Good"},
		{"amenityType": "comfort"},
	}, testActor(), testMeta())

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "amenities")
}

func TestAmenityUpdateNeverMovesRooms(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	svc := NewRoomAmenityService(db, logger)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "803",
		"roomTypeId":    rt.ID,
		"name":          "Home Room",
		"pricePerNight": 45.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	amenity, err := svc.Create(map[string]interface{}{
		"roomId":      room.ID,
		"amenityName": "Balcony",
	}, testActor(), testMeta())
	require.NoError(t, err)

	updated, err := svc.Update(amenity.ID, map[string]interface{}{
		"roomId":        999,
		"isHighlighted": true,
	}, testActor(), testMeta())
	require.NoError(t, err)
	assert.Equal(t, room.ID, updated.RoomID)
	assert.True(t, updated.IsHighlighted)
}

func TestRoomImagePrimaryIsExclusive(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	svc := NewRoomImageService(db, logger)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "901",
		"roomTypeId":    rt.ID,
		"name":          "Photogenic",
		"pricePerNight": 130.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	first := models.Image{Src: "/images/1.jpg", Alt: "one", Type: "gallery"}
	second := models.Image{Src: "/images/2.jpg", Alt: "two", Type: "gallery"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)

	require.NoError(t, svc.Add(room.ID, first.ID, true, 0, testActor(), testMeta()))
	require.NoError(t, svc.Add(room.ID, second.ID, true, 1, testActor(), testMeta()))

	links, err := svc.ListByRoom("1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, second.ID, links[0].ImageID)
	assert.True(t, links[0].IsPrimary)
	assert.False(t, links[1].IsPrimary)

	// re-adding the same pair updates the existing link instead of duplicating
	require.NoError(t, svc.Add(room.ID, first.ID, true, 5, testActor(), testMeta()))
	links, err = svc.ListByRoom("1")
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, first.ID, links[0].ImageID)
	assert.True(t, links[0].IsPrimary)
	assert.Equal(t, 5, links[0].SortOrder)
	assert.False(t, links[1].IsPrimary)
}

func TestRoomImageAddAndRemoveValidation(t *testing.T) {
	db := setupTestDB(t)
	logger := NewActivityLogger(db)
	crud := NewCrudService(db, logger)
	rooms := NewRoomService(db, crud, logger)
	svc := NewRoomImageService(db, logger)
	rt := seedRoomType(t, db)

	room, err := rooms.Create(map[string]interface{}{
		"roomNumber":    "902",
		"roomTypeId":    rt.ID,
		"name":          "Bare",
		"pricePerNight": 120.0,
	}, testActor(), testMeta())
	require.NoError(t, err)

	err = svc.Add(room.ID, 999, false, 0, testActor(), testMeta())
	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Contains(t, vErr.Fields, "imageId")

	err = svc.Remove(room.ID, 999, testActor(), testMeta())
	var nfErr *NotFoundError
	assert.True(t, errors.As(err, &nfErr))
}
