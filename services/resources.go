package services

import (
	"encoding/json"
	"fmt"

	"cms-backend/utils"
)

var (
	ImageTypes         = []string{"hero", "gallery", "thumbnail", "parallax", "popup"}
	AccommodationTypes = []string{"villa", "room", "suite"}
)

func validateImage(fields map[string]interface{}) map[string]string {
	errs := map[string]string{}
	if v, ok := fields["src"]; ok {
		if s, isStr := v.(string); !isStr || !utils.IsValidImageSrc(s) {
			errs["src"] = "Invalid image source URL or path"
		}
	}
	if v, ok := fields["type"]; ok {
		if s, isStr := v.(string); !isStr || !utils.InList(s, ImageTypes) {
			errs["type"] = "Invalid image type"
		}
	}
	return errs
}

func coerceImage(fields map[string]interface{}) error {
	for _, flag := range []string{"lazy", "responsive"} {
		if v, ok := fields[flag]; ok {
			fields[flag] = utils.AsBool(v)
		}
	}
	return nil
}

func ImagesConfig() TableConfig {
	return TableConfig{
		Table:    "images",
		Resource: "Image",
		Required: []string{"src", "alt", "type"},
		Columns: []string{
			"src", "alt", "type", "category", "width", "height",
			"lazy", "responsive", "description",
		},
		Filters:  map[string]string{"type": "type", "category": "category"},
		Validate: validateImage,
		Coerce:   coerceImage,
	}
}

func validateAccommodation(fields map[string]interface{}) map[string]string {
	errs := map[string]string{}
	if v, ok := fields["type"]; ok {
		if s, isStr := v.(string); !isStr || !utils.InList(s, AccommodationTypes) {
			errs["type"] = "Invalid accommodation type"
		}
	}
	if v, ok := fields["max_guests"]; ok {
		if n, isNum := utils.AsNumber(v); !isNum || n < 1 {
			errs["maxGuests"] = "Max guests must be a positive number"
		}
	}
	if v, ok := fields["price_per_night"]; ok {
		if n, isNum := utils.AsNumber(v); !isNum || n < 0 {
			errs["pricePerNight"] = "Price must be a valid number"
		}
	}
	return errs
}

func coerceAccommodation(fields map[string]interface{}) error {
	if v, ok := fields["amenities"]; ok && v != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("serialize amenities: %w", err)
		}
		fields["amenities"] = string(raw)
	}
	if v, ok := fields["is_active"]; ok {
		fields["is_active"] = utils.AsBool(v)
	}
	return nil
}

// decodeJSONColumn turns a serialized JSON column back into structured data
// on the way out; it is applied on every read path.
func decodeJSONColumn(column string) func(row map[string]interface{}) {
	return func(row map[string]interface{}) {
		v, ok := row[column]
		if !ok || v == nil {
			return
		}
		s, isStr := v.(string)
		if !isStr || s == "" {
			return
		}
		var decoded interface{}
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			row[column] = decoded
		}
	}
}

func AccommodationsConfig() TableConfig {
	return TableConfig{
		Table:    "accommodations",
		Resource: "Accommodation",
		Required: []string{"name", "type"},
		Columns: []string{
			"name", "description", "type", "max_guests", "bedrooms", "bathrooms",
			"price_per_night", "image_url", "amenities", "sort_order", "is_active",
		},
		Filters:      map[string]string{"type": "type"},
		DefaultOrder: "sort_order ASC, created_at ASC",
		ActiveColumn: true,
		Validate:     validateAccommodation,
		Coerce:       coerceAccommodation,
		Decorate:     decodeJSONColumn("amenities"),
	}
}

func coerceActiveFlag(fields map[string]interface{}) error {
	if v, ok := fields["is_active"]; ok {
		fields["is_active"] = utils.AsBool(v)
	}
	return nil
}

func ButtonsConfig() TableConfig {
	return TableConfig{
		Table:        "buttons",
		Resource:     "Button",
		Required:     []string{"text", "url"},
		Columns:      []string{"text", "url", "style", "icon", "target", "is_active"},
		ActiveColumn: true,
		Coerce:       coerceActiveFlag,
	}
}

func PopupConfig() TableConfig {
	return TableConfig{
		Table:    "popup",
		Resource: "Popup",
		Required: []string{"title", "image_url"},
		Columns:  []string{"title", "description", "image_url", "button_text", "button_url"},
	}
}

func ParallaxConfig() TableConfig {
	return TableConfig{
		Table:    "parallax",
		Resource: "Parallax",
		Required: []string{"title", "image_url"},
		Columns:  []string{"title", "description", "image_url", "overlay_opacity"},
	}
}

func coercePage(fields map[string]interface{}) error {
	if v, ok := fields["keywords"]; ok && v != nil {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("serialize keywords: %w", err)
		}
		fields["keywords"] = string(raw)
	}
	return coerceActiveFlag(fields)
}

func PagesConfig() TableConfig {
	return TableConfig{
		Table:        "pages",
		Resource:     "Page",
		Required:     []string{"page_name", "title"},
		Columns:      []string{"page_name", "title", "description", "meta_description", "keywords", "is_active"},
		ActiveColumn: true,
		Coerce:       coercePage,
		Decorate:     decodeJSONColumn("keywords"),
	}
}

// ActivityLogConfig is read-only: only the GET verbs are ever wired to it.
func ActivityLogConfig() TableConfig {
	return TableConfig{
		Table:        "activity_log",
		Resource:     "Activity log entry",
		DefaultOrder: "created_at DESC",
		Filters:      map[string]string{"table": "table_name", "action": "action"},
		Decorate: func(row map[string]interface{}) {
			decodeJSONColumn("old_values")(row)
			decodeJSONColumn("new_values")(row)
		},
	}
}

func RoomTypesConfig() TableConfig {
	return TableConfig{
		Table:    "room_types",
		Resource: "Room Type",
		Required: []string{"name", "base_price", "max_guests"},
		Columns: []string{
			"name", "description", "base_price", "max_guests",
			"size_sqm", "is_active", "sort_order",
		},
		Coerce: coerceActiveFlag,
	}
}
