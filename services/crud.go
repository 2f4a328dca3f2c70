package services

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"

	"gorm.io/gorm"
)

// TableConfig drives the generic CRUD engine for one table. Columns is a
// closed allow-list: request fields are mapped onto it and anything outside
// it is dropped, so no caller-supplied name ever reaches a statement.
type TableConfig struct {
	Table        string
	Resource     string            // label used in not-found messages
	Required     []string          // column names checked on create
	Columns      []string          // writable columns
	Filters      map[string]string // query param -> filterable column
	DefaultOrder string            // defaults to created_at ASC
	ActiveColumn bool              // list only rows with is_active = true

	// Optional hooks for domain rules the generic layer cannot express.
	Validate func(fields map[string]interface{}) map[string]string
	Coerce   func(fields map[string]interface{}) error
	Decorate func(row map[string]interface{})
}

func (cfg TableConfig) allows(column string) bool {
	for _, col := range cfg.Columns {
		if col == column {
			return true
		}
	}
	return false
}

// CrudService implements list/read/create/update/delete for any table
// described by a TableConfig. Rows flow through as column-keyed maps; the
// JSON surface is camelCase, the schema snake_case.
type CrudService struct {
	db     *gorm.DB
	logger *ActivityLogger
}

func NewCrudService(db *gorm.DB, logger *ActivityLogger) *CrudService {
	return &CrudService{db: db, logger: logger}
}

func (s *CrudService) List(cfg TableConfig, filterColumn, filterValue string) ([]map[string]interface{}, error) {
	q := s.db.Table(cfg.Table)
	if cfg.ActiveColumn {
		q = q.Where("is_active = ?", true)
	}
	if filterColumn != "" {
		q = q.Where(fmt.Sprintf("%s = ?", filterColumn), filterValue)
	}
	order := cfg.DefaultOrder
	if order == "" {
		order = "created_at ASC"
	}

	var rows []map[string]interface{}
	if err := q.Order(order).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		out = append(out, s.present(cfg, row))
	}
	return out, nil
}

func (s *CrudService) Get(cfg TableConfig, id uint) (map[string]interface{}, error) {
	row, err := s.fetchRow(cfg.Table, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, &NotFoundError{Resource: cfg.Resource}
	}
	return s.present(cfg, row), nil
}

func (s *CrudService) Create(cfg TableConfig, input map[string]interface{}, actor *Actor, meta RequestMeta) (map[string]interface{}, error) {
	fields := normalizeFields(cfg, input)

	errs := requiredErrors(fields, cfg.Required)
	if cfg.Validate != nil {
		for field, msg := range cfg.Validate(fields) {
			errs[field] = msg
		}
	}
	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}
	if cfg.Coerce != nil {
		if err := cfg.Coerce(fields); err != nil {
			return nil, err
		}
	}

	id, err := s.InsertRow(cfg.Table, fields)
	if err != nil {
		return nil, err
	}

	s.logger.Log(cfg.Table, strconv.FormatInt(id, 10), ActionCreate, nil, input, actor, meta)

	row, err := s.fetchRow(cfg.Table, uint(id))
	if err != nil {
		return nil, err
	}
	return s.present(cfg, row), nil
}

func (s *CrudService) Update(cfg TableConfig, id uint, input map[string]interface{}, actor *Actor, meta RequestMeta) (map[string]interface{}, error) {
	existing, err := s.fetchRow(cfg.Table, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Resource: cfg.Resource}
	}

	fields := normalizeFields(cfg, input)
	if cfg.Validate != nil {
		if errs := cfg.Validate(fields); len(errs) > 0 {
			return nil, &ValidationError{Fields: errs}
		}
	}
	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	if cfg.Coerce != nil {
		if err := cfg.Coerce(fields); err != nil {
			return nil, err
		}
	}

	if err := s.UpdateRowByID(cfg.Table, id, fields); err != nil {
		return nil, err
	}

	s.logger.Log(cfg.Table, strconv.FormatUint(uint64(id), 10), ActionUpdate, existing, input, actor, meta)

	row, err := s.fetchRow(cfg.Table, id)
	if err != nil {
		return nil, err
	}
	return s.present(cfg, row), nil
}

func (s *CrudService) Delete(cfg TableConfig, id uint, actor *Actor, meta RequestMeta) error {
	existing, err := s.fetchRow(cfg.Table, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Resource: cfg.Resource}
	}

	if err := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", cfg.Table), id).Error; err != nil {
		return err
	}

	s.logger.Log(cfg.Table, strconv.FormatUint(uint64(id), 10), ActionDelete, existing, nil, actor, meta)
	return nil
}

// InsertRow builds a parameterized insert from the given column map and
// returns the generated id. Column names must come from an allow-list,
// never from the request. created_at/updated_at are always server-set.
func (s *CrudService) InsertRow(table string, fields map[string]interface{}) (int64, error) {
	now := time.Now().UTC()
	fields["created_at"] = now
	fields["updated_at"] = now

	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	args := make([]interface{}, 0, len(cols))
	for _, col := range cols {
		args = append(args, fields[col])
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(cols)), ",")
	stmt := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(cols, ","), placeholders)

	sqlDB, err := s.db.DB()
	if err != nil {
		return 0, err
	}
	res, err := sqlDB.Exec(stmt, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// UpdateRowByID applies the given columns to one row and stamps updated_at.
func (s *CrudService) UpdateRowByID(table string, id uint, fields map[string]interface{}) error {
	cols := make([]string, 0, len(fields))
	for col := range fields {
		cols = append(cols, col)
	}
	sort.Strings(cols)

	sets := make([]string, 0, len(cols)+1)
	args := make([]interface{}, 0, len(cols)+2)
	for _, col := range cols {
		sets = append(sets, col+" = ?")
		args = append(args, fields[col])
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC(), id)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", table, strings.Join(sets, ", "))
	return s.db.Exec(stmt, args...).Error
}

func (s *CrudService) fetchRow(table string, id uint) (map[string]interface{}, error) {
	var row map[string]interface{}
	err := s.db.Table(table).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return row, nil
}

// present converts a raw row into its response shape: byte slices become
// strings, the Decorate hook runs, and keys are camelCased.
func (s *CrudService) present(cfg TableConfig, row map[string]interface{}) map[string]interface{} {
	if row == nil {
		return nil
	}
	for col, v := range row {
		if raw, ok := v.([]byte); ok {
			row[col] = string(raw)
		}
	}
	if cfg.Decorate != nil {
		cfg.Decorate(row)
	}
	out := make(map[string]interface{}, len(row))
	for col, v := range row {
		out[toCamel(col)] = v
	}
	return out
}

// normalizeFields maps request keys (camelCase or snake_case) onto the
// table's column allow-list, dropping anything outside it.
func normalizeFields(cfg TableConfig, input map[string]interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(input))
	for key, v := range input {
		col := toSnake(key)
		if cfg.allows(col) {
			fields[col] = v
		}
	}
	return fields
}

func requiredErrors(fields map[string]interface{}, required []string) map[string]string {
	errs := map[string]string{}
	for _, col := range required {
		name := toCamel(col)
		v, ok := fields[col]
		if !ok || v == nil {
			errs[name] = fmt.Sprintf("The %s field is required", name)
			continue
		}
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
			errs[name] = fmt.Sprintf("The %s field is required", name)
		}
	}
	return errs
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func toCamel(s string) string {
	parts := strings.Split(s, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
