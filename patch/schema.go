package patch

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dmitrymomot/apikit/apierror"
)

// Cloner lets record types with reference fields (slices, maps, pointers)
// take part in copy-then-commit application. When R implements Cloner[R],
// Apply copies through Clone; otherwise a plain value copy is used, which
// is only safe for records without shared backing storage.
type Cloner[R any] interface {
	Clone() R
}

// Schema declares the patchable surface of a record type R: which wire
// names exist, how each maps into the record, per-field validation and
// clearing rules, and the cross-field invariants the patched record must
// satisfy. A schema is immutable after construction and safe for concurrent
// use; declare it once next to the record type:
//
//	var userSchema = patch.MustNewSchema[User](
//		patch.Field("name", func(u *User) *string { return &u.Name },
//			patch.NonClearable[string]()),
//		patch.Field("bio", func(u *User) *string { return &u.Bio }),
//		patch.Field("age", func(u *User) *int { return &u.Age },
//			patch.Validate(func(age int) error {
//				if age < 0 {
//					return errors.New("must not be negative")
//				}
//				return nil
//			})),
//		patch.Invariant("contact required", func(u *User) error {
//			if u.Email == "" && u.Phone == "" {
//				return errors.New("either email or phone must remain")
//			}
//			return nil
//		}),
//	)
type Schema[R any] struct {
	fields       []*fieldDef[R]
	index        map[string]*fieldDef[R]
	invariants   []invariantDef[R]
	allowUnknown bool
}

type fieldDef[R any] struct {
	name       string
	clearable  bool
	validated  bool
	hasDefault bool
	decode     func(raw json.RawMessage, present bool) (fieldChange[R], error)
	current    func(rec *R) any
}

type invariantDef[R any] struct {
	name  string
	check func(*R) error
}

// fieldChange is one field's decoded tri-state outcome plus the typed
// mutation Apply runs against the working copy.
type fieldChange[R any] struct {
	state  state
	mutate func(rec *R) error
}

// SchemaOption configures a schema during construction.
type SchemaOption[R any] func(*Schema[R]) error

// FieldOption configures one declared field.
type FieldOption[T any] func(*fieldConfig[T])

type fieldConfig[T any] struct {
	validators   []func(T) error
	nonClearable bool
	defaultValue T
	hasDefault   bool
}

// Validate adds a validator run against a replacement value before it is
// assigned. The option may be repeated; validators run in declaration order
// and the first failure wins.
func Validate[T any](fn func(T) error) FieldOption[T] {
	return func(c *fieldConfig[T]) {
		if fn != nil {
			c.validators = append(c.validators, fn)
		}
	}
}

// NonClearable marks a field that rejects explicit null.
func NonClearable[T any]() FieldOption[T] {
	return func(c *fieldConfig[T]) {
		c.nonClearable = true
	}
}

// Default sets the value a clear resets the field to, instead of the zero
// value of T.
func Default[T any](v T) FieldOption[T] {
	return func(c *fieldConfig[T]) {
		c.defaultValue = v
		c.hasDefault = true
	}
}

// Field declares one patchable field of R. The wire name keys the JSON
// payload; access returns a pointer into the record used for both reads and
// writes.
func Field[R, T any](name string, access func(*R) *T, opts ...FieldOption[T]) SchemaOption[R] {
	return func(s *Schema[R]) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: field name is empty", ErrSchemaConflict)
		}
		if access == nil {
			return fmt.Errorf("%w: field %q has a nil accessor", ErrSchemaConflict, name)
		}
		if _, exists := s.index[name]; exists {
			return fmt.Errorf("%w: field %q declared twice", ErrSchemaConflict, name)
		}

		cfg := fieldConfig[T]{}
		for _, opt := range opts {
			opt(&cfg)
		}

		def := &fieldDef[R]{
			name:       name,
			clearable:  !cfg.nonClearable,
			validated:  len(cfg.validators) > 0,
			hasDefault: cfg.hasDefault,
			current: func(rec *R) any {
				return *access(rec)
			},
		}
		def.decode = func(raw json.RawMessage, present bool) (fieldChange[R], error) {
			if !present {
				return fieldChange[R]{state: stateAbsent}, nil
			}
			var pv Value[T]
			if err := pv.UnmarshalJSON(raw); err != nil {
				return fieldChange[R]{}, ErrDecode.New(
					apierror.Details(FieldDetail{Field: name, Reason: "invalid value"}),
					apierror.Cause(err),
				)
			}
			if pv.IsClear() {
				return fieldChange[R]{
					state: stateClear,
					mutate: func(rec *R) error {
						*access(rec) = cfg.defaultValue
						return nil
					},
				}, nil
			}
			value, _ := pv.Get()
			return fieldChange[R]{
				state: stateSet,
				mutate: func(rec *R) error {
					for _, validate := range cfg.validators {
						if err := validate(value); err != nil {
							return err
						}
					}
					*access(rec) = value
					return nil
				},
			}, nil
		}

		s.index[name] = def
		s.fields = append(s.fields, def)
		return nil
	}
}

// Invariant declares a cross-field check, run once after all per-field
// updates against the fully updated working copy. A failing invariant
// rejects the whole patch.
func Invariant[R any](name string, check func(*R) error) SchemaOption[R] {
	return func(s *Schema[R]) error {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("%w: invariant name is empty", ErrSchemaConflict)
		}
		if check == nil {
			return fmt.Errorf("%w: invariant %q has a nil check", ErrSchemaConflict, name)
		}
		s.invariants = append(s.invariants, invariantDef[R]{name: name, check: check})
		return nil
	}
}

// AllowUnknownFields switches the schema to ignore payload keys it does not
// declare. The default rejects them with unknown_field.
func AllowUnknownFields[R any]() SchemaOption[R] {
	return func(s *Schema[R]) error {
		s.allowUnknown = true
		return nil
	}
}

// NewSchema builds a schema from field and invariant declarations.
// Definition conflicts (duplicate or empty names, nil accessors or checks)
// fail construction with ErrSchemaConflict so a misdeclared schema dies at
// process startup.
func NewSchema[R any](opts ...SchemaOption[R]) (*Schema[R], error) {
	s := &Schema[R]{index: make(map[string]*fieldDef[R])}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// MustNewSchema is like NewSchema but panics on definition conflicts.
// Intended for package-level schema variables.
func MustNewSchema[R any](opts ...SchemaOption[R]) *Schema[R] {
	s, err := NewSchema[R](opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// FieldDoc describes one declared field for an external schema generator's
// partial-update schema.
type FieldDoc struct {
	Name       string
	Clearable  bool
	Validated  bool
	HasDefault bool
}

// Fields returns the declared fields in declaration order.
func (s *Schema[R]) Fields() []FieldDoc {
	docs := make([]FieldDoc, len(s.fields))
	for i, def := range s.fields {
		docs[i] = FieldDoc{
			Name:       def.name,
			Clearable:  def.clearable,
			Validated:  def.validated,
			HasDefault: def.hasDefault,
		}
	}
	return docs
}
