// Package naming compiles per-struct naming plans: each exported field gets
// an output name converted to a target convention, with `format` tag
// overrides, and an unsafe accessor for fast value retrieval.
package naming

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/textcase"
	"github.com/viant/xunsafe"
)

var planCache sync.Map //map[planKey]*Plan

type planKey struct {
	structType reflect.Type
	convention textcase.Convention
}

// Field represents a single naming plan entry
type Field struct {
	Name      string //converted output name
	Source    string //declared struct field name
	OmitEmpty bool
	xField    *xunsafe.Field
}

// Value returns the field value for the supplied struct pointer
func (f *Field) Value(ptr unsafe.Pointer) interface{} {
	return f.xField.Value(ptr)
}

// Plan holds converted field names for one struct type and convention
type Plan struct {
	structType reflect.Type
	convention textcase.Convention
	fields     []*Field
	index      map[string]int
}

// New returns a naming plan for the supplied struct type, plans are cached
// per type and convention.
func New(structType reflect.Type, convention textcase.Convention) (*Plan, error) {
	if structType.Kind() == reflect.Ptr {
		structType = structType.Elem()
	}
	if structType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct type, got %s", structType.Kind())
	}
	key := planKey{structType: structType, convention: convention}
	if value, ok := planCache.Load(key); ok {
		return value.(*Plan), nil
	}
	plan, err := compile(structType, convention)
	if err != nil {
		return nil, err
	}
	planCache.Store(key, plan)
	return plan, nil
}

func compile(structType reflect.Type, convention textcase.Convention) (*Plan, error) {
	plan := &Plan{
		structType: structType,
		convention: convention,
		index:      map[string]int{},
	}
	for i := 0; i < structType.NumField(); i++ {
		structField := structType.Field(i)
		if structField.PkgPath != "" {
			continue
		}
		tag, err := format.Parse(structField.Tag)
		if err != nil {
			return nil, fmt.Errorf("invalid format tag for %s.%s: %w", structType.Name(), structField.Name, err)
		}
		jsonName, jsonOmitEmpty, jsonIgnore := parseJSONTag(structField.Tag)
		if tag.Ignore || jsonIgnore {
			continue
		}
		name := structField.Name
		if jsonName != "" {
			name = jsonName
		}
		if tag.Name != "" {
			name = tag.Name
		}
		fieldConvention := convention
		if tag.CaseFormat != "" {
			if override := textcase.NewConvention(tag.CaseFormat); override.IsDefined() {
				fieldConvention = override
			}
		}
		converted, err := fieldConvention.Convert(name)
		if err != nil {
			return nil, fmt.Errorf("failed to convert name for %s.%s: %w", structType.Name(), structField.Name, err)
		}
		field := &Field{
			Name:      converted,
			Source:    structField.Name,
			OmitEmpty: tag.Omitempty || jsonOmitEmpty,
			xField:    xunsafe.FieldByIndex(structType, i),
		}
		plan.index[field.Name] = len(plan.fields)
		plan.fields = append(plan.fields, field)
	}
	return plan, nil
}

// Fields returns all plan entries in declaration order
func (p *Plan) Fields() []*Field {
	return p.fields
}

// Lookup returns the entry with the supplied output name or nil
func (p *Plan) Lookup(name string) *Field {
	pos, ok := p.index[name]
	if !ok {
		return nil
	}
	return p.fields[pos]
}

// Map renders a struct or struct pointer into a map keyed by converted
// field names, omit empty entries skip zero values.
func (p *Plan) Map(value interface{}) (map[string]interface{}, error) {
	valueType := reflect.TypeOf(value)
	if valueType == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem() != p.structType {
			return nil, fmt.Errorf("expected %s, got %s", p.structType.Name(), valueType.Elem().Name())
		}
	case reflect.Struct:
		if valueType != p.structType {
			return nil, fmt.Errorf("expected %s, got %s", p.structType.Name(), valueType.Name())
		}
		rPointer := reflect.New(p.structType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}
	ptr := xunsafe.AsPointer(value)
	ret := make(map[string]interface{}, len(p.fields))
	for _, field := range p.fields {
		fieldValue := field.Value(ptr)
		if field.OmitEmpty && isEmpty(fieldValue) {
			continue
		}
		ret[field.Name] = fieldValue
	}
	return ret, nil
}

func isEmpty(value interface{}) bool {
	if value == nil {
		return true
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rValue.IsNil()
	case reflect.Slice, reflect.Map, reflect.String:
		return rValue.Len() == 0
	}
	return rValue.IsZero()
}

func parseJSONTag(tag reflect.StructTag) (name string, omitEmpty bool, ignore bool) {
	encoded, ok := tag.Lookup("json")
	if !ok {
		return "", false, false
	}
	parts := strings.Split(encoded, ",")
	if parts[0] == "-" && len(parts) == 1 {
		return "", false, true
	}
	name = parts[0]
	for _, part := range parts[1:] {
		if part == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty, false
}
