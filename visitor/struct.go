package visitor

import (
	"fmt"
	"reflect"
	"strings"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// StructVisitor implements Visitor[string, interface{}] for structs.
type StructVisitor struct {
	value   interface{}
	ptr     unsafe.Pointer
	meta    *structType
	options *options
}

// StructVisitorOf creates a StructVisitor from any struct value.
func StructVisitorOf(value interface{}, opts ...Option) (Visitor[string, interface{}], error) {
	if value == nil {
		return nil, fmt.Errorf("expected struct or pointer to struct, got nil")
	}
	valueType := reflect.TypeOf(value)
	isPtr := false
	var rType reflect.Type
	switch valueType.Kind() {
	case reflect.Ptr:
		if valueType.Elem().Kind() != reflect.Struct {
			return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
		}
		if reflect.ValueOf(value).IsNil() {
			return nil, fmt.Errorf("expected struct or pointer to struct, got nil %T", value)
		}
		isPtr = true
		rType = valueType.Elem()
	case reflect.Struct:
		rType = valueType
	default:
		return nil, fmt.Errorf("expected struct or pointer to struct, got %T", value)
	}

	if !isPtr {
		rPointer := reflect.New(rType)
		rPointer.Elem().Set(reflect.ValueOf(value))
		value = rPointer.Interface()
	}
	visitor := &StructVisitor{
		value:   value,
		ptr:     xunsafe.AsPointer(value),
		meta:    structTypes.lookup(rType),
		options: newOptions(opts),
	}
	return visitor.Visit, nil
}

// Visit iterates over exported struct fields, calling the provided function with each field name and value.
// Fields tagged with "-" or format:"ignore" are skipped.
func (w *StructVisitor) Visit(f func(key string, element interface{}) (bool, error)) error {
	for _, i := range w.meta.exported {
		xField := &w.meta.xStruct.Fields[i]
		name, ok := w.fieldName(xField)
		if !ok {
			continue
		}
		continueVisit, err := f(name, xField.Value(w.ptr))
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}

func (w *StructVisitor) fieldName(field *xunsafe.Field) (string, bool) {
	if raw, ok := field.Tag.Lookup(w.options.tagName); ok {
		name := strings.Split(raw, ",")[0]
		if name == "-" {
			return "", false
		}
		if name != "" {
			return name, true
		}
	}
	tag, err := format.Parse(field.Tag)
	if err != nil || tag == nil {
		tag = &format.Tag{}
	}
	if tag.Ignore {
		return "", false
	}
	name := field.Name
	if tag.Name != "" {
		name = tag.Name
	}
	caseFormat := w.options.caseFormat
	if tag.CaseFormat != "" {
		caseFormat = text.NewCaseFormat(tag.CaseFormat)
	}
	if !caseFormat.IsDefined() {
		return name, true
	}
	src := text.DetectCaseFormat(name)
	if !src.IsDefined() {
		src = text.CaseFormatUpperCamel
	}
	return src.Format(name, caseFormat), true
}
