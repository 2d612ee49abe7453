package service

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"outofschool/internal/model"
)

// ValueProjector renders property values as human-readable strings for the changes log.
type ValueProjector interface {
	ProjectValue(v any) string
}

const projectedTimeLayout = "2006-01-02 15:04:05"

type valueProjector struct {
	formatters map[reflect.Type]func(any) string
}

// NewValueProjector returns a projector with formatters for time, bool,
// address and uuid values. Other types use fmt.Sprint.
func NewValueProjector() ValueProjector {
	return &valueProjector{formatters: map[reflect.Type]func(any) string{
		reflect.TypeOf(time.Time{}): func(v any) string {
			t := v.(time.Time)
			if t.IsZero() {
				return ""
			}
			return t.UTC().Format(projectedTimeLayout)
		},
		reflect.TypeOf(false): func(v any) string {
			return strconv.FormatBool(v.(bool))
		},
		reflect.TypeOf(model.Address{}): func(v any) string {
			a := v.(model.Address)
			parts := make([]string, 0, 3)
			for _, p := range []string{a.City, a.Street, a.BuildingNumber} {
				if p = strings.TrimSpace(p); p != "" {
					parts = append(parts, p)
				}
			}
			return strings.Join(parts, ", ")
		},
		reflect.TypeOf(uuid.UUID{}): func(v any) string {
			return v.(uuid.UUID).String()
		},
	}}
}

func (p *valueProjector) ProjectValue(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if f, ok := p.formatters[rv.Type()]; ok {
		return f(rv.Interface())
	}
	return fmt.Sprint(rv.Interface())
}
