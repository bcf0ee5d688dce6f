package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"
)

var durationType = reflect.TypeFor[time.Duration]()

// loadFromEnvironment fills every field carrying an env tag, falling back to
// its default tag. All malformed variables are reported together.
func loadFromEnvironment(config *Config) error {
	var errs []error
	walkEnvFields(reflect.ValueOf(config).Elem(), func(field reflect.Value, name, fallback string) {
		raw := os.Getenv(name)
		if raw == "" {
			raw = fallback
		}
		if raw == "" {
			return
		}
		if err := assign(field, raw); err != nil {
			errs = append(errs, fmt.Errorf("%s=%q: %w", name, raw, err))
		}
	})
	return errors.Join(errs...)
}

func walkEnvFields(v reflect.Value, visit func(field reflect.Value, name, fallback string)) {
	for i := range v.NumField() {
		field, meta := v.Field(i), v.Type().Field(i)
		if !field.CanSet() {
			continue
		}
		if field.Kind() == reflect.Struct {
			walkEnvFields(field, visit)
			continue
		}
		if name := meta.Tag.Get("env"); name != "" {
			visit(field, name, meta.Tag.Get("default"))
		}
	}
}

func assign(field reflect.Value, raw string) error {
	if field.Type() == durationType {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return err
		}
		field.SetInt(int64(d))
		return nil
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(raw)
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		field.SetBool(b)
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, field.Type().Bits())
		if err != nil {
			return err
		}
		field.SetInt(n)
	case reflect.Float64:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return err
		}
		field.SetFloat(f)
	case reflect.Slice:
		if field.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice of %s", field.Type().Elem())
		}
		field.Set(reflect.ValueOf(splitList(raw)))
	default:
		return fmt.Errorf("unsupported kind %s", field.Kind())
	}
	return nil
}

// splitList parses a comma separated list, dropping blank items.
func splitList(raw string) []string {
	items := []string{}
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items
}
