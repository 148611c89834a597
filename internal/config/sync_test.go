// SPDX-License-Identifier: MPL-2.0

package config

import (
	"reflect"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// These tests verify Go struct JSON tags match CUE schema field names.
// They catch misalignments at CI time, preventing silent parsing failures.

// extractCUEFields returns the top-level field names of a CUE struct value.
func extractCUEFields(t *testing.T, val cue.Value) map[string]bool {
	t.Helper()

	fields := make(map[string]bool)

	iter, err := val.Fields(cue.Definitions(false), cue.Optional(true))
	if err != nil {
		t.Fatalf("failed to iterate CUE fields: %v", err)
	}

	for iter.Next() {
		sel := iter.Selector()
		if sel.LabelType().IsHidden() || sel.IsDefinition() {
			continue
		}

		// The selector string carries a "?" suffix for optional fields.
		name := strings.TrimSuffix(sel.String(), "?")
		fields[name] = true
	}

	return fields
}

// extractJSONTags returns the json tag names of a Go struct type.
func extractJSONTags(t *testing.T, typ reflect.Type) map[string]bool {
	t.Helper()

	tags := make(map[string]bool)
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("json")
		name, _, _ := strings.Cut(tag, ",")
		if name == "" || name == "-" {
			continue
		}
		tags[name] = true
	}

	return tags
}

func lookupSchema(t *testing.T, path string) cue.Value {
	t.Helper()

	ctx := cuecontext.New()
	schema := ctx.CompileString(configSchema)
	if schema.Err() != nil {
		t.Fatalf("failed to compile config schema: %v", schema.Err())
	}

	val := schema.LookupPath(cue.ParsePath(path))
	if !val.Exists() {
		t.Fatalf("schema path %q not found", path)
	}
	return val
}

func TestSchemaMatchesConfigStruct(t *testing.T) {
	tests := []struct {
		name       string
		schemaPath string
		goType     reflect.Type
	}{
		{"Config", "#Config", reflect.TypeOf(Config{})},
		{"UIConfig", "#UIConfig", reflect.TypeOf(UIConfig{})},
		{"ServeConfig", "#ServeConfig", reflect.TypeOf(ServeConfig{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cueFields := extractCUEFields(t, lookupSchema(t, tt.schemaPath))
			goTags := extractJSONTags(t, tt.goType)

			for name := range goTags {
				if !cueFields[name] {
					t.Errorf("Go field %q missing from CUE schema", name)
				}
			}
			for name := range cueFields {
				if !goTags[name] {
					t.Errorf("CUE field %q missing from Go struct", name)
				}
			}
		})
	}
}
