package tools

import (
	"reflect"

	"github.com/google/jsonschema-go/jsonschema"
)

// GenerateSchema generates a JSON schema for the given input type T and
// normalizes nullable fields (["type", "null"] becomes "type" plus
// nullable: true) so clients with strict schema validators accept it.
func GenerateSchema[T any]() *jsonschema.Schema {
	schema, err := jsonschema.ForType(reflect.TypeFor[T](), &jsonschema.ForOptions{})
	if err != nil {
		// Should not happen for valid Go types used in tools
		panic(err)
	}
	fixSchema(schema)
	return schema
}

// fixSchema recursively replaces ["type", "null"] with "type" and nullable: true.
func fixSchema(s *jsonschema.Schema) {
	if s == nil {
		return
	}

	if len(s.Types) > 0 {
		hasNull := false
		var otherTypes []string
		for _, t := range s.Types {
			if t == "null" {
				hasNull = true
			} else {
				otherTypes = append(otherTypes, t)
			}
		}

		if hasNull && len(otherTypes) == 1 {
			s.Type = otherTypes[0]
			s.Types = nil
			if s.Extra == nil {
				s.Extra = make(map[string]any)
			}
			s.Extra["nullable"] = true
		}
	}

	for _, prop := range s.Properties {
		fixSchema(prop)
	}
	if s.Items != nil {
		fixSchema(s.Items)
	}
	for _, item := range s.ItemsArray {
		fixSchema(item)
	}
	for _, def := range s.Definitions {
		fixSchema(def)
	}
	for _, def := range s.Defs {
		fixSchema(def)
	}
	if s.AdditionalProperties != nil {
		fixSchema(s.AdditionalProperties)
	}
	for _, sub := range s.OneOf {
		fixSchema(sub)
	}
	for _, sub := range s.AnyOf {
		fixSchema(sub)
	}
	for _, sub := range s.AllOf {
		fixSchema(sub)
	}
	if s.Not != nil {
		fixSchema(s.Not)
	}
	if s.If != nil {
		fixSchema(s.If)
	}
	if s.Then != nil {
		fixSchema(s.Then)
	}
	if s.Else != nil {
		fixSchema(s.Else)
	}
}
