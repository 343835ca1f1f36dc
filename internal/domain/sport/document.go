package sport

// Document flattens the schema into its wire and storage shape: roles and
// stat_fields as reserved keys, extra keys alongside them at the top level.
func (s ConfigSchema) Document() map[string]any {
	doc := make(map[string]any, len(s.Extra)+2)
	for key, value := range s.Extra {
		doc[key] = value
	}

	roles := make([]any, 0, len(s.Roles))
	for _, role := range s.Roles {
		roles = append(roles, role)
	}
	fields := make([]any, 0, len(s.StatFields))
	for _, field := range s.StatFields {
		fields = append(fields, field)
	}
	doc["roles"] = roles
	doc["stat_fields"] = fields

	return doc
}

// SchemaFromDocument is the inverse of Document. Non-string entries under
// roles or stat_fields are dropped; unknown top-level keys land in Extra.
func SchemaFromDocument(doc map[string]any) ConfigSchema {
	schema := ConfigSchema{
		Roles:      stringList(doc["roles"]),
		StatFields: stringList(doc["stat_fields"]),
	}

	for key, value := range doc {
		if key == "roles" || key == "stat_fields" {
			continue
		}
		if schema.Extra == nil {
			schema.Extra = make(map[string]any)
		}
		schema.Extra[key] = value
	}

	return schema
}

func stringList(value any) []string {
	items, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
