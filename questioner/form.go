package questioner

// Form runs each field strictly in declaration order and aggregates the
// answers keyed by field name. Later fields may depend on earlier
// answers, so nothing runs in parallel. Validation lives entirely in the
// per-field engines; a failing field blocks progression through its own
// retry loop.
func (q *Questioner) Form(cfg FormConfig) (map[string]any, error) {
	answers := make(map[string]any, len(cfg.Fields))
	for _, field := range cfg.Fields {
		value, err := q.runField(field)
		if err != nil {
			return nil, err
		}
		answers[field.Name] = value
	}
	return answers, nil
}

func (q *Questioner) runField(field Field) (any, error) {
	switch field.Type {
	case "password":
		return q.Password(PasswordConfig{Message: field.Message, Mask: field.Mask})
	case "number":
		return q.Number(NumberConfig{
			Message:  field.Message,
			Default:  field.Default,
			Required: field.Required,
			Integer:  field.Integer,
			Min:      field.MinValue,
			Max:      field.MaxValue,
		})
	case "confirm":
		def := parseDefaultBool(field.Default)
		return q.Confirm(ConfirmConfig{Message: field.Message, Default: def})
	case "select":
		return q.Select(SelectConfig{Message: field.Message, Choices: field.Choices})
	case "multiselect":
		return q.MultiSelect(MultiSelectConfig{
			Message: field.Message,
			Choices: field.Choices,
			Min:     field.Min,
			Max:     field.Max,
		})
	default:
		// Unrecognized or absent types fall back to plain input.
		return q.Input(InputConfig{
			Message:  field.Message,
			Default:  field.Default,
			Required: field.Required,
			Validate: field.Validate,
		})
	}
}

func parseDefaultBool(value string) *bool {
	switch value {
	case "true", "yes", "y":
		v := true
		return &v
	case "false", "no", "n":
		v := false
		return &v
	default:
		return nil
	}
}
