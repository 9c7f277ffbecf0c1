package questioner

import "sort"

// Ask is the legacy one-argument question call: a plain input prompt with
// no validation.
func (q *Questioner) Ask(message string) (string, error) {
	return q.Input(InputConfig{Message: message})
}

// Menu is the legacy menu call over a key→label mapping. It is a select
// prompt whose choices are the mapping's entries (label shown, key
// returned), ordered by key for stable display. Cancellation returns the
// empty string.
func (q *Questioner) Menu(message string, options map[string]string) (string, error) {
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	choices := make([]Choice, 0, len(keys))
	for _, key := range keys {
		choices = append(choices, Choice{Name: options[key], Value: key})
	}
	value, err := q.Select(SelectConfig{Message: message, Choices: choices})
	if err != nil {
		return "", err
	}
	if value == nil {
		return "", nil
	}
	return value.(string), nil
}
