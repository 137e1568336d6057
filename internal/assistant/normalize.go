package assistant

import (
	"encoding/json"
	"strconv"
	"strings"
)

// NormalizeRecord repairs a possibly-malformed extraction payload into a
// well-typed Record. It is total: any input yields a usable record. When the
// payload cannot be parsed as a JSON object at all, the result is an
// all-empty record carrying the original output in Raw.
//
// Defaulting is limited to Intent ("other"), MissingInfo (empty list), and
// ReadyToBook (false); no missing values are inferred. The function is
// idempotent: normalizing the JSON encoding of a normalized record
// reproduces it unchanged.
func NormalizeRecord(raw string) Record {
	var fields map[string]any
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fields); err != nil {
		return Record{
			Intent:      IntentOther,
			MissingInfo: []string{},
			Raw:         raw,
		}
	}

	rec := Record{
		FirstName:      stringField(fields, "firstName"),
		LastName:       stringField(fields, "lastName"),
		DOB:            stringField(fields, "dob"),
		Specialization: stringField(fields, "specialization"),
		DoctorName:     stringField(fields, "doctorName"),
		Date:           stringField(fields, "date"),
		Time:           stringField(fields, "time"),
		Symptoms:       stringField(fields, "symptoms"),
		Intent:         stringField(fields, "intent"),
		MissingInfo:    stringSliceField(fields, "missingInfo"),
		ReadyToBook:    boolField(fields, "readyToBook"),
		Raw:            stringField(fields, "raw"),
	}

	if !filled(rec.Intent) {
		rec.Intent = IntentOther
	}
	if rec.MissingInfo == nil {
		rec.MissingInfo = []string{}
	}
	return rec
}

// stripCodeFence removes a surrounding markdown code fence, which models
// sometimes emit despite JSON-mode instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// stringField reads a field as a string, tolerating numeric values the model
// may emit for date-like fields. Null and other types become "".
func stringField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}

// boolField reads a field as a bool, tolerating the string forms "true"/"false".
func boolField(fields map[string]any, key string) bool {
	switch v := fields[key].(type) {
	case bool:
		return v
	case string:
		b, err := strconv.ParseBool(v)
		return err == nil && b
	default:
		return false
	}
}

// stringSliceField reads a field as a list of strings, dropping non-string
// elements. Returns nil when the field is absent or not a list.
func stringSliceField(fields map[string]any, key string) []string {
	items, ok := fields[key].([]any)
	if !ok {
		return nil
	}
	values := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			values = append(values, s)
		}
	}
	return values
}
