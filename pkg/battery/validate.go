package battery

import (
	"fmt"
	"time"

	z "github.com/Oudwins/zog"
)

// RecordPayload is the raw JSON body of a create/update request.
// Capacity and Weight stay untyped: clients send either a number or
// free text, and text is deliberately treated as "not provided".
type RecordPayload struct {
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Resistance float64 `json:"resistance"`
	Voltage    float64 `json:"voltage"`
	Source     string  `json:"source"`
	Capacity   any     `json:"capacity"`
	Weight     any     `json:"weight"`
	Datetime   string  `json:"datetime"`
}

// Field bounds follow the column definitions: resistance is
// decimal(5,2), voltage decimal(3,2) capped at 4.5 V. Lower bounds are
// intentionally not enforced.
var recordPayloadSchema = z.Struct(z.Shape{
	"Name":       z.String().Min(1).Max(10).Required(),
	"Color":      z.String().Min(2).Max(20).Required(),
	"Resistance": z.Float64().LTE(999.99).Required(),
	"Voltage":    z.Float64().LTE(4.5).Required(),
	"Source":     z.String().Max(50).Optional(),
	"Datetime":   z.String().Optional(),
})

// ValidatePayload checks a creation payload and coerces it into a
// RecordInput. An empty source becomes nil, text capacity/weight become
// nil, and a missing datetime falls back to the server clock.
func ValidatePayload(payload *RecordPayload) (*RecordInput, error) {
	if issues := recordPayloadSchema.Validate(payload); issues != nil {
		for field, fieldIssues := range z.Issues.SanitizeMap(issues) {
			if len(fieldIssues) > 0 {
				return nil, newValidationError(fmt.Sprintf("%s: %s", field, fieldIssues[0]))
			}
		}
		return nil, newValidationError("invalid payload")
	}

	input := &RecordInput{
		Name:       payload.Name,
		Color:      payload.Color,
		Resistance: payload.Resistance,
		Voltage:    payload.Voltage,
	}

	if payload.Source != "" {
		source := payload.Source
		input.Source = &source
	}

	capacity, err := coerceInt("capacity", payload.Capacity)
	if err != nil {
		return nil, err
	}
	input.Capacity = capacity

	weight, err := coerceFloat("weight", payload.Weight)
	if err != nil {
		return nil, err
	}
	input.Weight = weight

	if payload.Datetime == "" {
		input.Datetime = time.Now().Truncate(time.Second)
	} else {
		parsed, err := time.Parse(DatetimeLayout, payload.Datetime)
		if err != nil {
			return nil, newValidationError(
				"datetime: invalid format, expected YYYY-MM-DD HH:MM:SS")
		}
		input.Datetime = parsed
	}

	return input, nil
}

// coerceInt accepts a JSON number, drops text to nil and rejects
// anything else.
func coerceInt(field string, value any) (*int64, error) {
	switch v := value.(type) {
	case nil, string:
		return nil, nil
	case float64:
		n := int64(v)
		return &n, nil
	default:
		return nil, newValidationError(fmt.Sprintf("%s: must be a number or text", field))
	}
}

func coerceFloat(field string, value any) (*float64, error) {
	switch v := value.(type) {
	case nil, string:
		return nil, nil
	case float64:
		f := v
		return &f, nil
	default:
		return nil, newValidationError(fmt.Sprintf("%s: must be a number or text", field))
	}
}
