package wire

import (
	"bytes"
	"encoding/json"

	"waypoint/internal/models"

	"gorm.io/datatypes"
)

// decodeJSONColumn parses a JSON column into dest. The backing store may hold
// either a native JSON value or a JSON-encoded string containing one (legacy
// writers double-encoded); both forms are resolved here, once, and never
// re-checked downstream. A null or empty column leaves dest at its zero value.
func decodeJSONColumn(raw datatypes.JSON, field string, dest any) error {
	data := bytes.TrimSpace([]byte(raw))
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return models.NewDataFormatError(field, err)
		}
		if inner == "" {
			return nil
		}
		data = []byte(inner)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return models.NewDataFormatError(field, err)
	}
	return nil
}

// jsonColumn serializes a value for storage in a JSON column.
func jsonColumn(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		// Domain records contain only marshalable types.
		return datatypes.JSON("null")
	}
	return datatypes.JSON(b)
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intOrZero(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

func floatOrZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func ptr[T any](v T) *T { return &v }
