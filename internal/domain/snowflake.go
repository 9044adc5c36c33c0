package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Snowflake is a Discord id. The API sends ids as JSON numbers or strings;
// they are kept as strings so no precision is lost.
type Snowflake string

func (s *Snowflake) UnmarshalJSON(data []byte) error {
	raw, err := decodeSnowflake(data)
	if err != nil {
		return err
	}

	*s = Snowflake(raw)
	return nil
}

// MarshalJSON writes numeric ids as JSON numbers, which the API expects.
func (s Snowflake) MarshalJSON() ([]byte, error) {
	return encodeSnowflake(string(s))
}

func (s Snowflake) String() string {
	return string(s)
}

func SnowflakePtr(raw string) *Snowflake {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}

	id := Snowflake(trimmed)
	return &id
}

func decodeSnowflake(data []byte) (string, error) {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		return "", nil
	}

	if len(trimmed) > 0 && trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return "", err
		}
		return strings.TrimSpace(raw), nil
	}

	var number json.Number
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	if err := decoder.Decode(&number); err != nil {
		return "", fmt.Errorf("decode snowflake: %w", err)
	}
	return number.String(), nil
}

func encodeSnowflake(raw string) ([]byte, error) {
	if isDigits(raw) {
		return []byte(raw), nil
	}

	return json.Marshal(raw)
}

func isDigits(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
