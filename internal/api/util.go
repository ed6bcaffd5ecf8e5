package api

import (
	"encoding/json"
	"math/rand"
	"regexp"
	"strings"
)

const codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
const codeLength = 8

// generateJoinCode creates a short alphanumeric code for joining rooms.
func generateJoinCode() string {
	b := make([]byte, codeLength)
	for i := range b {
		b[i] = codeCharset[rand.Intn(len(codeCharset))]
	}
	return string(b)
}

var joinCodeRegex = regexp.MustCompile("^[A-Z0-9]{8}$")

func normalizeJoinCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// normalizeTimestamps recursively renames GORM timestamp keys from CamelCase
// (ID, CreatedAt, UpdatedAt, DeletedAt) to snake_case so clients receive
// consistent keys.
func normalizeTimestamps(v interface{}) interface{} {
	switch vv := v.(type) {
	case map[string]interface{}:
		for k, val := range vv {
			vv[k] = normalizeTimestamps(val)
		}
		for from, to := range gormKeys {
			if val, ok := vv[from]; ok {
				vv[to] = val
				delete(vv, from)
			}
		}
		return vv
	case []interface{}:
		for i := range vv {
			vv[i] = normalizeTimestamps(vv[i])
		}
		return vv
	default:
		return v
	}
}

var gormKeys = map[string]string{
	"ID":        "id",
	"CreatedAt": "created_at",
	"UpdatedAt": "updated_at",
	"DeletedAt": "deleted_at",
}

// MarshalIntoSnakeTimestamps marshals the given value into JSON, then decodes
// into an interface{} and normalizes GORM keys to snake_case. It is used to
// produce API responses with consistent snake_case keys.
func MarshalIntoSnakeTimestamps(v interface{}) (interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return normalizeTimestamps(out), nil
}
