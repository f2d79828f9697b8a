package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hiresphere/api/internal/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// convertSurrealID converts a SurrealDB ID (which may be a complex object) to a string
func convertSurrealID(id interface{}) string {
	if str, ok := id.(string); ok {
		return str
	}

	if rid, ok := id.(models.RecordID); ok {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}
	if rid, ok := id.(*models.RecordID); ok && rid != nil {
		return fmt.Sprintf("%s:%v", rid.Table, rid.ID)
	}

	// Handle map format: {"tb": "job", "id": {"String": "abc"}} or similar
	if m, ok := id.(map[string]interface{}); ok {
		tb := ""
		idPart := ""

		if t, ok := m["tb"].(string); ok {
			tb = t
		} else if t, ok := m["TB"].(string); ok {
			tb = t
		} else if t, ok := m["Table"].(string); ok {
			tb = t
		}

		if idVal, ok := m["id"]; ok {
			idPart = extractIDValue(idVal)
		} else if idVal, ok := m["ID"]; ok {
			idPart = extractIDValue(idVal)
		}

		if tb != "" && idPart != "" {
			return tb + ":" + idPart
		}
		if idPart != "" {
			return idPart
		}
	}

	return fmt.Sprintf("%v", id)
}

// extractIDValue extracts the ID value which may be nested
func extractIDValue(val interface{}) string {
	if str, ok := val.(string); ok {
		return str
	}
	if m, ok := val.(map[string]interface{}); ok {
		if s, ok := m["String"].(string); ok {
			return s
		}
		if s, ok := m["string"].(string); ok {
			return s
		}
	}
	return fmt.Sprintf("%v", val)
}

// stripTable removes a "table:" prefix from a record id. Applicant record
// keys are external provider subject ids; the rest of the system refers to
// them without the table prefix.
func stripTable(id, table string) string {
	id = strings.TrimPrefix(id, table+":")
	// SurrealDB renders non-alphanumeric keys wrapped in angle brackets
	id = strings.TrimPrefix(id, "⟨")
	return strings.TrimSuffix(id, "⟩")
}

// parseTime parses time from the formats the SurrealDB client returns
func parseTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
	case models.CustomDateTime:
		return t.Time
	case *models.CustomDateTime:
		if t != nil {
			return t.Time
		}
	}
	return time.Time{}
}

// unwrapOne navigates the SurrealDB response wrapper down to a single record
// map. Returns database.ErrNotFound when the result set is empty.
func unwrapOne(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// unwrapMany navigates the SurrealDB response wrapper down to a record list
func unwrapMany(result []interface{}) []interface{} {
	if len(result) == 0 {
		return nil
	}
	if resp, ok := result[0].(map[string]interface{}); ok {
		if resultData, ok := resp["result"].([]interface{}); ok {
			return resultData
		}
	}
	return result
}

// decodeRecord converts a raw record map into a model struct. The record id
// and timestamps are normalized first because the SurrealDB client returns
// them as driver-specific types that do not survive a JSON round trip.
func decodeRecord(data map[string]interface{}, v interface{}) error {
	if id, ok := data["id"]; ok {
		data["id"] = convertSurrealID(id)
	}
	for _, field := range []string{"created_on", "updated_on"} {
		if raw, ok := data[field]; ok {
			if t := parseTime(raw); !t.IsZero() {
				data[field] = t.Format(time.RFC3339Nano)
			}
		}
	}

	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, v)
}
