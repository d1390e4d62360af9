package store

import (
	"fmt"
	"strings"
)

// Stage values for clients. Ordered for pipeline display.
var ClientStages = []string{"new", "contacted", "negotiating", "won", "lost"}

var clientSources = []string{"referral", "website", "instagram", "whatsapp", "ads", "event", "other"}

var projectStatuses = []string{"active", "on_hold", "done"}

var taskStatuses = []string{"inbox", "todo", "doing", "done", "archived"}

var activityTypes = []string{"whatsapp", "call", "email", "note", "meeting"}

func validateClient(f Fields, partial bool) error {
	if !partial {
		if err := requireString(f, "name"); err != nil {
			return err
		}
	}
	if err := checkEnum(f, "stage", ClientStages); err != nil {
		return err
	}
	if err := checkEnum(f, "source", clientSources); err != nil {
		return err
	}
	if v, ok := f["budget"]; ok && v != nil {
		budget, ok := asFloat(v)
		if !ok || budget < 0 {
			return fmt.Errorf("%w: budget must be a non-negative number", ErrInvalidInput)
		}
	}
	return checkList(f, "tags")
}

func validateProject(f Fields, partial bool) error {
	if !partial {
		if err := requireString(f, "client_id"); err != nil {
			return err
		}
		if err := requireString(f, "name"); err != nil {
			return err
		}
	}
	if err := checkEnum(f, "status", projectStatuses); err != nil {
		return err
	}
	return checkList(f, "tags")
}

func validateTask(f Fields, partial bool) error {
	if !partial {
		if err := requireString(f, "title"); err != nil {
			return err
		}
	}
	if err := checkEnum(f, "status", taskStatuses); err != nil {
		return err
	}
	if v, ok := f["priority"]; ok && v != nil {
		p, ok := asInt(v)
		if !ok || p < 1 || p > 3 {
			return fmt.Errorf("%w: priority must be 1, 2 or 3", ErrInvalidInput)
		}
	}
	return nil
}

func validateActivity(f Fields, partial bool) error {
	if !partial {
		if err := requireString(f, "type"); err != nil {
			return err
		}
		if err := requireString(f, "summary"); err != nil {
			return err
		}
	}
	return checkEnum(f, "type", activityTypes)
}

func requireString(f Fields, key string) error {
	val, ok := f[key].(string)
	if !ok || strings.TrimSpace(val) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, key)
	}
	return nil
}

func checkEnum(f Fields, key string, allowed []string) error {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	val, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: %s must be a string", ErrInvalidInput, key)
	}
	for _, a := range allowed {
		if val == a {
			return nil
		}
	}
	return fmt.Errorf("%w: %s must be one of %s", ErrInvalidInput, key, strings.Join(allowed, ", "))
}

// checkList accepts the shapes a tag list arrives in: already-encoded
// JSON text, []string, or a decoded JSON array.
func checkList(f Fields, key string) error {
	v, ok := f[key]
	if !ok || v == nil {
		return nil
	}
	switch list := v.(type) {
	case string:
		return nil
	case []string:
		return nil
	case []any:
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return fmt.Errorf("%w: %s must be a list of strings", ErrInvalidInput, key)
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %s must be a list of strings", ErrInvalidInput, key)
	}
}

func asInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
