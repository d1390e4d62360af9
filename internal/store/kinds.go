package store

import "fmt"

// Kind identifies one of the entity collections managed by the store.
// The set is closed: dispatch goes through the catalog below, never
// through caller-supplied table names.
type Kind string

const (
	KindClient   Kind = "clients"
	KindProject  Kind = "projects"
	KindTask     Kind = "tasks"
	KindActivity Kind = "activities"
)

// Kinds lists every catalogued kind.
func Kinds() []Kind {
	return []Kind{KindClient, KindProject, KindTask, KindActivity}
}

// ParseKind maps an external collection name to a catalogued kind.
func ParseKind(name string) (Kind, error) {
	k := Kind(name)
	if _, ok := catalog[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

// Descriptor describes how a kind is stored and validated.
type Descriptor struct {
	Table string
	// Columns are the mutable document fields, in storage order. The
	// reserved columns id, workspace_id, created_at and updated_at are
	// managed by the store itself.
	Columns []string
	// Defaults are applied for columns absent from a create request.
	Defaults Fields
	// Validate checks a field map. For partial updates only the fields
	// present are checked; for creates required fields are enforced too.
	Validate func(fields Fields, partial bool) error
}

var catalog = map[Kind]Descriptor{
	KindClient: {
		Table: "clients",
		Columns: []string{
			"name", "company", "stage", "source", "budget",
			"phone", "email", "whatsapp", "tags",
		},
		Defaults: Fields{"stage": "new", "whatsapp": false, "tags": "[]"},
		Validate: validateClient,
	},
	KindProject: {
		Table: "projects",
		Columns: []string{
			"client_id", "name", "status", "start_date", "due_date", "tags",
		},
		Defaults: Fields{"status": "active", "tags": "[]"},
		Validate: validateProject,
	},
	KindTask: {
		Table: "tasks",
		Columns: []string{
			"client_id", "project_id", "title", "status", "priority",
			"scheduled_date", "due_date", "completed_at",
		},
		Defaults: Fields{"status": "inbox", "priority": 2},
		Validate: validateTask,
	},
	KindActivity: {
		Table: "activities",
		Columns: []string{
			"client_id", "project_id", "type", "summary", "event_date",
		},
		Validate: validateActivity,
	},
}

// Describe returns the catalog entry for a kind.
func Describe(kind Kind) (Descriptor, error) {
	desc, ok := catalog[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return desc, nil
}

func (d Descriptor) hasColumn(name string) bool {
	for _, col := range d.Columns {
		if col == name {
			return true
		}
	}
	return false
}
