package client

import "github.com/rioverde/pipedesk/internal/store"

// fromFields decodes a stored field map into a Client.
func fromFields(f store.Fields) *Client {
	return &Client{
		ID:          f.String("id"),
		WorkspaceID: f.String("workspace_id"),
		Name:        f.String("name"),
		Company:     f.String("company"),
		Stage:       Stage(f.String("stage")),
		Source:      f.String("source"),
		Budget:      f.Float("budget"),
		Contact: Contact{
			Phone:    f.String("phone"),
			Email:    f.String("email"),
			Whatsapp: f.Bool("whatsapp"),
		},
		Tags:      f.StringList("tags"),
		CreatedAt: f.Time("created_at"),
		UpdatedAt: f.Time("updated_at"),
	}
}
