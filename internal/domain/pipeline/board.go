// Package pipeline turns a workspace's clients into a staged board
// and maps drag-and-drop gestures onto single stage updates.
package pipeline

import "github.com/rioverde/pipedesk/internal/domain/client"

// Column is one pipeline stage and the cards currently in it.
type Column struct {
	Stage client.Stage    `json:"stage"`
	Cards []client.Client `json:"cards"`
}

// Board is the full pipeline view: five fixed columns in stage order.
type Board struct {
	Columns []Column `json:"columns"`
}

// Partition groups clients into the five stage columns. Input order
// is preserved within each column; no additional sort is applied.
func Partition(clients []client.Client) Board {
	stages := client.Stages()
	buckets := make(map[client.Stage][]client.Client, len(stages))
	for _, c := range clients {
		buckets[c.Stage] = append(buckets[c.Stage], c)
	}

	board := Board{Columns: make([]Column, 0, len(stages))}
	for _, stage := range stages {
		board.Columns = append(board.Columns, Column{
			Stage: stage,
			Cards: buckets[stage],
		})
	}
	return board
}

// Merge flattens the board back into a single client list, column by
// column. Partition followed by Merge loses and duplicates nothing.
func (b Board) Merge() []client.Client {
	var clients []client.Client
	for _, col := range b.Columns {
		clients = append(clients, col.Cards...)
	}
	return clients
}

// Gesture is a completed drag-and-drop. Exactly one of Stage or
// OverID identifies the drop target: Stage when the card was released
// on a column, OverID when it was released on another card.
type Gesture struct {
	ClientID string       `json:"client_id"`
	Stage    client.Stage `json:"stage,omitempty"`
	OverID   string       `json:"over_id,omitempty"`
}

// resolveTarget maps a gesture's release point to a stage. A column
// identifier wins; otherwise the stage of the card under the cursor.
// Neither resolving means the gesture is a no-op.
func resolveTarget(g Gesture, clients []client.Client) (client.Stage, bool) {
	if g.Stage != "" {
		if _, err := client.ParseStage(string(g.Stage)); err == nil {
			return g.Stage, true
		}
		return "", false
	}
	if g.OverID != "" {
		for _, c := range clients {
			if c.ID == g.OverID {
				return c.Stage, true
			}
		}
	}
	return "", false
}
