package hubspot

import (
	"context"
	"time"
)

var noteProps = []string{"hs_note_body", "hs_timestamp", "hs_attachment_ids"}

var (
	taskListProps = []string{"hs_task_subject", "hs_task_body", "hs_task_status", "hs_task_priority", "hs_timestamp"}
	taskGetProps  = []string{"hs_task_subject", "hs_task_body", "hs_task_status", "hs_task_priority", "hs_task_type", "hs_timestamp"}
)

// ListNotes returns the notes attached to a CRM object, resolved through
// the v4 associations API.
func (c *Client) ListNotes(ctx context.Context, objectType, objectID string, opts ListOptions) ([]Record, error) {
	associations, _, err := c.ListAssociations(ctx, objectType, objectID, "notes", opts)
	if err != nil {
		return nil, err
	}

	notes := make([]Record, 0, len(associations))
	for _, assoc := range associations {
		note, errGet := c.getObject(ctx, "notes", assoc.ToObjectID, nil, noteProps)
		if errGet != nil {
			return nil, errGet
		}
		notes = append(notes, *note)
	}
	return notes, nil
}

// CreateNote creates a note and associates it with the given object.
func (c *Client) CreateNote(ctx context.Context, objectType, objectID, body string) (*Record, error) {
	note, err := c.createObject(ctx, "notes", map[string]string{
		"hs_note_body": body,
		"hs_timestamp": time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return nil, err
	}

	if err = c.CreateAssociation(ctx, "notes", note.ID, objectType, objectID); err != nil {
		return nil, err
	}
	return note, nil
}

// TaskInput holds the fields for creating a task.
type TaskInput struct {
	Subject  string
	Body     string
	DueDate  string
	Priority string // LOW, MEDIUM, HIGH
	Status   string // NOT_STARTED, IN_PROGRESS, COMPLETED
}

// ListTasks returns one page of tasks.
func (c *Client) ListTasks(ctx context.Context, opts ListOptions) (*Page, error) {
	return c.listObjects(ctx, "tasks", opts, taskListProps)
}

// GetTask returns a single task by id.
func (c *Client) GetTask(ctx context.Context, id string, properties []string) (*Record, error) {
	return c.getObject(ctx, "tasks", id, properties, taskGetProps)
}

// CreateTask creates a task. Status defaults to NOT_STARTED.
func (c *Client) CreateTask(ctx context.Context, input TaskInput) (*Record, error) {
	properties := map[string]string{
		"hs_task_subject": input.Subject,
		"hs_task_status":  input.Status,
	}
	if properties["hs_task_status"] == "" {
		properties["hs_task_status"] = "NOT_STARTED"
	}
	if input.Body != "" {
		properties["hs_task_body"] = input.Body
	}
	if input.DueDate != "" {
		properties["hs_timestamp"] = input.DueDate
	}
	if input.Priority != "" {
		properties["hs_task_priority"] = input.Priority
	}
	return c.createObject(ctx, "tasks", properties)
}
