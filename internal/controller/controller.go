// Package controller holds the task-list state machine behind the UI:
// the task collection, the new-task inputs, a single edit cursor and the
// category grouping. It applies local updates only after the gateway
// confirms a mutation, so a failed request leaves state untouched.
package controller

import (
	"context"
	"strings"

	"github.com/nja-rasheed/taskfy/internal/client"
)

// DefaultCategory is the preselected category for new tasks.
const DefaultCategory = "Personal"

// Uncategorized is the grouping bucket for tasks without a category.
const Uncategorized = "Uncategorized"

// Categories are the choices offered for new and edited tasks.
var Categories = []string{"Personal", "Work", "Shopping", "Study", "Other"}

// Controller drives one user's task list.
type Controller struct {
	gw       client.Gateway
	identity string
	loading  bool
	tasks    []client.Task

	// New-task inputs.
	NewTitle    string
	NewCategory string

	// Edit session. editID is empty when nothing is being edited; only
	// one task is editable at a time.
	editID       string
	EditTitle    string
	EditCategory string
}

// New returns a Controller for the given identity. The controller stays in
// the loading state until Init completes.
func New(gw client.Gateway, identity string) *Controller {
	return &Controller{
		gw:          gw,
		identity:    identity,
		loading:     true,
		NewCategory: DefaultCategory,
	}
}

// Identity returns the authenticated identity the controller was built for.
func (c *Controller) Identity() string { return c.identity }

// Loading reports whether the initial fetch is still outstanding.
func (c *Controller) Loading() bool { return c.loading }

// Tasks returns the current task collection, newest first.
func (c *Controller) Tasks() []client.Task { return c.tasks }

// Init fetches the task collection. A client.ErrUnauthorized result means
// the session is gone and the caller should return to login.
func (c *Controller) Init(ctx context.Context) error {
	tasks, err := c.gw.Tasks(ctx)
	if err != nil {
		return err
	}
	c.tasks = tasks
	c.loading = false
	return nil
}

// Grouped projects the flat collection into category buckets, preserving
// task order within each bucket. Tasks without a category land in
// Uncategorized. The projection is recomputed on every call and never
// persisted.
func (c *Controller) Grouped() map[string][]client.Task {
	grouped := make(map[string][]client.Task)
	for _, t := range c.tasks {
		cat := t.Category
		if cat == "" {
			cat = Uncategorized
		}
		grouped[cat] = append(grouped[cat], t)
	}
	return grouped
}

// GroupOrder returns the category names of Grouped in first-appearance
// order, so rendering is stable across frames.
func (c *Controller) GroupOrder() []string {
	var order []string
	seen := make(map[string]bool)
	for _, t := range c.tasks {
		cat := t.Category
		if cat == "" {
			cat = Uncategorized
		}
		if !seen[cat] {
			seen[cat] = true
			order = append(order, cat)
		}
	}
	return order
}

// Add creates a task from the new-task inputs. Whitespace-only titles are
// rejected locally without a gateway call. On success the stored record is
// appended and the inputs reset.
func (c *Controller) Add(ctx context.Context) error {
	if strings.TrimSpace(c.NewTitle) == "" {
		return nil
	}

	task, err := c.gw.Create(ctx, c.NewTitle, c.NewCategory)
	if err != nil {
		return err
	}
	c.tasks = append(c.tasks, task)
	c.NewTitle = ""
	c.NewCategory = DefaultCategory
	return nil
}

// EditingID returns the id of the task under edit, or "" when none is.
func (c *Controller) EditingID() string { return c.editID }

// StartEdit opens the edit session for the given task, seeding the pending
// fields from its current state. Starting an edit moves the cursor; any
// previous session is discarded.
func (c *Controller) StartEdit(id string) bool {
	for _, t := range c.tasks {
		if t.ID == id {
			c.editID = id
			c.EditTitle = t.Title
			c.EditCategory = t.Category
			if c.EditCategory == "" {
				c.EditCategory = DefaultCategory
			}
			return true
		}
	}
	return false
}

// CancelEdit drops the edit session without saving.
func (c *Controller) CancelEdit() {
	c.editID = ""
	c.EditTitle = ""
	c.EditCategory = DefaultCategory
}

// SaveEdit sends the pending title and category for the task under edit,
// keeping its completed flag, then replaces the local record and clears
// the session.
func (c *Controller) SaveEdit(ctx context.Context) error {
	if c.editID == "" {
		return nil
	}

	completed := false
	for _, t := range c.tasks {
		if t.ID == c.editID {
			completed = t.Completed
			break
		}
	}

	task, err := c.gw.Update(ctx, c.editID, c.EditTitle, completed, c.EditCategory)
	if err != nil {
		return err
	}
	c.replace(task)
	c.CancelEdit()
	return nil
}

// Toggle flips a task's completed flag, resending its existing title and
// category unchanged.
func (c *Controller) Toggle(ctx context.Context, id string) error {
	for _, t := range c.tasks {
		if t.ID == id {
			task, err := c.gw.Update(ctx, t.ID, t.Title, !t.Completed, t.Category)
			if err != nil {
				return err
			}
			c.replace(task)
			return nil
		}
	}
	return nil
}

// Delete removes a task and filters it out of local state.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if _, err := c.gw.Delete(ctx, id); err != nil {
		return err
	}
	kept := c.tasks[:0]
	for _, t := range c.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	c.tasks = kept
	if c.editID == id {
		c.CancelEdit()
	}
	return nil
}

func (c *Controller) replace(task client.Task) {
	for i, t := range c.tasks {
		if t.ID == task.ID {
			c.tasks[i] = task
			return
		}
	}
}
