package controller_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nja-rasheed/taskfy/internal/controller"
	"github.com/nja-rasheed/taskfy/internal/testutil"
)

func newController(t *testing.T, gw *testutil.FakeGateway) *controller.Controller {
	t.Helper()
	c := controller.New(gw, "alice@example.com")
	if !c.Loading() {
		t.Fatal("controller should start in the loading state")
	}
	if err := c.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if c.Loading() {
		t.Fatal("controller should leave the loading state after Init")
	}
	return c
}

func TestInitFetchesTasks(t *testing.T) {
	gw := testutil.NewFakeGateway()
	gw.Seed("Buy milk", "Shopping", false)
	gw.Seed("Write report", "Work", true)

	c := newController(t, gw)

	if len(c.Tasks()) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(c.Tasks()))
	}
}

func TestGroupedBucketsByCategory(t *testing.T) {
	gw := testutil.NewFakeGateway()
	gw.Seed("Buy milk", "Shopping", false)
	gw.Seed("Buy eggs", "Shopping", false)
	gw.Seed("Old note", "", false)

	c := newController(t, gw)
	grouped := c.Grouped()

	if len(grouped["Shopping"]) != 2 {
		t.Errorf("expected 2 Shopping tasks, got %d", len(grouped["Shopping"]))
	}
	if grouped["Shopping"][0].Title != "Buy milk" {
		t.Errorf("grouping must preserve task order, got %q first", grouped["Shopping"][0].Title)
	}
	if len(grouped[controller.Uncategorized]) != 1 {
		t.Errorf("task without category should land in %q", controller.Uncategorized)
	}

	order := c.GroupOrder()
	want := []string{"Shopping", controller.Uncategorized}
	if len(order) != len(want) {
		t.Fatalf("expected group order %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected group order %v, got %v", want, order)
		}
	}
}

func TestAddBlankTitleNeverReachesGateway(t *testing.T) {
	gw := testutil.NewFakeGateway()
	c := newController(t, gw)

	for _, title := range []string{"", "   ", "\t\n"} {
		c.NewTitle = title
		if err := c.Add(context.Background()); err != nil {
			t.Fatalf("Add(%q): %v", title, err)
		}
	}

	if gw.CreateCalls != 0 {
		t.Errorf("blank titles must be rejected locally, gateway saw %d calls", gw.CreateCalls)
	}
	if len(c.Tasks()) != 0 {
		t.Errorf("expected no tasks, got %d", len(c.Tasks()))
	}
}

func TestAddAppendsAndResetsInputs(t *testing.T) {
	gw := testutil.NewFakeGateway()
	c := newController(t, gw)

	c.NewTitle = "Buy milk"
	c.NewCategory = "Shopping"
	if err := c.Add(context.Background()); err != nil {
		t.Fatalf("Add: %v", err)
	}

	tasks := c.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].Title != "Buy milk" || tasks[0].Category != "Shopping" {
		t.Errorf("unexpected task %+v", tasks[0])
	}
	if tasks[0].Completed {
		t.Error("new tasks must start incomplete")
	}
	if c.NewTitle != "" || c.NewCategory != controller.DefaultCategory {
		t.Errorf("inputs not reset: title=%q category=%q", c.NewTitle, c.NewCategory)
	}
}

func TestAddFailureLeavesStateUnchanged(t *testing.T) {
	gw := testutil.NewFakeGateway()
	c := newController(t, gw)
	gw.CreateErr = errors.New("store down")

	c.NewTitle = "Buy milk"
	if err := c.Add(context.Background()); err == nil {
		t.Fatal("expected error from Add")
	}
	if len(c.Tasks()) != 0 {
		t.Error("failed add must not change local state")
	}
	if c.NewTitle != "Buy milk" {
		t.Error("failed add must not clear the input")
	}
}

func TestEditSession(t *testing.T) {
	gw := testutil.NewFakeGateway()
	a := gw.Seed("Buy milk", "Shopping", false)
	b := gw.Seed("Write report", "Work", true)

	c := newController(t, gw)

	if !c.StartEdit(a.ID) {
		t.Fatal("StartEdit should find the task")
	}
	if c.EditingID() != a.ID || c.EditTitle != "Buy milk" || c.EditCategory != "Shopping" {
		t.Fatalf("edit session not seeded: id=%q title=%q category=%q", c.EditingID(), c.EditTitle, c.EditCategory)
	}

	// The cursor is global: starting another edit moves it.
	if !c.StartEdit(b.ID) {
		t.Fatal("StartEdit should find the second task")
	}
	if c.EditingID() != b.ID {
		t.Errorf("expected edit cursor on %q, got %q", b.ID, c.EditingID())
	}

	c.EditTitle = "Write Q3 report"
	c.EditCategory = "Work"
	if err := c.SaveEdit(context.Background()); err != nil {
		t.Fatalf("SaveEdit: %v", err)
	}
	if c.EditingID() != "" {
		t.Error("SaveEdit must clear the edit cursor")
	}

	for _, task := range c.Tasks() {
		if task.ID == b.ID {
			if task.Title != "Write Q3 report" {
				t.Errorf("expected updated title, got %q", task.Title)
			}
			if !task.Completed {
				t.Error("SaveEdit must keep the completed flag")
			}
		}
	}
}

func TestStartEditUnknownID(t *testing.T) {
	gw := testutil.NewFakeGateway()
	c := newController(t, gw)

	if c.StartEdit("missing") {
		t.Error("StartEdit should report false for an unknown id")
	}
	if c.EditingID() != "" {
		t.Error("failed StartEdit must not set the cursor")
	}
}

func TestSaveEditFailureKeepsSession(t *testing.T) {
	gw := testutil.NewFakeGateway()
	a := gw.Seed("Buy milk", "Shopping", false)
	c := newController(t, gw)

	c.StartEdit(a.ID)
	c.EditTitle = "Buy oat milk"
	gw.UpdateErr = errors.New("store down")

	if err := c.SaveEdit(context.Background()); err == nil {
		t.Fatal("expected error from SaveEdit")
	}
	if c.Tasks()[0].Title != "Buy milk" {
		t.Error("failed save must not change local state")
	}
	if c.EditingID() != a.ID {
		t.Error("failed save must keep the edit session open")
	}
}

func TestToggleTwiceRestoresOriginal(t *testing.T) {
	gw := testutil.NewFakeGateway()
	a := gw.Seed("Buy milk", "Shopping", false)
	c := newController(t, gw)

	if err := c.Toggle(context.Background(), a.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !c.Tasks()[0].Completed {
		t.Fatal("first toggle should complete the task")
	}
	if c.Tasks()[0].Title != "Buy milk" || c.Tasks()[0].Category != "Shopping" {
		t.Error("toggle must resend title and category unchanged")
	}

	if err := c.Toggle(context.Background(), a.ID); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if c.Tasks()[0].Completed {
		t.Error("double toggle should restore the original completed value")
	}
}

func TestToggleFailureLeavesStateUnchanged(t *testing.T) {
	gw := testutil.NewFakeGateway()
	a := gw.Seed("Buy milk", "Shopping", false)
	c := newController(t, gw)
	gw.UpdateErr = errors.New("store down")

	if err := c.Toggle(context.Background(), a.ID); err == nil {
		t.Fatal("expected error from Toggle")
	}
	if c.Tasks()[0].Completed {
		t.Error("failed toggle must not flip local state")
	}
}

func TestDeleteRemovesByID(t *testing.T) {
	gw := testutil.NewFakeGateway()
	a := gw.Seed("Buy milk", "Shopping", false)
	b := gw.Seed("Write report", "Work", false)
	c := newController(t, gw)

	if err := c.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	tasks := c.Tasks()
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Fatalf("expected only %q to remain, got %+v", b.ID, tasks)
	}
}

func TestDeleteClearsEditCursor(t *testing.T) {
	gw := testutil.NewFakeGateway()
	a := gw.Seed("Buy milk", "Shopping", false)
	c := newController(t, gw)

	c.StartEdit(a.ID)
	if err := c.Delete(context.Background(), a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if c.EditingID() != "" {
		t.Error("deleting the task under edit must clear the cursor")
	}
}

func TestDeleteFailureLeavesStateUnchanged(t *testing.T) {
	gw := testutil.NewFakeGateway()
	gw.Seed("Buy milk", "Shopping", false)
	c := newController(t, gw)
	gw.DeleteErr = errors.New("store down")

	if err := c.Delete(context.Background(), c.Tasks()[0].ID); err == nil {
		t.Fatal("expected error from Delete")
	}
	if len(c.Tasks()) != 1 {
		t.Error("failed delete must not remove the task locally")
	}
}
