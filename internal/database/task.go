package database

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/akyairhashvil/teamboard/internal/config"
	"github.com/akyairhashvil/teamboard/internal/models"
)

// newID returns a short random identifier with the given prefix.
func newID(prefix string) string {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return prefix + "-" + time.Now().Format("20060102150405")
	}
	return prefix + "-" + hex.EncodeToString(buf)
}

// GetTasks returns all tasks in creation order.
func (d *Database) GetTasks(ctx context.Context) ([]models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	rows, err := d.DB.QueryContext(ctx, `
		SELECT id, project_id, title, status, created_at, completed_at
		FROM tasks
		ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, wrapTaskErr("list", "", err)
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		var t models.Task
		var completedAt sql.NullTime
		if err := rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Status, &t.CreatedAt, &completedAt); err != nil {
			return nil, wrapTaskErr("scan", "", err)
		}
		if completedAt.Valid {
			at := completedAt.Time
			t.CompletedAt = &at
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// AddTask inserts a new task in the default status and returns it.
func (d *Database) AddTask(ctx context.Context, projectID, title string) (models.Task, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	title = strings.TrimSpace(title)
	// Cap by runes, not bytes, matching the input field's CharLimit.
	if r := []rune(title); len(r) > config.MaxTitleLength {
		title = string(r[:config.MaxTitleLength])
	}
	task := models.Task{
		ID:        newID("x"),
		ProjectID: projectID,
		Title:     title,
		Status:    string(models.StatusTodo),
		CreatedAt: time.Now().UTC(),
	}
	_, err := d.DB.ExecContext(ctx,
		"INSERT INTO tasks (id, project_id, title, status, created_at) VALUES (?, ?, ?, ?, ?)",
		task.ID, task.ProjectID, task.Title, task.Status, task.CreatedAt)
	if err != nil {
		return models.Task{}, wrapTaskErr("insert", task.ID, err)
	}
	return task, nil
}

// UpdateTaskStatus sets the task's status identifier.
func (d *Database) UpdateTaskStatus(ctx context.Context, taskID string, status string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, "UPDATE tasks SET status = ? WHERE id = ?", status, taskID)
	if err != nil {
		return wrapTaskErr("update status", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrapTaskErr("update status", taskID, ErrNotFound)
	}
	return nil
}

// SetTaskCompleted stamps or clears the completion timestamp. The
// status identifier is left alone; status and timestamp are independent
// completion signals.
func (d *Database) SetTaskCompleted(ctx context.Context, taskID string, completed bool) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	var res sql.Result
	var err error
	if completed {
		res, err = d.DB.ExecContext(ctx,
			"UPDATE tasks SET completed_at = ? WHERE id = ?", time.Now().UTC(), taskID)
	} else {
		res, err = d.DB.ExecContext(ctx,
			"UPDATE tasks SET completed_at = NULL WHERE id = ?", taskID)
	}
	if err != nil {
		return wrapTaskErr("set completed", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrapTaskErr("set completed", taskID, ErrNotFound)
	}
	return nil
}

// DeleteTask removes a task.
func (d *Database) DeleteTask(ctx context.Context, taskID string) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	res, err := d.DB.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", taskID)
	if err != nil {
		return wrapTaskErr("delete", taskID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return wrapTaskErr("delete", taskID, ErrNotFound)
	}
	return nil
}
