package repository

import (
	"database/sql"

	"agroworld/internal/model"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *model.Task) error {
	if task.Category == "" {
		task.Category = model.DefaultTaskCategory
	}

	return r.db.QueryRow(`
		INSERT INTO task(title, description, category)
		VALUES($1, $2, $3)
		RETURNING id, created_at
	`, task.Title, task.Description, task.Category).Scan(&task.ID, &task.CreatedAt)
}

func (r *TaskRepository) List() ([]model.Task, error) {
	rows, err := r.db.Query(`
		SELECT id, title, COALESCE(description, ''), COALESCE(category, ''), is_completed, created_at
		FROM task
		ORDER BY created_at DESC
	`)

	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		var t model.Task
		err := rows.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &t.IsCompleted, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Toggle flips the completion flag and returns the new value. A nil result
// with nil error means the id does not exist.
func (r *TaskRepository) Toggle(id int64) (*bool, error) {
	var completed bool
	err := r.db.QueryRow(`
		UPDATE task SET is_completed = NOT is_completed WHERE id = $1
		RETURNING is_completed
	`, id).Scan(&completed)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return &completed, nil
}

// Delete removes a task by id and reports whether a row was deleted.
func (r *TaskRepository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec(`
		DELETE FROM task WHERE id = $1
	`, id)

	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
