package cli

import (
	"errors"
	"fmt"
	"strconv"
)

const msgInvalidTaskID = "Invalid task ID"

// readTaskID prompts for a task ID. A line that does not parse as an integer
// is reported to the user; ok is false and no error is returned.
func (a *App) readTaskID(prompt string) (id int, ok bool, err error) {
	line, err := readLine(a.reader, prompt, a.out)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(line)
	if convErr != nil {
		printlnFn(msgInvalidTaskID)
		return 0, false, nil
	}
	return id, true, nil
}

func (a *App) AddTask() error {
	title, err := readLine(a.reader, "Enter task title: ", a.out)
	if err != nil {
		return err
	}
	if title == "" {
		printlnFn("Task title cannot be empty")
		return nil
	}

	description, err := readLine(a.reader, "Enter task description (optional): ", a.out)
	if err != nil {
		return err
	}

	id, err := a.service.Add(title, description)
	if err != nil {
		printlnFn(err.Error())
		return nil
	}
	printlnFn(fmt.Sprintf("Task added successfully with ID %d", id))
	return nil
}

func (a *App) ViewTasks() error {
	tasks := a.service.List()
	if len(tasks) == 0 {
		printlnFn("No tasks found")
		return nil
	}
	for _, t := range tasks {
		printlnFn(fmt.Sprintf("ID: %d | Title: %s | Description: %s | Completed: %t",
			t.ID, t.Title, t.Description, t.Completed))
	}
	return nil
}

func (a *App) UpdateTask() error {
	id, ok, err := a.readTaskID("Enter task ID to update: ")
	if err != nil || !ok {
		return err
	}
	if _, err := a.service.Get(id); err != nil {
		printlnFn(msgInvalidTaskID)
		return nil
	}

	title, err := readLine(a.reader, "Enter new title (leave empty to keep current): ", a.out)
	if err != nil {
		return err
	}
	description, err := readLine(a.reader, "Enter new description (leave empty to keep current): ", a.out)
	if err != nil {
		return err
	}

	var newTitle, newDescription *string
	if title != "" {
		newTitle = &title
	}
	if description != "" {
		newDescription = &description
	}

	if err := a.service.Update(id, newTitle, newDescription); err != nil {
		if errors.Is(err, ErrTaskNotFound) {
			printlnFn(msgInvalidTaskID)
		} else {
			printlnFn(err.Error())
		}
		return nil
	}
	printlnFn(fmt.Sprintf("Task %d updated successfully", id))
	return nil
}

func (a *App) DeleteTask() error {
	id, ok, err := a.readTaskID("Enter task ID to delete: ")
	if err != nil || !ok {
		return err
	}

	if err := a.service.Delete(id); err != nil {
		printlnFn(msgInvalidTaskID)
		return nil
	}
	printlnFn(fmt.Sprintf("Task %d deleted successfully", id))
	return nil
}

func (a *App) ToggleTask() error {
	id, ok, err := a.readTaskID("Enter task ID to toggle: ")
	if err != nil || !ok {
		return err
	}

	completed, err := a.service.Toggle(id)
	if err != nil {
		printlnFn(msgInvalidTaskID)
		return nil
	}
	if completed {
		printlnFn(fmt.Sprintf("Task %d marked as Completed", id))
	} else {
		printlnFn(fmt.Sprintf("Task %d marked as Incomplete", id))
	}
	return nil
}
