package cli

import (
	"bufio"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the menu loop needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	AddTask() error
	ViewTasks() error
	UpdateTask() error
	DeleteTask() error
	ToggleTask() error
}

func displayMenu() {
	printlnFn("\n=== Todo App Menu ===")
	printlnFn("1. Add Task")
	printlnFn("2. View Tasks")
	printlnFn("3. Update Task")
	printlnFn("4. Delete Task")
	printlnFn("5. Toggle Task Completion")
	printlnFn("6. Exit")
	printlnFn()
}

// runMenu drives the interactive loop: it shows the numbered menu, reads the
// user's choice from reader and dispatches to methods on 'a'. Unknown options
// are reported back to the user. The loop exits on EOF or option 6.
//
// Errors returned by command handlers are ignored here; handlers report
// problems to the user themselves. The only errors they return are input
// stream failures, which the next read surfaces as EOF anyway.
func runMenu(a execIface, reader *bufio.Reader) {
	for {
		displayMenu()
		printlnFn("Enter your choice:")

		line, err := reader.ReadString('\n')
		choice := strings.TrimSpace(line)
		if err != nil && choice == "" {
			return
		}

		switch choice {
		case "1":
			_ = a.AddTask()
		case "2":
			_ = a.ViewTasks()
		case "3":
			_ = a.UpdateTask()
		case "4":
			_ = a.DeleteTask()
		case "5":
			_ = a.ToggleTask()
		case "6":
			printlnFn("Goodbye!")
			return
		default:
			printlnFn("Invalid option. Please try again.")
		}

		if err != nil {
			return
		}
	}
}
