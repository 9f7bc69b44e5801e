package cli

import (
	"bufio"
	"io"
	"os"
)

type App struct {
	service *TaskService
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp() *App {
	return &App{
		service: NewTaskService(),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
}

func (a *App) Run() {
	runMenu(a, a.reader)
}
