package main

import (
	"github.com/dmitrijs2005/taskkeeper/internal/cli"
)

func main() {
	app := cli.NewApp()
	app.Run()
}
