package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ksysoev/todo-report/pkg/core"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run prints a TODO report for the file named by the first argument and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "Usage: todo-report <path>")
		return 2
	}

	path := args[0]

	todos, err := core.ReadTodosFromFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %s: %v\n", path, err)
		return 1
	}

	fmt.Fprintln(stdout, core.FormatReport(todos))

	return 0
}
