package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL drives. The real App type
// satisfies it; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Filter(ctx context.Context, args []string) error
	New(ctx context.Context) error
	Select(ctx context.Context, args []string) error
	Set(ctx context.Context, args []string) error
	Show(ctx context.Context) error
	Save(ctx context.Context) error
	Remove(ctx context.Context, args []string) error
}

const helpText = `Available commands:
  (l)ist                            show the displayed customers
  filter <all|name|email> [text]    change the filter, no arguments clears it
  new                               start editing a new customer
  select <n>                        edit customer n
  set <field> <value>               first, last, email, discount or removable
  show                              show the edited customer
  save                              save the edited customer
  remove <n>                        remove customer n
  exit | quit                       leave the program`

// runREPL reads commands line by line and dispatches them to a. A failing
// command prints its error and the loop goes on. The loop exits on EOF, on
// "exit" or "quit", or when ctx is cancelled.
func runREPL(ctx context.Context, a execIface, promptFn func() string, in io.Reader) {
	scanner := bufio.NewScanner(in)
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("%s> ", promptFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "l", "list":
			err = a.List(ctx)
		case "filter":
			err = a.Filter(ctx, args)
		case "new":
			err = a.New(ctx)
		case "select":
			err = a.Select(ctx, args)
		case "set":
			err = a.Set(ctx, args)
		case "show":
			err = a.Show(ctx)
		case "save":
			err = a.Save(ctx)
		case "remove":
			err = a.Remove(ctx, args)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
