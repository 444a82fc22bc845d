package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hearthdash/hearth/errors"
	"github.com/hearthdash/hearth/widgets"
)

// NewTodoCmd creates the todo management command group.
func NewTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage the todo list from the command line",
	}
	cmd.AddCommand(newTodoAddCmd(), newTodoListCmd(), newTodoDoneCmd(), newTodoRmCmd())
	return cmd
}

func newTodoAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			todos, err := widgets.LoadTodos(st)
			if err != nil {
				return err
			}
			item, err := todos.Add(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("Added: %s\n", item.Text)
			return nil
		},
	}
}

func newTodoListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			todos, err := widgets.LoadTodos(st)
			if err != nil {
				return err
			}

			items := todos.Items()
			if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
				data, err := json.MarshalIndent(items, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}

			if len(items) == 0 {
				fmt.Println("Nothing to do.")
				return nil
			}
			done := color.New(color.Faint, color.CrossedOut)
			for i, t := range items {
				if t.Completed {
					fmt.Printf("%2d. [x] ", i+1)
					_, _ = done.Println(t.Text)
				} else {
					fmt.Printf("%2d. [ ] %s\n", i+1, t.Text)
				}
			}
			fmt.Printf("%d remaining\n", todos.Remaining())
			return nil
		},
	}
}

// resolveTodo maps a 1-based list position to the todo at that position.
func resolveTodo(todos *widgets.TodoList, arg string) (widgets.Todo, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(todos.Items()) {
		return widgets.Todo{}, errors.New(errors.ErrCodeInvalidInput, "no todo at position "+arg)
	}
	return todos.Items()[n-1], nil
}

func newTodoDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <number>",
		Short: "Toggle a todo's completion by its list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			todos, err := widgets.LoadTodos(st)
			if err != nil {
				return err
			}
			item, err := resolveTodo(todos, args[0])
			if err != nil {
				return err
			}
			return todos.Toggle(item.ID)
		},
	}
}

func newTodoRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <number>",
		Short: "Delete a todo by its list position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, st, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			todos, err := widgets.LoadTodos(st)
			if err != nil {
				return err
			}
			item, err := resolveTodo(todos, args[0])
			if err != nil {
				return err
			}
			return todos.Delete(item.ID)
		},
	}
}
