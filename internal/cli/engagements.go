package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"hubspot-cli/internal/format"
	"hubspot-cli/internal/hubspot"
)

var (
	notesFlags     listFlags
	tasksFlags     listFlags
	taskFlags      outputFlags
	taskProperties string
	createTask     hubspot.TaskInput

	notesCmd = &cobra.Command{
		Use:   "notes <objectType> <id>",
		Short: "List notes attached to a contact, company, deal, or ticket",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			notes, err := client.ListNotes(cmd.Context(), args[0], args[1], notesFlags.options())
			if err != nil {
				return err
			}
			printPage(&notesFlags.outputFlags, &hubspot.Page{Results: notes}, format.NoteColumns)
			return nil
		},
	}

	noteCreateCmd = &cobra.Command{
		Use:   "note-create <objectType> <id> <body>",
		Short: "Create a note attached to a contact, company, deal, or ticket",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.CreateNote(cmd.Context(), args[0], args[1], args[2])
			if err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Println(green("Note created!"))
			fmt.Printf("ID: %s\n", record.ID)
			return nil
		},
	}

	tasksCmd = &cobra.Command{
		Use:   "tasks",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			page, err := client.ListTasks(cmd.Context(), tasksFlags.options())
			if err != nil {
				return err
			}
			printPage(&tasksFlags.outputFlags, page, format.TaskColumns)
			return nil
		},
	}

	taskCmd = &cobra.Command{
		Use:   "task <id>",
		Short: "Show a task by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.GetTask(cmd.Context(), args[0], splitProps(taskProperties))
			if err != nil {
				return err
			}
			printRecord(&taskFlags, record)
			return nil
		},
	}

	taskCreateCmd = &cobra.Command{
		Use:   "task-create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			if createTask.Subject == "" {
				return fmt.Errorf("--subject is required")
			}
			client, err := apiClient()
			if err != nil {
				return err
			}
			record, err := client.CreateTask(cmd.Context(), createTask)
			if err != nil {
				return err
			}
			green := color.New(color.FgGreen).SprintFunc()
			fmt.Println(green("Task created!"))
			fmt.Printf("ID: %s\n", record.ID)
			return nil
		},
	}
)

func initEngagementCommands() {
	addListFlags(notesCmd, &notesFlags)
	addListFlags(tasksCmd, &tasksFlags)
	addOutputFlags(taskCmd, &taskFlags)
	taskCmd.Flags().StringVar(&taskProperties, "properties", "", "Comma-separated properties to fetch")

	taskCreateCmd.Flags().StringVar(&createTask.Subject, "subject", "", "Task subject (required)")
	taskCreateCmd.Flags().StringVar(&createTask.Body, "body", "", "Task body")
	taskCreateCmd.Flags().StringVar(&createTask.DueDate, "due", "", "Due date (YYYY-MM-DD)")
	taskCreateCmd.Flags().StringVar(&createTask.Priority, "priority", "", "Priority (LOW, MEDIUM, HIGH)")
	taskCreateCmd.Flags().StringVar(&createTask.Status, "status", "", "Status (NOT_STARTED, IN_PROGRESS, COMPLETED)")

	RootCmd.AddCommand(notesCmd)
	RootCmd.AddCommand(noteCreateCmd)
	RootCmd.AddCommand(tasksCmd)
	RootCmd.AddCommand(taskCmd)
	RootCmd.AddCommand(taskCreateCmd)
}
