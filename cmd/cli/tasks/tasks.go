package tasks

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util"
	"github.com/bioinformatics-ua/dicoogle-client-go/cmd/util/output"
	"github.com/bioinformatics-ua/dicoogle-client-go/pkg/apimodels"
)

func NewCmd() *cobra.Command {
	tasksCmd := &cobra.Command{
		Use:   "tasks",
		Short: "Observe and control the server's asynchronous tasks.",
	}
	tasksCmd.AddCommand(newListCmd())
	tasksCmd.AddCommand(newCloseCmd())
	tasksCmd.AddCommand(newStopCmd())
	return tasksCmd
}

var taskColumns = []output.TableColumn[apimodels.TaskInfo]{
	{
		ColumnConfig: table.ColumnConfig{Name: "UID"},
		Value:        func(t apimodels.TaskInfo) string { return t.TaskUID },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Name", WidthMax: 60},
		Value:        func(t apimodels.TaskInfo) string { return t.TaskName },
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Progress"},
		Value: func(t apimodels.TaskInfo) string {
			if t.TaskProgress < 0 {
				return "unknown"
			}
			return fmt.Sprintf("%.0f%%", t.TaskProgress*100)
		},
	},
	{
		ColumnConfig: table.ColumnConfig{Name: "Complete"},
		Value:        func(t apimodels.TaskInfo) string { return strconv.FormatBool(t.Complete) },
	},
}

func newListCmd() *cobra.Command {
	var outputOpts output.OutputOptions
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the visible tasks.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			resp, err := c.Tasks().List(cmd.Context())
			if err != nil {
				return err
			}
			return output.Output(cmd, taskColumns, outputOpts, resp.Tasks)
		},
	}
	output.AddFlags(listCmd, &outputOpts, output.TableFormat)
	return listCmd
}

func newCloseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "close [uid]",
		Short: "Remove a completed task from the list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			return c.Tasks().Close(cmd.Context(), args[0])
		},
	}
}

func newStopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stop [uid]",
		Short: "Request cancellation of a running task.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := util.GetAPIClient(cmd)
			if err != nil {
				return err
			}
			return c.Tasks().Stop(cmd.Context(), args[0])
		},
	}
}
