package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"depot/internal/domain"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print every stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := appCtx.Employees.GetAll()
			if err != nil {
				return err
			}
			return printAll(cmd, employees)
		},
	}
}

func printAll(cmd *cobra.Command, employees []domain.Employee) error {
	for _, employee := range employees {
		b, err := json.Marshal(employee)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d record(s).\n", len(employees))
	return nil
}
