package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"depot/internal/domain"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Insert sample records and print the full listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, employee := range []domain.Employee{{Name: "Arthur"}, {Name: "Mei"}} {
				if err := appCtx.Employees.Insert(employee); err != nil {
					return err
				}
			}

			// Karen goes in twice under the same id: first as a remote
			// employee through the narrowed writer, then as a plain one.
			// The second insert wins.
			karen := domain.RemoteEmployee{Employee: domain.Employee{Name: "Karen"}, Country: "Usa"}
			if err := appCtx.RemoteWriter.Insert(karen); err != nil {
				return err
			}
			if err := appCtx.Employees.Insert(domain.Employee{Name: "Karen"}); err != nil {
				return err
			}

			// A separate RemoteEmployee store, read back through the widened
			// employee reader.
			priya := domain.RemoteEmployee{Employee: domain.Employee{Name: "Priya"}, Country: "India"}
			if err := appCtx.Remotes.Insert(priya); err != nil {
				return err
			}

			employees, err := appCtx.Employees.GetAll()
			if err != nil {
				return err
			}
			logger.Debug("employee store listed", zap.Int("count", len(employees)))

			fmt.Fprintln(cmd.OutOrStdout(), "Employees:")
			if err := printAll(cmd, employees); err != nil {
				return err
			}

			asEmployees := domain.ReadAs(domain.Reader[domain.RemoteEmployee](appCtx.Remotes), domain.RemoteEmployee.AsEmployee)
			widened, err := asEmployees.GetAll()
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Remote employees, read as employees:")
			return printAll(cmd, widened)
		},
	}
}
