package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"depot/internal/domain"
)

func insertCmd() *cobra.Command {
	var country string

	cmd := &cobra.Command{
		Use:   "insert [name]",
		Short: "Store an employee record",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			if name == "" {
				name = uuid.NewString()
				logger.Debug("no name given, generated one", zap.String("name", name))
			}

			var err error
			if country != "" {
				err = appCtx.RemoteWriter.Insert(domain.RemoteEmployee{
					Employee: domain.Employee{Name: name},
					Country:  country,
				})
			} else {
				err = appCtx.Employees.Insert(domain.Employee{Name: name})
			}
			if err != nil {
				return err
			}

			logger.Info("record inserted", zap.String("id", name))
			fmt.Fprintf(cmd.OutOrStdout(), "Inserted %q.\n", name)
			return nil
		},
	}

	cmd.Flags().StringVar(&country, "country", "", "store as a remote employee working from this country")
	return cmd
}
