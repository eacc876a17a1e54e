package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/influencer-match-api/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the database tables that do not exist yet",
	RunE: func(cmd *cobra.Command, _ []string) error {
		application, err := loadApp(cmd.Context())
		if err != nil {
			return err
		}
		defer application.Close()

		return migration.Migrate(cmd.Context(), application.Conn)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
