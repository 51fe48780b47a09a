package main

import (
	"github.com/spf13/cobra"

	"github.com/SAP-F-2025/curriculum-interview/internal/cache"
	"github.com/SAP-F-2025/curriculum-interview/pkg"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `migrate applies the session table schema and then drops cached sessions,
so no server reads a blob written against the previous schema.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := pkg.InitDatabase(cfg)
		if err != nil {
			return err
		}
		if err := pkg.AutoMigrate(db); err != nil {
			return err
		}
		logger.Info("Database migrated")

		if skip, _ := cmd.Flags().GetBool("keep-cache"); skip {
			return nil
		}
		sessionCache, closeCache := openCache(cmd.Context(), cfg, logger)
		defer closeCache()
		if sessionCache == nil {
			return nil
		}
		if err := cache.FlushSessions(cmd.Context(), sessionCache); err != nil {
			return err
		}
		logger.Info("Session cache flushed")
		return nil
	},
}

func init() {
	migrateCmd.Flags().Bool("keep-cache", false, "Leave cached sessions in redis after migrating")
}
