package main

import (
	"os"

	"dueday/config"
	"dueday/helper"
	"dueday/shared/logger"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var actions = []struct {
	name  string
	short string
}{
	{helper.ActionUp, "Apply all pending migrations"},
	{helper.ActionDown, "Roll back every applied migration"},
	{helper.ActionStepUp, "Apply the next pending migration"},
	{helper.ActionDrop, "Drop everything in the database"},
}

func newRootCommand(cfg *config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the dueday Postgres schema",
		SilenceUsage: true,
	}

	for _, action := range actions {
		root.AddCommand(&cobra.Command{
			Use:   action.name,
			Short: action.short,
			Args:  cobra.NoArgs,
			RunE: func(_ *cobra.Command, _ []string) error {
				return helper.Runner(cfg, action.name) //nolint:wrapcheck
			},
		})
	}

	return root
}

func main() {
	cfg := config.Get()
	logger.InitLogger(cfg)

	if err := newRootCommand(cfg).Execute(); err != nil {
		log.Error().Err(err).Msg("migration failed")
		os.Exit(1)
	}
}
