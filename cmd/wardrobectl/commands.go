package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ghuser/wardrobe/migrations"
	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/migrator"
	catsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	outfitsvcs "github.com/ghuser/wardrobe/services/outfit/application/services"
	outfitmodels "github.com/ghuser/wardrobe/services/outfit/domain/models"
	remsvcs "github.com/ghuser/wardrobe/services/reminder/application/services"
	taxsvcs "github.com/ghuser/wardrobe/services/taxonomy/application/services"
	usersvcs "github.com/ghuser/wardrobe/services/user/application/services"
)

// migrateCommands lists the goose commands exposed by "migrate".
var migrateCommands = []string{"up", "down", "status", "reset", "version"}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "wardrobectl",
		Short:         "Administer the wardrobe database and reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newMigrateCmd(), newSeedCmd(), newRemindCmd())
	return root
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate {up|down|status|reset|version}",
		Short:     "Apply or inspect the embedded schema migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: migrateCommands,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			return migrator.Run(cmd.Context(), cfg.DatabaseURL, migrations.FS, args[0])
		},
	}
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed <username>",
		Short: "Install the default taxonomy values and locations for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(s *services) error {
				u, err := s.users.Users.GetByUsername(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				if err := s.users.Users.Seed(cmd.Context(), u.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded defaults for %s\n", u.Username)
				return nil
			})
		},
	}
}

func newRemindCmd() *cobra.Command {
	var dryRun bool
	cmd := &cobra.Command{
		Use:   "remind <username> [YYYY-MM-DD]",
		Short: "Send a user's outfit reminder now; the date defaults to today",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withServices(cmd.Context(), func(s *services) error {
				ctx := cmd.Context()
				u, err := s.users.Users.GetByUsername(ctx, args[0])
				if err != nil {
					return err
				}
				date := s.reminders.Reminders.Today()
				if len(args) == 2 {
					if date, err = outfitmodels.ParseDate(args[1]); err != nil {
						return err
					}
				}
				if dryRun {
					msg, err := s.reminders.Reminders.Preview(ctx, u.ID, date)
					if err != nil {
						return err
					}
					return printMessage(cmd.OutOrStdout(), msg.Subject, msg.TextBody)
				}
				if err := s.reminders.Reminders.SendForUser(ctx, u.ID, date); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "reminder for %s sent to %s\n", date, u.Email)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the rendered reminder instead of sending it")
	return cmd
}

type services struct {
	users     *usersvcs.Services
	reminders *remsvcs.Services
}

// withServices opens the database, wires the contexts a command needs and
// closes everything when fn returns. Events and caching stay off.
func withServices(ctx context.Context, fn func(*services) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := logger.New(cfg)

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	a := &app.Application{Config: cfg, Db: pool, Logger: log}
	taxonomy := taxsvcs.New(a)
	catalog := catsvcs.New(a, taxonomy.Options)
	outfits := outfitsvcs.New(a, catalog.Clothing)
	users := usersvcs.New(a, taxonomy.Options, taxonomy.Locations)

	return fn(&services{
		users:     users,
		reminders: remsvcs.New(a, users.Users, outfits.Planner, taxonomy.Locations),
	})
}

func printMessage(w io.Writer, subject, body string) error {
	_, err := fmt.Fprintf(w, "Subject: %s\n\n%s", subject, body)
	return err
}
