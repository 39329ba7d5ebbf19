package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/goserg/cricketboard/internal/config"
	"github.com/goserg/cricketboard/internal/logger"
	"github.com/goserg/cricketboard/internal/prefs"
	"github.com/goserg/cricketboard/internal/profile"
	"github.com/goserg/cricketboard/internal/service"
	"github.com/goserg/cricketboard/internal/storage"
	"github.com/goserg/cricketboard/internal/storage/csvfile"
	"github.com/goserg/cricketboard/internal/storage/sqlite"
	"github.com/goserg/cricketboard/internal/tgbot"
	"github.com/goserg/cricketboard/internal/web"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var (
	serverConfigPath string
	botConfigPath    string

	importCSV    string
	importSQLite string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "cricketboard",
		Short:        "Cricket player profile dashboard with synthetic demo statistics",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&serverConfigPath, "server-config", config.DefaultServerPath, "path to server configs")
	rootCmd.PersistentFlags().StringVar(&botConfigPath, "bot-config", config.DefaultBotPath, "path to bot configs")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newImportCmd())
	rootCmd.AddCommand(newStatsCmd())
	return rootCmd
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server, and the telegram bot when enabled",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func newImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the csv dataset into the sqlite snapshot",
		Args:  cobra.NoArgs,
		RunE:  runImport,
	}
	cmd.Flags().StringVar(&importCSV, "csv", "", "csv file to import (default: data.csv_path)")
	cmd.Flags().StringVar(&importSQLite, "sqlite", "", "sqlite file to write (default: data.sqlite_file)")
	return cmd
}

func newStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <id>",
		Short: "Print the synthetic statistics of one player as json",
		Args:  cobra.ExactArgs(1),
		RunE:  runStats,
	}
}

func setup() (config.Config, *logrus.Logger, error) {
	cfg, err := config.New(serverConfigPath, botConfigPath)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, logger.New(cfg.Server.LogLevel), nil
}

// openSource returns the configured dataset and a func releasing it.
func openSource(cfg config.Data, l *logrus.Logger) (storage.ProfileSource, func(), error) {
	if cfg.Source == config.SourceSQLite {
		st, err := sqlite.New(l, cfg.SQLiteFile)
		if err != nil {
			return nil, nil, err
		}
		return st, func() {
			if err := st.Close(); err != nil {
				l.WithError(err).Error("failed to close sqlite")
			}
		}, nil
	}
	return csvfile.New(cfg.CSVPath, cfg.Separator()), func() {}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	source, closeSource, err := openSource(cfg.Data, l)
	if err != nil {
		return err
	}
	defer closeSource()

	store := profile.NewStore(source, l)
	if _, err := store.Load(ctx); err != nil {
		l.WithError(err).Warn("serving without data")
	}
	playerService := service.New(store, l)

	secret := cfg.Server.Prefs.Secret
	if secret == "" {
		secret = uuid.NewString()
		l.Warn("server.prefs.secret is not set, theme cookies will not survive a restart")
	}
	server, err := web.New(playerService, cfg.Server, prefs.NewCodec(secret, cfg.Server.Prefs.TTL), l)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		bot, err := tgbot.New(playerService, cfg, l)
		if err != nil {
			return err
		}
		go bot.Run(ctx)
		defer bot.Stop()
	}

	serveErr := make(chan error, 1)
	go func() {
		l.WithField("addr", cfg.Server.Host+":"+strconv.Itoa(cfg.Server.Port)).Info("server started")
		serveErr <- server.Serve()
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	l.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	if importCSV == "" {
		importCSV = cfg.Data.CSVPath
	}
	if importSQLite == "" {
		importSQLite = cfg.Data.SQLiteFile
	}
	archive, err := sqlite.New(l, importSQLite)
	if err != nil {
		return err
	}
	defer archive.Close()

	n, err := service.New(profile.NewStore(archive, l), l).
		Import(cmd.Context(), csvfile.New(importCSV, cfg.Data.Separator()), archive)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "imported %d rows from %s into %s\n", n, importCSV, importSQLite)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("player id %q is not an integer", args[0])
	}
	cfg, l, err := setup()
	if err != nil {
		return err
	}
	source, closeSource, err := openSource(cfg.Data, l)
	if err != nil {
		return err
	}
	defer closeSource()

	ps, err := service.New(profile.NewStore(source, l), l).Stats(cmd.Context(), id)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(ps)
}
