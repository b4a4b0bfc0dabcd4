package commands

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yshengliao/routemap/config"
	"github.com/yshengliao/routemap/manifest"
	"github.com/yshengliao/routemap/router"
)

func newRoutesCmd() *cobra.Command {
	var (
		configPath   string
		manifestPath string
		strict       bool
		watch        bool
	)

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Resolve a route manifest and print the table",
		Long: `Resolve every controller method in the manifest into routes and
error bindings, then print the resulting table. With --watch the
manifest is re-resolved whenever the file changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			if err := config.NewLoader().WithYAMLFile(configPath).WithDotEnvFile(".env").Load(cfg); err != nil {
				return err
			}
			if manifestPath != "" {
				cfg.Manifest.Path = manifestPath
			}
			if strict {
				cfg.Router.StrictBindings = true
			}

			logger, err := cfg.BuildLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if err := resolveAndRender(cmd.OutOrStdout(), cfg, logger); err != nil {
				if !watch {
					return err
				}
				logger.Error("manifest resolution failed", zap.Error(err))
			}
			if !watch {
				return nil
			}
			return watchManifest(cmd.OutOrStdout(), cfg, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "config file path")
	cmd.Flags().StringVarP(&manifestPath, "manifest", "m", "", "route manifest path (overrides config)")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject ambiguous or conflicting error bindings")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-resolve when the manifest changes")

	return cmd
}

// resolveTable runs the one-shot build phase: load the manifest, feed
// every method through the builder, publish the table.
func resolveTable(cfg *config.Config, logger *zap.Logger) (*router.Table, error) {
	f, err := manifest.Load(cfg.Manifest.Path)
	if err != nil {
		return nil, err
	}

	opts := []router.BuilderOption{router.WithLogger(logger)}
	if cfg.Router.StrictBindings {
		opts = append(opts, router.WithStrictBindings())
	}

	table := router.NewTable()
	if err := f.Apply(router.NewBuilder(table, opts...)); err != nil {
		return nil, err
	}
	table.Publish()
	return table, nil
}

func resolveAndRender(w io.Writer, cfg *config.Config, logger *zap.Logger) error {
	table, err := resolveTable(cfg, logger)
	if err != nil {
		return err
	}
	renderTable(w, table)
	return nil
}

// renderTable prints routes and error bindings in insertion order.
func renderTable(w io.Writer, table *router.Table) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	fmt.Fprintln(tw, "VERB\tURI\tTARGET\tCONSUMES\tPRODUCES")
	for _, route := range table.Routes() {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			route.Verb(),
			route.URI(),
			route.Target(),
			joinMediaTypes(route.ConsumedTypes()),
			joinMediaTypes(route.ProducedTypes()))
	}

	bindings := table.ErrorBindings()
	if len(bindings) > 0 {
		fmt.Fprintln(tw, "\nKIND\tSCOPE\tBINDS\tTARGET")
		for _, b := range bindings {
			scope := b.OriginatingType
			if b.Global {
				scope = "global"
			}
			binds := b.Exception
			if b.Kind == router.StatusBinding {
				binds = fmt.Sprintf("%d", b.Status)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", b.Kind, scope, binds, b.Target)
		}
	}

	tw.Flush()
}

func joinMediaTypes(types []router.MediaType) string {
	if len(types) == 0 {
		return "-"
	}
	names := make([]string, len(types))
	for i, mt := range types {
		names[i] = mt.Name
	}
	return strings.Join(names, ",")
}

// watchManifest re-resolves the manifest on every write until the
// process is interrupted. Events are debounced because editors fire
// several of them per save.
func watchManifest(w io.Writer, cfg *config.Config, logger *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace files on save, which drops
	// a watch held on the file itself.
	dir := filepath.Dir(cfg.Manifest.Path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("watching manifest", zap.String("path", cfg.Manifest.Path))

	const debounce = 300 * time.Millisecond
	var debounceTimer *time.Timer
	rebuilt := make(chan struct{}, 1)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfg.Manifest.Path) {
				continue
			}
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounce, func() {
				select {
				case rebuilt <- struct{}{}:
				default:
				}
			})

		case <-rebuilt:
			logger.Info("manifest changed, re-resolving", zap.String("path", cfg.Manifest.Path))
			if err := resolveAndRender(w, cfg, logger); err != nil {
				logger.Error("manifest resolution failed", zap.Error(err))
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))

		case <-sigChan:
			return nil
		}
	}
}
