package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"hogger/core/config"
	"hogger/core/database"
	"hogger/core/logger"
	"hogger/core/reconcile"
	"hogger/core/storage"
	"hogger/feature/item"
	"hogger/feature/manifest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// env is what every database command starts from.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	db       *gorm.DB
	registry *reconcile.Registry
}

func setup() (*env, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	registry, err := newRegistry()
	if err != nil {
		return nil, err
	}

	return &env{cfg: cfg, log: l, db: db, registry: registry}, nil
}

func (e *env) close() {
	_ = e.log.Sync()
	_ = database.Close(e.db)
}

// newRegistry registers every entity type this build manages.
func newRegistry() (*reconcile.Registry, error) {
	r := reconcile.NewRegistry()
	if err := item.Register(r); err != nil {
		return nil, err
	}
	return r, nil
}

func factories() map[string]func() reconcile.Entity {
	return item.Factories()
}

// loadDesired reads the manifests named by args, or by the manifest
// configuration when args is empty.
func loadDesired(ctx context.Context, e *env, args []string, fromBucket bool) ([]reconcile.Entity, error) {
	loader := manifest.NewLoader(e.registry, factories(), e.log)

	if fromBucket || e.cfg.Manifest.FromBucket {
		prefix := e.cfg.Manifest.BucketPrefix
		if len(args) > 0 {
			prefix = args[0]
		}
		client, err := storage.NewClient(e.cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to storage: %w", err)
		}
		return loader.LoadBucket(ctx, client, e.cfg.Storage.Bucket, prefix)
	}

	path := e.cfg.Manifest.Path
	if len(args) > 0 {
		path = args[0]
	}
	return loader.LoadPath(path)
}

// confirm prompts for confirmation unless yes is set.
func confirm(in io.Reader, out io.Writer, yes bool, prompt string) bool {
	if yes {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(out, "\n⚠️  %s Type 'yes' to confirm: ", prompt)
	reader := bufio.NewReader(in)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
