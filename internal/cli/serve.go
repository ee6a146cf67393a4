package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/mtkb13/framegen/pkg/cache"
	"github.com/mtkb13/framegen/pkg/httpapi"
	"github.com/mtkb13/framegen/pkg/store"
)

const shutdownTimeout = 10 * time.Second

// serveOpts holds the command-line flags for the serve command.
type serveOpts struct {
	addr    string // listen address
	redis   string // Redis address for the response cache, empty for file cache
	mongo   string // MongoDB URI for model storage, empty for in-memory
	noCache bool   // disable response caching entirely
}

// newServeCmd creates the serve command, which runs the HTTP API.
// Models are stored in memory unless --mongo points at a MongoDB
// instance, and responses are cached on disk unless --redis selects a
// shared Redis cache.
func newServeCmd() *cobra.Command {
	opts := serveOpts{addr: ":8080"}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), &opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", opts.addr, "listen address")
	cmd.Flags().StringVar(&opts.redis, "redis", "", "Redis address for the response cache")
	cmd.Flags().StringVar(&opts.mongo, "mongo", "", "MongoDB URI for model storage")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable response caching")

	return cmd
}

// runServe wires the storage and cache backends, then runs the server
// until the context is canceled.
func runServe(ctx context.Context, opts *serveOpts) error {
	logger := loggerFromContext(ctx)

	st, err := newStore(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := st.Close(closeCtx); err != nil {
			logger.Errorf("Closing store: %s", err)
		}
	}()

	c, err := newServeCache(ctx, opts)
	if err != nil {
		return err
	}
	defer c.Close()

	api := httpapi.NewServer(st, c, logger)
	srv := &http.Server{
		Addr:              opts.addr,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Infof("Listening on %s", opts.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newStore selects the model storage backend: MongoDB when --mongo is
// set, in-memory otherwise.
func newStore(ctx context.Context, opts *serveOpts) (store.Store, error) {
	if opts.mongo == "" {
		return store.NewMemoryStore(), nil
	}
	return store.NewMongoStore(ctx, store.MongoConfig{URI: opts.mongo})
}

// newServeCache selects the response cache backend: Redis when --redis
// is set, the on-disk cache otherwise.
func newServeCache(ctx context.Context, opts *serveOpts) (cache.Cache, error) {
	if opts.noCache {
		return cache.NewNullCache(), nil
	}
	if opts.redis != "" {
		return cache.NewRedisCache(ctx, opts.redis)
	}
	return newCache(false), nil
}
