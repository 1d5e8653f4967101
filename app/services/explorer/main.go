package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ainlabs/explorer/app/services/explorer/handlers"
	"github.com/ainlabs/explorer/business/core/chain"
	"github.com/ainlabs/explorer/business/core/gateway"
	"github.com/ainlabs/explorer/business/core/knowledge"
	"github.com/ainlabs/explorer/business/core/knowledge/graphdb"
	"github.com/ainlabs/explorer/foundation/ainrpc"
	"github.com/ainlabs/explorer/foundation/logger"
	"github.com/ainlabs/explorer/foundation/metrics"
	"github.com/ainlabs/explorer/foundation/nameservice"
	"github.com/ardanlabs/conf/v3"
	"go.uber.org/zap"
)

// build is the git version of this program. It is set using build flags in the makefile.
var build = "develop"

func main() {

	// Construct the application logger.
	log, err := logger.New("EXPLORER")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer log.Sync()

	// Perform the startup and shutdown sequence.
	if err := run(log); err != nil {
		log.Errorw("startup", "ERROR", err)
		log.Sync()
		os.Exit(1)
	}
}

func run(log *zap.SugaredLogger) error {

	// =========================================================================
	// Configuration

	cfg := struct {
		conf.Version
		Web struct {
			ReadTimeout     time.Duration `conf:"default:5s"`
			WriteTimeout    time.Duration `conf:"default:30s"`
			IdleTimeout     time.Duration `conf:"default:120s"`
			ShutdownTimeout time.Duration `conf:"default:20s"`
			APIHost         string        `conf:"default:0.0.0.0:8080"`
			DebugHost       string        `conf:"default:0.0.0.0:7080"`
			CorsOrigin      string        `conf:"default:*"`
		}
		Node struct {
			URL         string        `conf:"default:http://localhost:8081/json-rpc"`
			Timeout     time.Duration `conf:"default:10s"`
			ReuseWindow time.Duration `conf:"default:10s"`
		}
		Graph struct {
			Backend  string `conf:"default:onchain,help:onchain or neo4j"`
			URI      string `conf:"default:bolt://localhost:7687"`
			Username string `conf:"default:neo4j"`
			Password string `conf:"default:neo4j,mask"`
			Database string `conf:"default:neo4j"`
		}
		NameService struct {
			Path string
		}
		Gateway struct {
			Timeout time.Duration `conf:"default:30s"`
		}
	}{
		Version: conf.Version{
			Build: build,
			Desc:  "copyright information here",
		},
	}

	const prefix = "EXPLORER"
	help, err := conf.Parse(prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	// =========================================================================
	// App Starting

	log.Infow("starting service", "version", build)
	defer log.Infow("shutdown complete")

	out, err := conf.String(&cfg)
	if err != nil {
		return fmt.Errorf("generating config for output: %w", err)
	}
	log.Infow("startup", "config", out)

	// =========================================================================
	// Name Service Support

	// The nameservice package provides display name resolution for account
	// addresses, with an optional names document for well-known accounts.
	ns, err := nameservice.New(cfg.NameService.Path)
	if err != nil {
		return fmt.Errorf("unable to load account name service: %w", err)
	}

	for account, name := range ns.Copy() {
		log.Infow("startup", "status", "nameservice", "name", name, "account", account)
	}

	// =========================================================================
	// Core Support

	// The client provides access to the node's JSON-RPC and REST interfaces
	// with a short response reuse window.
	client := ainrpc.New(ainrpc.Config{
		URL:         cfg.Node.URL,
		Timeout:     cfg.Node.Timeout,
		ReuseWindow: cfg.Node.ReuseWindow,
	})

	chainCore := chain.NewCore(log, client, ns)
	knowledgeCore := knowledge.NewCore(log, client, ns)
	gatewayCore := gateway.NewCore(cfg.Gateway.Timeout)

	// The graph backend defaults to materializing from the on-chain
	// key/value snapshots. A graph database can be selected instead; the
	// query contract is identical either way.
	var graph knowledge.Storer = knowledgeCore
	if cfg.Graph.Backend == "neo4j" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		db, err := graphdb.New(ctx, graphdb.Config{
			URI:      cfg.Graph.URI,
			Username: cfg.Graph.Username,
			Password: cfg.Graph.Password,
			Database: cfg.Graph.Database,
		})
		if err != nil {
			return fmt.Errorf("unable to connect graph database: %w", err)
		}
		defer db.Close(context.Background())

		graph = db
		log.Infow("startup", "status", "graph backend", "backend", "neo4j", "uri", cfg.Graph.URI)
	}

	// =========================================================================
	// Start Debug Service

	log.Infow("startup", "status", "debug router started", "host", cfg.Web.DebugHost)

	promMetrics := metrics.New("explorer")

	debugMux := handlers.DebugMux(build, log, promMetrics, client)

	// Start the service listening for debug requests.
	// Not concerned with shutting this down with load shedding.
	go func() {
		if err := http.ListenAndServe(cfg.Web.DebugHost, debugMux); err != nil {
			log.Errorw("shutdown", "status", "debug router closed", "host", cfg.Web.DebugHost, "ERROR", err)
		}
	}()

	// =========================================================================
	// Start API Service

	log.Infow("startup", "status", "initializing V1 API support")

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	apiMux := handlers.PublicMux(handlers.MuxConfig{
		Shutdown:  shutdown,
		Log:       log,
		Metrics:   promMetrics,
		Client:    client,
		Chain:     chainCore,
		Graph:     graph,
		Knowledge: knowledgeCore,
		Gateway:   gatewayCore,
		Origin:    cfg.Web.CorsOrigin,
	})

	api := http.Server{
		Addr:         cfg.Web.APIHost,
		Handler:      apiMux,
		ReadTimeout:  cfg.Web.ReadTimeout,
		WriteTimeout: cfg.Web.WriteTimeout,
		IdleTimeout:  cfg.Web.IdleTimeout,
		ErrorLog:     zap.NewStdLog(log.Desugar()),
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Infow("startup", "status", "api router started", "host", api.Addr)
		serverErrors <- api.ListenAndServe()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Infow("shutdown", "status", "shutdown started", "signal", sig)
		defer log.Infow("shutdown", "status", "shutdown complete", "signal", sig)

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Web.ShutdownTimeout)
		defer cancel()

		// Asking listener to shut down and shed load.
		if err := api.Shutdown(ctx); err != nil {
			api.Close()
			return fmt.Errorf("could not stop service gracefully: %w", err)
		}
	}

	return nil
}
