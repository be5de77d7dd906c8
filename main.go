package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/net/netutil"

	"linkguard/internal/cache"
	"linkguard/internal/classifier"
	"linkguard/internal/config"
	"linkguard/internal/handler"
	"linkguard/internal/idcodec"
	"linkguard/internal/metrics"
	custommiddleware "linkguard/internal/middleware"
	"linkguard/internal/repository"
	"linkguard/internal/service"
	"linkguard/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(ctx, logger); err != nil {
		logger.Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	repo, err := repository.NewURLRepository(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	codec, err := idcodec.New()
	if err != nil {
		return fmt.Errorf("failed to create id codec: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	tel := telemetry.NewProvider(reg)

	recorder := metrics.NewRecorder(repo.Pool(), &cfg.Metrics, logger)
	recorder.Start(ctx)
	defer recorder.Close()

	remote, err := classifier.NewRemoteClient(cfg.Classifier.URL, cfg.Classifier.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create classifier client: %w", err)
	}

	var verdictCache *cache.VerdictCache
	var classifierCache classifier.VerdictCache
	if cfg.Cache.Enabled {
		verdictCache, err = cache.New(cfg.Cache.MaxSizePow2)
		if err != nil {
			return fmt.Errorf("failed to create cache: %w", err)
		}
		defer verdictCache.Close()
		classifierCache = verdictCache
	}

	classifierSvc := classifier.NewService(
		remote,
		classifier.NewKeywordHeuristic(cfg.Classifier.FallbackKeywords),
		classifierCache,
		tel,
		logger,
	)

	go collectInfraMetrics(ctx, recorder, repo, verdictCache)

	pipeline := service.NewPipeline(repo, classifierSvc, &cfg.Ingest, tel, recorder, tel.Tracer, logger)
	urlService := service.NewURLService(repo, classifierSvc, pipeline, codec, &cfg.List, &cfg.Ingest, recorder, logger)
	h := handler.New(urlService, classifierSvc, logger, recorder)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.MaxRequestBodySize))
	e.Use(custommiddleware.RequestID())
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(custommiddleware.Metrics(recorder, "/metrics", "/api/v1/health"))

	h.Register(e)
	e.GET("/metrics", echo.WrapHandler(tel.Handler()))

	httpAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", httpAddr),
		slog.String("classifier_url", cfg.Classifier.URL),
		slog.Int("batch_size", cfg.Ingest.BatchSize),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	httpListener, err := listen(httpAddr, cfg.Server.MaxConnections)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}

	httpServer := newServer(e)
	go serve(httpServer, httpListener, logger, "http")

	var httpsServer *http.Server
	if cfg.TLS.Enabled {
		httpsAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.TLS.Port)
		logger.Info("starting HTTPS server", slog.String("addr", httpsAddr))

		cert, err := tls.LoadX509KeyPair(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		if err != nil {
			return fmt.Errorf("failed to load TLS certificate: %w", err)
		}

		httpsListener, err := listen(httpsAddr, cfg.Server.MaxConnections)
		if err != nil {
			return fmt.Errorf("failed to create HTTPS listener: %w", err)
		}

		tlsListener := tls.NewListener(httpsListener, &tls.Config{
			MinVersion:   tls.VersionTLS13,
			Certificates: []tls.Certificate{cert},
		})

		httpsServer = newServer(e)
		go serve(httpsServer, tlsListener, logger, "https")
	}

	<-ctx.Done()
	logger.Info("shutting down servers")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	if httpsServer != nil {
		if err := httpsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("https server shutdown failed: %w", err)
		}
	}

	return nil
}

func listen(addr string, maxConns int) (net.Listener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	if maxConns > 0 {
		l = netutil.LimitListener(l, maxConns)
	}
	return l, nil
}

// newServer allows for slow bulk requests: a bulk call classifies every
// new link before it answers.
func newServer(h http.Handler) *http.Server {
	return &http.Server{
		Handler:        h,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   5 * time.Minute,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14, // 16KB
	}
}

func serve(srv *http.Server, l net.Listener, logger *slog.Logger, name string) {
	if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", slog.String("server", name), slog.String("error", err.Error()))
	}
}

func collectInfraMetrics(ctx context.Context, recorder *metrics.Recorder, repo *repository.URLRepository, verdicts *cache.VerdictCache) {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poolStat := repo.Pool().Stat()

			var hits, misses uint64
			var ratio float64
			if verdicts != nil {
				hits, misses, ratio = verdicts.Stats()
			}

			var memStats runtime.MemStats
			runtime.ReadMemStats(&memStats)

			recorder.RecordInfra(metrics.InfraMetric{
				Time:          time.Now(),
				PoolAcquired:  int(poolStat.AcquiredConns()),
				PoolIdle:      int(poolStat.IdleConns()),
				PoolTotal:     int(poolStat.TotalConns()),
				PoolMax:       int(poolStat.MaxConns()),
				CacheHits:     int64(hits),
				CacheMisses:   int64(misses),
				CacheHitRatio: ratio,
				Goroutines:    runtime.NumGoroutine(),
				HeapAllocMB:   float64(memStats.HeapAlloc) / 1024 / 1024,
			})
		}
	}
}
