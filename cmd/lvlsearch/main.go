// Command lvlsearch solves the puzzle jobs listed in a YAML job file with
// A* or IDA* and prints one summary row per job.
//
//	lvlsearch -config jobs.yaml
//	lvlsearch -config jobs.yaml -watch -metrics-addr :9090 -v 1
//
// With -watch the job file is re-run on every change until SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/lvlsearch/internal/config"
	"github.com/katalvlaran/lvlsearch/internal/metrics"
)

func main() {
	cfgPath := flag.String("config", "jobs.yaml", "Path to the YAML job file")
	watch := flag.Bool("watch", false, "Re-run the job file whenever it changes")
	metricsAddr := flag.String("metrics-addr", "", "Serve Prometheus metrics on this address (empty disables)")
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})
	flag.Parse()

	code := run(*cfgPath, *watch, *metricsAddr, os.Stdout)
	klog.Flush()
	os.Exit(code)
}

// run returns the process exit code.
func run(cfgPath string, watch bool, metricsAddr string, out io.Writer) int {
	loader, err := config.NewLoader(cfgPath)
	if err != nil {
		klog.Errorf("failed to load job file: %v", err)
		return 2
	}
	cfg := loader.Config()
	if err := config.Validate(cfg); err != nil {
		klog.Errorf("job file validation failed: %v", err)
		return 2
	}

	failed := runAll(cfg, out)
	if !watch {
		if failed > 0 {
			return 1
		}
		return 0
	}

	// ── Metrics endpoint ──────────────────────────────────────────────────────
	var srv *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("GET /metrics", promhttp.Handler())
		srv = &http.Server{
			Addr:         metricsAddr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		}
		go func() {
			klog.Infof("metrics listening on %s", metricsAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				klog.Errorf("metrics server: %v", err)
			}
		}()
	}

	// ── Hot reload ────────────────────────────────────────────────────────────
	loader.OnChange(func(newCfg *config.JobFile) {
		if err := config.Validate(newCfg); err != nil {
			metrics.JobFileReloads.WithLabelValues("invalid").Inc()
			klog.Warningf("reload skipped: job file invalid: %v", err)
			return
		}
		metrics.JobFileReloads.WithLabelValues("ok").Inc()
		klog.Infof("job file reloaded: %d jobs", len(newCfg.Jobs))
		runAll(newCfg, out)
	})
	loader.OnError(func(err error) {
		metrics.JobFileReloads.WithLabelValues("error").Inc()
		klog.Warningf("reload failed, keeping previous jobs: %v", err)
	})
	stopWatch, err := loader.Watch()
	if err != nil {
		klog.Errorf("job file watcher unavailable: %v", err)
		return 2
	}
	defer stopWatch()
	klog.Infof("watching %s", loader.Path())

	// ── Graceful shutdown ─────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	klog.Info("shutting down")

	if srv != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}

	return 0
}
