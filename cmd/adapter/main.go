package main

import (
	"context"
	"errors"
	"housemate-alexa/internal/adapters/input/http"
	"housemate-alexa/internal/adapters/input/ssdp"
	"housemate-alexa/internal/adapters/output/config"
	"housemate-alexa/internal/adapters/output/housemate"
	"housemate-alexa/internal/adapters/output/metrics"
	"housemate-alexa/internal/domain/service"
	"housemate-alexa/internal/logging"
	"log"
	"net"
	nethttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	configPath := "config.json"
	if os.Getenv("CONFIG_PATH") != "" {
		configPath = os.Getenv("CONFIG_PATH")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewViperConfigRepository(configPath).Get(ctx)
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	logger, err := logging.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer logger.Sync()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewPrometheusRecorder(reg)
	if err != nil {
		logger.Fatalw("Metrics registration failed", "error", err)
	}

	backends := housemate.NewFactory(cfg.Backend, logger)
	router := service.NewRouter(backends, logger, service.WithRecorder(recorder))

	options := []http.ServerOption{http.WithMetrics(reg)}
	if cfg.Bridge.Enabled {
		ip := cfg.Bridge.LocalIP
		if ip == "" {
			ip = getLocalIP()
		}
		if ip == "" {
			logger.Fatal("Could not determine local IP. Set HOUSEMATE_BRIDGE_LOCAL_IP.")
		}
		port := listenPort(cfg.HTTP.Addr)

		hue := service.NewHueService(backends.ForToken(cfg.Bridge.Token), logger)
		options = append(options, http.WithBridge(hue, ip, port))

		ssdpServer := ssdp.NewServer(ip, port, logger)
		go func() {
			if err := ssdpServer.Start(ctx); err != nil {
				logger.Errorw("SSDP server error", "error", err)
			}
		}()
		logger.Infow("Local bridge enabled", "ip", ip, "port", port)
	}

	srv := http.NewServer(router, logger, options...).NewHTTPServer(cfg.HTTP.Addr)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Infow("HTTP server listening", "addr", cfg.HTTP.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, nethttp.ErrServerClosed) {
		logger.Fatalw("HTTP server failed", "error", err)
	}
	logger.Info("Shutdown complete")
}

func listenPort(addr string) int {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return 80
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return 80
	}
	return port
}

func getLocalIP() string {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return ""
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() {
			if ipnet.IP.To4() != nil {
				return ipnet.IP.String()
			}
		}
	}
	return ""
}
