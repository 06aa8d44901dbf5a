package daemon

import (
	"context"
	"errors"
	"io/fs"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/notecalc/notecalc/pkg/config"
	"github.com/notecalc/notecalc/pkg/utils/listenaddr"
)

var conf *config.File

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.POST("/calculate", calculate)
	router.GET("/config", getConfig)
	router.GET("/explain", getExplain)
	router.GET("/version", getVersion)
	router.GET("/healthz", getHealthz)

	return router
}

// ErrAlreadyRunning is returned when another daemon serves the socket.
var ErrAlreadyRunning = errors.New("daemon already running")

// removeStaleSocket unlinks a unix socket left behind by a daemon that is no
// longer running. A socket that still accepts connections is left alone.
func removeStaleSocket(address string) error {
	conn, err := net.Dial("unix", address)
	if err == nil {
		_ = conn.Close()
		return pkgerrors.Wrapf(ErrAlreadyRunning, "%s is in use", address)
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case errors.Is(err, syscall.ECONNREFUSED):
		logrus.Infof("removing stale socket %s", address)
		if err := os.Remove(address); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return pkgerrors.Wrapf(err, "failed to remove stale socket %s", address)
		}
		return nil
	}
	return pkgerrors.Wrapf(err, "failed to probe socket %s", address)
}

// listen opens the daemon socket.
func listen(addr string, allowNonRoot bool) (net.Listener, error) {
	network, address, err := listenaddr.Parse(addr)
	if err != nil {
		return nil, err
	}

	if network == "unix" {
		if err := removeStaleSocket(address); err != nil {
			return nil, err
		}
	}

	l, err := net.Listen(network, address)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to listen on %s", addr)
	}

	if network == "unix" && allowNonRoot {
		logrus.Infof("non-root access is allowed, changing permissions of %s to 0777", address)
		if err := os.Chmod(address, 0777); err != nil {
			_ = l.Close()
			return nil, pkgerrors.Wrapf(err, "failed to chmod %s", address)
		}
	}

	return l, nil
}

// Run serves the calculator until SIGINT or SIGTERM. listenOverride, when
// not empty, takes precedence over the configured address.
func Run(configPath string, listenOverride string, allowNonRoot bool) error {
	var err error
	conf, err = config.NewFile(configPath)
	if err != nil {
		return pkgerrors.Wrap(err, "failed to parse config during startup")
	}
	logrus.WithFields(conf.LogrusFields()).Infof("config loaded")

	router := setupRoutes()

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			err := conf.Load()
			if err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.WithFields(conf.LogrusFields()).Infof("config reloaded")
		}
	}()

	addr := conf.Listen()
	if listenOverride != "" {
		addr = listenOverride
	}

	l, err := listen(addr, conf.AllowNonRootAccess() || allowNonRoot)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigc:
		logrus.Infof("caught signal \"%s\": shutting down.", sig)
	case err := <-errc:
		return pkgerrors.Wrap(err, "http server failed")
	}

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}

	logrus.Info("exiting")
	return nil
}
