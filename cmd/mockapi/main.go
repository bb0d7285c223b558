package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/lexmentor/lexclient/pkg/logging"
	"github.com/lexmentor/lexclient/pkg/mockapi"
	"github.com/lexmentor/lexclient/pkg/version"
)

func main() {
	addr := flag.String("addr", "127.0.0.1:8000", "HTTP bind address")
	logLevel := flag.String("log-level", "info", "Log level: "+logging.LevelNames())
	logFormat := flag.String("log-format", "text", "Log format: text or json")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("mockapi " + version.Full())
		return
	}

	if err := logging.Setup(logging.Options{
		Level:  *logLevel,
		Format: *logFormat,
		Output: os.Stdout,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "invalid logging config: %v\n", err)
		os.Exit(1)
	}

	srv := mockapi.New()
	slog.Info("mock backend listening", "addr", *addr)
	if err := http.ListenAndServe(*addr, srv.Handler()); err != nil {
		slog.Error("serve", "err", err)
		os.Exit(1)
	}
}
