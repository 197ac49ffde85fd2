package main

import (
	"fmt"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mxpv/pledgesync/pkg/config"
)

type Server struct {
	http.Server
}

func NewServer(cfg *config.Config, handler http.Handler) *Server {
	bindAddress := cfg.Server.BindAddress
	if bindAddress == "*" {
		bindAddress = ""
	}

	srv := Server{}

	srv.Addr = fmt.Sprintf("%s:%d", bindAddress, cfg.Server.Port)
	srv.Handler = handler
	srv.ReadHeaderTimeout = 10 * time.Second
	log.Debugf("using address: %s", srv.Addr)

	return &srv
}
