package main

import (
	"github.com/groupfbmap/groupmap/internal/server"
	"github.com/groupfbmap/groupmap/pkg/logging"
	"go.uber.org/zap"
)

func main() {
	logging.Fatal("Map server exited: ", zap.Error(
		server.NewServer().Start(),
	))
}
