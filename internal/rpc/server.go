package rpc

import (
	"log/slog"

	middleware "github.com/vmkteam/zenrpc-middleware"
	"github.com/vmkteam/zenrpc/v2"

	"github.com/stvmedia/media-portal/internal/portal"
)

func New(logger *slog.Logger, manager *portal.Manager) *zenrpc.Server {
	rpcService := NewMediaService(manager)
	rpcServer := zenrpc.NewServer(zenrpc.Options{ExposeSMD: true})
	rpcServer.Register("media", rpcService)
	rpcServer.Use(middleware.WithSLog(logger.InfoContext, "media-portal", nil))

	return rpcServer
}
