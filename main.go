package main

import (
	"context"
	"os/signal"
	"pixreminder/cmd"
	"pixreminder/infra"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	loadingEnv := infra.NewConfig()
	container := infra.NewContainerDI(loadingEnv)

	cmd.StartAPI(ctx, container)
}
