package main

import (
	"context"
	"log"
	"os"

	"github.com/andrisk/realhub/internal/buildinfo"
	"github.com/andrisk/realhub/internal/server"
	"github.com/andrisk/realhub/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
