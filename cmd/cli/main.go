package main

import (
	"context"
	"log"
	"os"

	"github.com/avetrov/qaboard/internal/buildinfo"
	"github.com/avetrov/qaboard/internal/client/cli"
	"github.com/avetrov/qaboard/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
