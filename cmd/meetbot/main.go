package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/meetbot/internal/cli"
	"github.com/nguyentantai21042004/meetbot/internal/output"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	deps := &cli.Dependencies{Stdout: os.Stdout}
	if err := cli.NewRootCmd(deps).ExecuteContext(context.Background()); err != nil {
		output.NewFormatter(os.Stderr).Error(err.Error())
		os.Exit(1)
	}
}
