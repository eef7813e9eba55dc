package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/fzft/go-unordered-set/cmd"
	"github.com/fzft/go-unordered-set/log"
)

func main() {
	if err := log.InitLogger(); err != nil {
		os.Exit(1)
	}
	log.Logger.Info("starting", zap.String("build", BuildIDRaw()))
	cli := cmd.NewSetCli()
	if err := cli.Run(GitSHA1(), GitDirty()); err != nil {
		log.Logger.Error("cli exited", zap.Error(err))
		os.Exit(1)
	}
}
