package main

import (
	"context"
	"os"

	"ats-api/cmd/commands"

	"github.com/sirupsen/logrus"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.WithError(err).Error("atsd failed")
		os.Exit(1)
	}
}
