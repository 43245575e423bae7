package main

import (
	"os"

	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		zap.S().Error(err)
		os.Exit(1)
	}
}
