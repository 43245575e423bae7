package main

import (
	"os"

	"profitplanner/cmd"

	"go.uber.org/zap"
)

func main() {
	lg := zap.S()
	lg.Infow("starting api", "commitHash", os.Getenv("commit_hash"))

	apiHandler, secrets, err := cmd.InitializeDependencies()
	if err != nil {
		lg.Fatal(err)
	}
	defer cmd.CloseDependencies(apiHandler)

	err = apiHandler.StartApi(secrets.Port)
	if err != nil {
		lg.Fatal(err)
	}
}
