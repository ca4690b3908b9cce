package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"taketurns/internal/cmd"
)

func main() {
	log.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	log.SetLevel(log.InfoLevel)

	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
