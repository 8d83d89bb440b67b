package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var log = logrus.New()

func main() {
	app := &cli.App{
		Name:  "bleadv",
		Usage: "build and inspect BLE advertising channel PDUs",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging on stderr",
			},
		},
		Before: func(c *cli.Context) error {
			log.SetOutput(os.Stderr)
			if c.Bool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			buildCommand,
			headerCommand,
			channelsCommand,
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
