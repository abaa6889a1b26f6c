package main

import (
	"log"
	"os"

	"discussion/cmd"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "discussion",
		Usage: "Threaded comment service",
		Flags: append([]cli.Flag{
			&cli.StringSliceFlag{
				Name:  "env-file",
				Usage: "Env files to load before reading configuration",
				Value: cli.NewStringSlice(".env"),
			},
		}, cmd.ServeFlags()...),
		Commands: []*cli.Command{
			cmd.ServeCommand(),
			cmd.MigrateCommand(),
			cmd.SeedCommand(),
		},
		Action: cmd.Serve,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
