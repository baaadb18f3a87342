package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"

	"github.com/bodgit/lvimg"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newLogger(c *cli.Context) *log.Logger {
	logger := log.New(ioutil.Discard, "", 0)
	if c.Bool("verbose") {
		logger.SetOutput(c.App.ErrWriter)
	}
	return logger
}

func loadConfig(c *cli.Context) (*lvimg.Config, error) {
	cfg, err := lvimg.LoadConfig(c.String("config"))
	switch {
	case os.IsNotExist(err) && !c.IsSet("config"):
		return lvimg.DefaultConfig(), nil
	case err != nil:
		return nil, err
	}
	return cfg, nil
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "lvimg"
	app.Usage = "LVGL indexed image array utility"
	app.Version = "1.0.0"
	app.Writer = stdout
	app.ErrWriter = stderr

	config := lvimg.DefaultConfigFile
	if cwd, err := os.Getwd(); err == nil {
		config = filepath.Join(cwd, config)
	}

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			EnvVars: []string{"LVIMG_CONFIG"},
			Value:   config,
			Usage:   "path to configuration file",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "invert",
			Usage:       "Swap black and white in an image palette",
			Description: "White palette entries become transparent and black entries become white. The input file is left untouched.",
			ArgsUsage:   "[INPUT [OUTPUT]]",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "all",
					Usage: "invert every map in the file",
				},
				&cli.IntFlag{
					Name:  "colors",
					Usage: "number of palette entries (default from config or 2)",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() > 2 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				cfg, err := loadConfig(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				in, out := cfg.Invert.Input, cfg.Invert.Output
				if c.NArg() > 0 {
					in = c.Args().Get(0)
				}
				if c.NArg() > 1 {
					out = c.Args().Get(1)
				}

				opts := lvimg.InvertOptions{
					Colors: cfg.Invert.Colors,
					All:    c.Bool("all"),
				}
				if c.IsSet("colors") {
					opts.Colors = c.Int("colors")
					if err := lvimg.ValidColors(opts.Colors); err != nil {
						return cli.NewExitError(err, 1)
					}
				}

				if err := lvimg.New(newLogger(c)).InvertFile(in, out, opts); err != nil {
					return cli.NewExitError(err, 1)
				}

				fmt.Fprintf(c.App.Writer, "wrote %s\n", out)

				return nil
			},
		},
		{
			Name:        "frames",
			Usage:       "Generate the dot animation frames as C source",
			Description: "Frames are read from the configuration file, otherwise the two default bongo cat frames are generated.",
			ArgsUsage:   "",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "descriptors",
					Usage: "also emit lv_img_dsc_t descriptors",
				},
			},
			Action: func(c *cli.Context) error {
				cfg, err := loadConfig(c)
				if err != nil {
					return cli.NewExitError(err, 1)
				}

				opts := lvimg.FrameOptions{
					Descriptors: c.Bool("descriptors"),
				}

				if err := lvimg.New(newLogger(c)).GenerateFrames(c.App.Writer, cfg.Frames, opts); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	return app
}

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
