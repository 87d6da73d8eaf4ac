package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/DataBiosphere/toil/appliance"
	"github.com/DataBiosphere/toil/appliance/packaging/dockerfile"
	"github.com/goccy/go-yaml"
	"github.com/moby/buildkit/util/bklog"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "toil-dockerfile",
		Usage: "Generate the Dockerfile for the Toil appliance image",
		Description: `Reads the appliance configuration from the environment and prints the
appliance Dockerfile.

Environment:
  ` + appliance.EnvApplianceSelf + `     image reference the appliance uses to refer to itself (required)
  ` + appliance.EnvSdistName + `        file name of the Toil sdist to install (required)
  ` + appliance.EnvPythonVersion + `    Python version to build for, e.g. 3.9
  ` + appliance.EnvPython + `            interpreter probed when no version is given (default ` + appliance.DefaultPythonCommand + `)`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write the Dockerfile to `FILE` instead of stdout",
			},
			&cli.StringFlag{
				Name:  "python-version",
				Usage: "Python `VERSION` to build for, overrides " + appliance.EnvPythonVersion,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: logrus.WarnLevel.String(),
				Usage: "log `LEVEL` (debug, info, warn, error)",
			},
		},
		Before: setupLogging,
		Action: generate,
		Commands: []*cli.Command{
			{
				Name:  "values",
				Usage: "Print the values substituted into the Dockerfile",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: formatYAML,
						Usage: "output `FORMAT` (yaml, json)",
					},
				},
				Action: printValues,
			},
		},
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	lvl, err := logrus.ParseLevel(cmd.String("log-level"))
	if err != nil {
		return ctx, errors.Wrap(err, "invalid log level")
	}
	bklog.L.Logger.SetLevel(lvl)
	return ctx, nil
}

func resolve(ctx context.Context, cmd *cli.Command) (*appliance.Values, error) {
	cfg, err := appliance.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}

	if v := cmd.String("python-version"); v != "" {
		cfg.PythonVersion = v
	}

	return appliance.Resolve(ctx, cfg)
}

func generate(ctx context.Context, cmd *cli.Command) error {
	v, err := resolve(ctx, cmd)
	if err != nil {
		return err
	}

	dt, err := dockerfile.Render(v)
	if err != nil {
		return err
	}

	bklog.G(ctx).WithFields(logrus.Fields{
		"python": v.Python,
		"sdist":  v.SdistName,
		"self":   v.ApplianceSelf,
	}).Info("generated appliance Dockerfile")

	return writeOutput(cmd.Root().Writer, cmd.String("output"), dt)
}

func writeOutput(stdout io.Writer, p string, dt []byte) error {
	if p == "" || p == "-" {
		_, err := stdout.Write(dt)
		return errors.Wrap(err, "error writing Dockerfile")
	}

	if err := os.WriteFile(p, dt, 0o644); err != nil {
		return errors.Wrapf(err, "error writing Dockerfile to %s", p)
	}
	return nil
}

func printValues(ctx context.Context, cmd *cli.Command) error {
	v, err := resolve(ctx, cmd)
	if err != nil {
		return err
	}

	var dt []byte
	switch f := cmd.String("format"); f {
	case formatYAML:
		dt, err = yaml.Marshal(v)
	case formatJSON:
		dt, err = json.MarshalIndent(v, "", "  ")
		dt = append(dt, '\n')
	default:
		return errors.Errorf("unknown format %q", f)
	}
	if err != nil {
		return errors.Wrap(err, "error marshalling values")
	}

	_, err = io.Copy(cmd.Root().Writer, bytes.NewReader(dt))
	return err
}
