package main

import (
	"fmt"
	"io"

	"github.com/confkit/yamlup/updater"

	"github.com/scott-cotton/cli"
)

func versionCmd(cfg *VersionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Version.Parse(cc, args)
	if err != nil {
		cfg.Version.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Settings == "" {
		return fmt.Errorf("%w: version requires -s settings.yaml", cli.ErrUsage)
	}
	settings, err := updater.LoadSettingsFile(cfg.Settings)
	if err != nil {
		return err
	}
	if settings.Versioning == nil {
		return fmt.Errorf("%s declares no version pattern", cfg.Settings)
	}
	pattern := settings.Versioning.Pattern()

	switch len(args) {
	case 1:
		v, err := pattern.Parse(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", v.ID())
		return err
	case 2:
		a, err := pattern.Parse(args[0])
		if err != nil {
			return err
		}
		b, err := pattern.Parse(args[1])
		if err != nil {
			return err
		}
		return writeCompared(cc.Out, a.Compare(b))
	default:
		return fmt.Errorf("%w: version takes one or two identifiers", cli.ErrUsage)
	}
}

func writeCompared(w io.Writer, c int) error {
	var s string
	switch {
	case c < 0:
		s = "less"
	case c > 0:
		s = "greater"
	default:
		s = "equal"
	}
	_, err := io.WriteString(w, s+"\n")
	return err
}
