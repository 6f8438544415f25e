package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "yup").
		WithSynopsis("yup [opts] command [opts]").
		WithDescription("yup migrates YAML configuration files against newer defaults.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return yupMain(cfg, cc, args)
		}).
		WithSubs(
			UpdateCommand(cfg),
			VersionCommand(cfg))
}

func yupMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func UpdateCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &UpdateConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Update, "update").
		WithAliases("u", "up").
		WithSynopsis("update -s settings.yaml [opts] <user.yaml> <defaults.yaml>").
		WithDescription("update migrates a user document against its defaults document").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return update(cfg, cc, args)
		})
}

func VersionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VersionConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Version, "version").
		WithAliases("v", "ver").
		WithSynopsis("version -s settings.yaml <id> [<id2>]").
		WithDescription("version validates identifiers under the settings' pattern and compares two of them").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return versionCmd(cfg, cc, args)
		})
}
