package main

import (
	"io"
	"os"

	"github.com/confkit/yamlup/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor reports whether ad-hoc output (diffs) should be colored.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type UpdateConfig struct {
	*MainConfig

	Settings string `cli:"name=s aliases=settings desc='settings file (yaml)'"`
	Write    bool   `cli:"name=w desc='write the migrated document back in place'"`
	Diff     bool   `cli:"name=diff desc='print a diff of the migration instead of the document'"`
	Patch    bool   `cli:"name=patch desc='print the migration as a JSON merge patch'"`
	Assert   string `cli:"name=assert desc='expression the migrated document must satisfy'"`

	Update *cli.Command
}

type VersionConfig struct {
	*MainConfig

	Settings string `cli:"name=s aliases=settings desc='settings file (yaml)'"`

	Version *cli.Command
}
