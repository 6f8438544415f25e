package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/confkit/yamlup"
	"github.com/confkit/yamlup/encode"
	"github.com/confkit/yamlup/ir"
	"github.com/confkit/yamlup/updater"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/expr-lang/expr"
	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func update(cfg *UpdateConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Update.Parse(cc, args)
	if err != nil {
		cfg.Update.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: update takes a user document and a defaults document", cli.ErrUsage)
	}
	settings := updater.DefaultSettings()
	if cfg.Settings != "" {
		settings, err = updater.LoadSettingsFile(cfg.Settings)
		if err != nil {
			return err
		}
	}
	doc, err := yamlup.LoadFile(args[0], args[1], settings)
	if err != nil {
		return err
	}

	before := doc.Root.Clone()
	beforeText, err := encode.String(before)
	if err != nil {
		return err
	}

	if err := doc.Update(); err != nil {
		return err
	}
	afterText, err := encode.String(doc.Root)
	if err != nil {
		return err
	}

	if cfg.Assert != "" {
		if err := assertDoc(cfg.Assert, doc.Root); err != nil {
			return err
		}
	}
	if cfg.Write {
		if err := os.WriteFile(args[0], []byte(afterText), 0644); err != nil {
			return err
		}
	}
	switch {
	case cfg.Patch:
		return writeMergePatch(cc.Out, before, doc.Root)
	case cfg.Diff:
		return writeDiff(cfg.MainConfig, cc.Out, beforeText, afterText)
	case cfg.Write:
		return nil
	default:
		return encode.Encode(doc.Root, cc.Out, cfg.encOpts(cc.Out)...)
	}
}

// assertDoc evaluates a post-condition expression over the migrated
// document, with the document's keys as the environment.
func assertDoc(src string, root *ir.Node) error {
	env, ok := ir.ToAny(root).(map[string]any)
	if !ok {
		return fmt.Errorf("assert needs a section document root")
	}
	out, err := expr.Eval(src, env)
	if err != nil {
		return fmt.Errorf("assert %q: %w", src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return fmt.Errorf("assert %q: got %T, want bool", src, out)
	}
	if !b {
		return fmt.Errorf("assert %q: failed: %w", src, cli.ExitCodeErr(1))
	}
	return nil
}

// writeMergePatch reports the migration as a JSON merge patch between
// the document before and after.
func writeMergePatch(w io.Writer, before, after *ir.Node) error {
	bJSON, err := json.Marshal(ir.ToAny(before))
	if err != nil {
		return err
	}
	aJSON, err := json.Marshal(ir.ToAny(after))
	if err != nil {
		return err
	}
	patch, err := jsonpatch.CreateMergePatch(bJSON, aJSON)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n", patch)
	return err
}

func writeDiff(cfg *MainConfig, w io.Writer, before, after string) error {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	diffs = dmp.DiffCleanupSemantic(diffs)
	colored := cfg.useColor(w)
	for _, d := range diffs {
		text := d.Text
		switch d.Type {
		case diffpatch.DiffInsert:
			if colored {
				text = color.GreenString("%s", text)
			} else {
				text = "{+" + text + "+}"
			}
		case diffpatch.DiffDelete:
			if colored {
				text = color.RedString("%s", text)
			} else {
				text = "[-" + text + "-]"
			}
		}
		if _, err := io.WriteString(w, text); err != nil {
			return err
		}
	}
	return nil
}
