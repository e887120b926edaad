/*
Command restyle loads an HTML document and stylesheets, runs a restyle pass
and prints the styled entity tree.

	restyle --css theme.css --props color,font-size page.html

Stylesheets embedded in <style> elements of the document are applied before
stylesheets given on the command line.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/npillmayer/restyle/engine"
	"github.com/npillmayer/restyle/engine/enginedbg"
	"github.com/npillmayer/restyle/style"
	"github.com/npillmayer/restyle/style/cssom"
	"github.com/npillmayer/restyle/style/cssom/douceuradapter"
	"github.com/npillmayer/restyle/styledtree"
	"github.com/npillmayer/restyle/tree"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "restyle: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:            "restyle",
		Usage:           "resolve style properties of an HTML document",
		ArgsUsage:       "DOCUMENT",
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{Name: "css", Aliases: []string{"s"}, Usage: "apply stylesheet from `FILE` (repeatable)"},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load engine configuration from `FILE` (YAML)"},
			&cli.StringSliceFlag{Name: "props", Aliases: []string{"p"}, Usage: "print only the properties `KEYS`"},
			&cli.StringFlag{Name: "dot", Usage: "write a GraphViz diagram of the styled tree to `FILE`"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "enable debug logging"},
		},
		Action: run,
	}
}

func newLogger(debug bool) *zap.Logger {
	ec := zap.NewDevelopmentEncoderConfig()
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	ec.TimeKey = zapcore.OmitKey
	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(ec), zapcore.Lock(os.Stderr), level)
	return zap.New(core)
}

func run(ctx context.Context, cmd *cli.Command) (err error) {
	log := newLogger(cmd.Bool("debug"))
	defer func() { _ = log.Sync() }()

	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expecting exactly one DOCUMENT, have %d arguments", cmd.Args().Len())
	}
	cfg := engine.DefaultConfig()
	if name := cmd.String("config"); name != "" {
		if cfg, err = loadConfig(name); err != nil {
			return err
		}
		log.Debug("Configuration loaded", zap.String("file", name))
	}
	cx, err := engine.New(cfg)
	if err != nil {
		return err
	}
	text, err := os.ReadFile(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("unable to read document: %w", err)
	}
	doc, err := styledtree.Parse(cx, string(text))
	if doc == nil {
		return err
	}
	for _, e := range multierr.Errors(err) {
		log.Warn("Problem in document", zap.Error(e))
	}
	rs, err := compileStyles(doc, cmd.StringSlice("css"), log)
	if err != nil {
		return err
	}
	if err = cx.SetRuleSet(rs); err != nil {
		return err
	}
	rep, err := cx.Restyle()
	if err != nil {
		return err
	}
	log.Debug("Restyle done", zap.Int("visited", rep.Visited), zap.Int("full", rep.FullMatches),
		zap.Int("hits", rep.CacheHits), zap.Int("redraws", rep.Redraws))

	ids, err := propertyIDs(cmd.StringSlice("props"))
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.Root().Writer, enginedbg.Dump(cx, ids...))
	if name := cmd.String("dot"); name != "" {
		if err = writeDot(cx, name, ids); err != nil {
			return err
		}
		log.Info("GraphViz diagram written", zap.String("file", name))
	}
	return nil
}

func loadConfig(name string) (engine.Config, error) {
	f, err := os.Open(name)
	if err != nil {
		return engine.Config{}, fmt.Errorf("unable to open configuration: %w", err)
	}
	defer f.Close()
	return engine.LoadConfig(f)
}

// compileStyles collects the stylesheets embedded in the document and the
// ones given as files. Rules with problems are logged and skipped.
func compileStyles(doc *styledtree.Document, files []string, log *zap.Logger) (*cssom.RuleSet, error) {
	var sheets []cssom.StyleSheet
	embedded, err := douceuradapter.ExtractStyleElements(doc.HTMLNode(tree.Root))
	if err != nil {
		return nil, err
	}
	for _, s := range embedded {
		sheets = append(sheets, s)
	}
	for _, name := range files {
		text, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("unable to read stylesheet: %w", err)
		}
		s, err := douceuradapter.Parse(string(text))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		sheets = append(sheets, s)
	}
	rs, err := cssom.Compile(sheets...)
	for _, e := range multierr.Errors(err) {
		log.Warn("Problem in stylesheet", zap.Error(e))
	}
	log.Debug("Stylesheets compiled", zap.Int("sheets", len(sheets)), zap.Int("rules", rs.Len()))
	return rs, nil
}

func propertyIDs(keys []string) ([]style.PropertyID, error) {
	var ids []style.PropertyID
	for _, list := range keys {
		for _, key := range strings.Split(list, ",") {
			key = strings.TrimSpace(key)
			if key == "" {
				continue
			}
			id, ok := style.Lookup(key)
			if !ok {
				return nil, fmt.Errorf("%w: %s", cssom.ErrUnknownProperty, key)
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func writeDot(cx *engine.Context, name string, ids []style.PropertyID) (err error) {
	var f io.WriteCloser
	if f, err = os.Create(name); err != nil {
		return fmt.Errorf("unable to create diagram file: %w", err)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return enginedbg.ToGraphViz(cx, f, ids...)
}
