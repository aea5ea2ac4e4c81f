package compose

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssel/config"
	"cssel/state"
)

// Run implements the compose subcommand.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compose")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no document has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}
	if cmd.Args().Len() > 1 {
		log.Warn("Mailformed command line, too many documents", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	dst := cmd.String("to")
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}

	format := env.Cfg.Compose.Format
	if cmd.IsSet("format") {
		if format, err = config.ParseEmitFmt(cmd.String("format")); err != nil {
			log.Warn("Unknown output format requested, keeping configured one", zap.Stringer("format", env.Cfg.Compose.Format), zap.Error(err))
			format = env.Cfg.Compose.Format
		}
	}

	order := env.Cfg.Compose.Sort
	if cmd.IsSet("sort") {
		if order, err = config.ParseSortMode(cmd.String("sort")); err != nil {
			log.Warn("Unknown sort mode requested, keeping configured one", zap.Stringer("sort", env.Cfg.Compose.Sort), zap.Error(err))
			order = env.Cfg.Compose.Sort
		}
	}

	annotate := env.Cfg.Compose.Annotate
	if cmd.IsSet("annotate") {
		annotate = cmd.Bool("annotate")
	}

	log.Info("Processing starting", zap.String("document", src), zap.String("destination", dst), zap.Stringer("format", format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, format, annotate, order, log)
}

// Check implements the check subcommand. It loads and builds everything the
// way compose does and writes nothing.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	state.EnvFromContext(ctx).CheckOnly = true
	return Run(ctx, cmd)
}

// process handles the core composition logic independently of CLI framework.
func process(ctx context.Context, src, dst string, format config.EmitFmt, annotate bool, order config.SortMode, log *zap.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Composition starting", zap.String("from", src))
	defer func(start time.Time) {
		log.Info("Composition completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
	}(time.Now())

	if env.Rpt != nil {
		if err := env.Rpt.StoreCopy(filepath.Base(src), src); err != nil {
			log.Warn("Unable to store document in the report", zap.String("file", src), zap.Error(err))
		}
	}

	doc, err := Load(src, log)
	if err != nil {
		return fmt.Errorf("unable to load document (%s): %w", src, err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("document.txt", []byte(doc.String()))
	}

	built, err := Build(doc)
	if err != nil {
		return fmt.Errorf("unable to build selectors (%s): %w", src, err)
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("selectors.txt", []byte(dumpBuilt(built)))
	}

	if env.CheckOnly {
		log.Info("Document is valid", zap.String("document", src), zap.Int("selectors", len(built)))
		return nil
	}

	data, err := Render(doc.ID, built, format, annotate, order)
	if err != nil {
		return fmt.Errorf("unable to render selectors: %w", err)
	}

	outputName = buildOutputPath(src, dst, format, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := os.WriteFile(outputName, data, 0644); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Rpt != nil {
		env.Rpt.Store("result"+filepath.Ext(outputName), outputName)
	}
	return nil
}
