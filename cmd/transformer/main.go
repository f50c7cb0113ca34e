package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"crawler-console/internal/ingestion"
	ingestionMemory "crawler-console/internal/ingestion/repository/memory"
	ingestionUsecase "crawler-console/internal/ingestion/usecase"
	"crawler-console/internal/model"
	"crawler-console/internal/normalize"
	"crawler-console/internal/transform"
	transformUsecase "crawler-console/internal/transform/usecase"
	"crawler-console/pkg/log"
)

type options struct {
	input       string
	format      string
	output      string
	concurrency int
	collision   string
	logLevel    string
}

func parseFlags(args []string) (options, error) {
	var opts options
	flags := pflag.NewFlagSet("transformer", pflag.ContinueOnError)
	flags.StringVarP(&opts.input, "input", "i", "", "directory holding crawler .json/.csv exports")
	flags.StringVarP(&opts.format, "format", "f", string(model.FormatJSON), "output format: json or csv")
	flags.StringVarP(&opts.output, "output", "o", "", "archive path (defaults to the generated archive name)")
	flags.IntVar(&opts.concurrency, "concurrency", ingestion.DefaultMaxConcurrency, "files parsed at once")
	flags.StringVar(&opts.collision, "collision-policy", string(transform.CollisionSuffix), "suffix or overwrite")
	flags.StringVar(&opts.logLevel, "log-level", log.LevelWarn, "debug, info, warn or error")
	if err := flags.Parse(args); err != nil {
		return opts, err
	}
	if opts.input == "" {
		return opts, errors.New("--input is required")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.Init(log.ZapConfig{
		Level:    opts.logLevel,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, logger, opts, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run ingests every export under opts.input, transforms all of them in path
// order and writes the archive.
func run(ctx context.Context, l log.Logger, opts options, out io.Writer) error {
	format, ok := model.ParseFormat(opts.format)
	if !ok {
		return fmt.Errorf("unsupported format %q", opts.format)
	}

	inputs, err := collect(opts.input)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no .json or .csv files under %s", opts.input)
	}

	ingestUC := ingestionUsecase.New(l, ingestionMemory.New(), nil, ingestion.Config{
		MaxConcurrency: opts.concurrency,
	})
	batch := ingestUC.IngestBatch(ctx, inputs)
	for _, f := range batch.Failures {
		fmt.Fprintf(out, "skip %s: %v\n", f.Path, f.Err)
	}
	if len(batch.Files) == 0 {
		return errors.New("no file could be ingested")
	}
	sort.Slice(batch.Files, func(i, j int) bool {
		return batch.Files[i].Path < batch.Files[j].Path
	})

	transformUC := transformUsecase.New(l, normalize.New(), nil, nil, transform.Config{
		CollisionPolicy: transform.CollisionPolicy(opts.collision),
	})
	res, err := transformUC.Transform(ctx, transform.TransformInput{
		Files:  batch.Files,
		Format: format,
	}, func(p transform.Progress) {
		fmt.Fprintf(out, "[%3.0f%%] %d/%d %s\n", p.Percent, p.Completed, p.Total, p.CurrentFile)
	})
	if err != nil {
		return err
	}

	dst := opts.output
	if dst == "" {
		dst = res.ArchiveName
	}
	if err := os.WriteFile(dst, res.Archive, 0o644); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	fmt.Fprintf(out, "wrote %s (%d files)\n", dst, len(res.Results))
	return nil
}

// collect lists every supported export under root. Paths are slash
// separated and start with root's own directory name, which often names the
// platform. Files are opened only when a worker parses them.
func collect(root string) ([]ingestion.IngestInput, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", root, err)
	}
	base := filepath.Base(abs)

	var inputs []ingestion.IngestInput
	err = filepath.WalkDir(abs, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(p)) {
		case ".json", ".csv":
		default:
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(abs, p)
		if err != nil {
			return err
		}
		inputs = append(inputs, ingestion.IngestInput{
			Name: d.Name(),
			Path: path.Join(base, filepath.ToSlash(rel)),
			Size: info.Size(),
			Open: func() (io.ReadCloser, error) {
				return os.Open(p)
			},
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	return inputs, nil
}
