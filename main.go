package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/admpub/finchart/internal/board"
	"github.com/admpub/finchart/internal/server"
	"github.com/admpub/finchart/internal/watch"
	"github.com/admpub/finchart/pkg/canvas"
	"github.com/admpub/finchart/pkg/config"
	"github.com/admpub/finchart/pkg/dataset"
	"github.com/admpub/log"
	"github.com/admpub/pp"
	"github.com/webx-top/com"
	"golang.org/x/sync/errgroup"
)

// go run . -c ./board.json5 -d file://./data.json5 -w
// go run . -o ./dist/

type arguments struct {
	configPath  string
	datasetURL  string
	addr        string
	outputPath  string
	export      bool
	printData   bool
	watchSource bool
}

func main() {
	args := getCommandLineArgs()

	cfg, err := config.LoadConfig(args.configPath)
	if err != nil {
		log.Fatalf(`failed to load board config %s: %v`, args.configPath, err)
	}
	if err = cfg.ApplyEnv(); err != nil {
		log.Fatalf(`failed to read environment: %v`, err)
	}
	if len(args.datasetURL) > 0 {
		cfg.Dataset = args.datasetURL
	}
	if len(args.addr) > 0 {
		cfg.Addr = args.addr
	}

	source, err := dataset.Open(cfg.Dataset)
	if err != nil {
		log.Fatalf(`unable to open dataset %s: %v`, cfg.Dataset, err)
	}
	b := board.New(cfg, source, canvas.NewEngine())
	if err = b.Mount(); err != nil {
		source.Close()
		log.Fatalf(`unable to build charts: %v`, err)
	}
	defer b.Close()

	if args.printData {
		printBoard(b)
		return
	}
	if args.export {
		output := args.outputPath
		if len(output) == 0 {
			output = cfg.Output
		}
		if err = export(b, output); err != nil {
			log.Error(err)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return server.New(b).ListenAndServe(ctx, cfg.Addr)
	})
	if args.watchSource {
		if fs, ok := source.(dataset.FileSource); ok {
			eg.Go(func() error {
				return watch.Watch(ctx, fs.Path(), func() {
					if err := b.Reload(); err != nil {
						log.Error(err)
						return
					}
					log.Infof(`reloaded %s`, fs.Path())
				})
			})
		} else {
			log.Warnf(`--watch ignored: dataset %s is not a file`, cfg.Dataset)
		}
	}
	if err = eg.Wait(); err != nil {
		log.Error(err)
	}
}

func printBoard(b *board.Board) {
	data, err := b.Dataset()
	if err != nil {
		log.Error(err)
		return
	}
	for _, chart := range b.Config().Charts {
		props, err := board.Props(chart, data)
		if err != nil {
			log.Error(err)
			continue
		}
		pp.Println(chart.ID, props)
	}
}

// outputFile resolves the page file for output and creates its directory.
// A trailing separator or an existing directory means index.html inside it.
func outputFile(output string) (string, error) {
	if len(output) == 0 {
		return ``, errors.New(`output path is empty`)
	}
	dir := filepath.Dir(output)
	switch output[len(output)-1] {
	case '/', '\\':
		dir = output
		output = filepath.Join(output, `index.html`)
	default:
		if com.IsDir(output) {
			return filepath.Join(output, `index.html`), nil
		}
	}
	if err := com.MkdirAll(dir, 0760); err != nil {
		return ``, fmt.Errorf(`failed to create output directory %s: %w`, dir, err)
	}
	return output, nil
}

func export(b *board.Board, output string) error {
	output, err := outputFile(output)
	if err != nil {
		return err
	}
	buf := bytes.NewBuffer(nil)
	if err := server.WritePage(buf, b); err != nil {
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return err
	}
	fmt.Printf("page written to %s\n", output)
	return nil
}

func getCommandLineArgs() (args arguments) {
	for i := 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "-p" || arg == "--print" {
			args.printData = true
			continue
		} else if arg == "-w" || arg == "--watch" {
			args.watchSource = true
			continue
		} else if arg == "-o" || arg == "--output" {
			args.export = true
			continue
		} else if arg == "-c" || arg == "--config" || arg == "-d" || arg == "--dataset" || arg == "-a" || arg == "--addr" {
			// Skip as value will be recorded next iteration
			continue
		} else if i > 1 {
			switch os.Args[i-1] {
			case "-c", "--config":
				args.configPath = arg
				continue
			case "-d", "--dataset":
				args.datasetURL = arg
				continue
			case "-a", "--addr":
				args.addr = arg
				continue
			case "-o", "--output":
				args.outputPath = arg
				continue
			}
		}
		fmt.Printf("unknown argument: %s\n", arg)
	}
	return
}
