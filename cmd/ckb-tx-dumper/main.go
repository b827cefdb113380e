package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/bundle"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/chain"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dump"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/metrics"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type DumpOptions struct {
	Binary         string `long:"bin" env:"CKB_DUMP_BIN" description:"script binary under test" required:"true"`
	BinaryDir      string `long:"bin-dir" env:"CKB_DUMP_BIN_DIR" description:"directory of deployed binaries to reference instead of embedding"`
	GroupIndex     int    `long:"group-index" env:"CKB_DUMP_GROUP_INDEX" description:"script group to replay, in verification order" default:"0"`
	Debugger       string `long:"debugger" env:"CKB_DUMP_DEBUGGER" description:"debugger executable named in the command" default:"ckb-debugger"`
	GDBListen      string `long:"gdb-listen" env:"CKB_DUMP_GDB_LISTEN" description:"start the debugger as a gdb server on this address (not with --script-hash)"`
	OmitBinaryData bool   `long:"omit-bin-data" env:"CKB_DUMP_OMIT_BIN_DATA" description:"blank cell deps whose data is the binary under test"`
	ScriptHash     bool   `long:"script-hash" env:"CKB_DUMP_SCRIPT_HASH" description:"emit the --script-hash command form for older debuggers"`
	MetricsFile    string `long:"metrics-file" env:"CKB_DUMP_METRICS_FILE" description:"write metrics in textfile collector format on exit"`
}

type dumpCommand struct {
	DumpOptions
	Bundle string `long:"bundle" env:"CKB_DUMP_BUNDLE" description:"resolved transaction bundle" required:"true"`
	Output string `long:"output" env:"CKB_DUMP_OUTPUT" description:"mock transaction document to write" required:"true"`
}

type batchCommand struct {
	DumpOptions
	OutputDir string `long:"output-dir" env:"CKB_DUMP_OUTPUT_DIR" description:"directory receiving one document per bundle" required:"true"`
	Workers   int    `long:"workers" env:"CKB_DUMP_WORKERS" description:"concurrent dumps" default:"4"`
	RPS       int    `long:"rps" env:"CKB_DUMP_RPS" description:"max dumps started per second, 0 for no limit" default:"0"`
	Args      struct {
		Bundles []string `positional-arg-name:"BUNDLE" required:"1"`
	} `positional-args:"yes"`
}

type config struct {
	Dump  dumpCommand  `command:"dump" description:"dump one resolved transaction and print its debugger command"`
	Batch batchCommand `command:"batch" description:"dump many resolved transactions concurrently"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	var (
		opts DumpOptions
		rerr error
	)
	switch parser.Active.Name {
	case "dump":
		opts = cfg.Dump.DumpOptions
		rerr = runDump(cfg.Dump, logger)
	case "batch":
		opts = cfg.Batch.DumpOptions
		rerr = runBatch(ctx, cfg.Batch, logger)
	}
	writeMetrics(opts.MetricsFile, logger)
	if rerr != nil {
		logger.Fatal("ckb transaction dumper failed", zap.Error(rerr))
	}
}

func newService(opts DumpOptions, logger *zap.Logger) (*dump.Service, error) {
	mode := "cell_index"
	if opts.ScriptHash {
		mode = "script_hash"
	}
	return dump.NewService(dump.Options{
		BinaryPath:     opts.Binary,
		BinaryDir:      opts.BinaryDir,
		GroupIndex:     opts.GroupIndex,
		DebuggerPath:   opts.Debugger,
		DebugListen:    opts.GDBListen,
		OmitBinaryData: opts.OmitBinaryData,
		ScriptHash:     opts.ScriptHash,
	}, chain.MemCellData{}, metrics.NewDumper(mode), logger.Named("dump"))
}

func runDump(cmd dumpCommand, logger *zap.Logger) error {
	b, err := bundle.Load(cmd.Bundle)
	if err != nil {
		return err
	}
	svc, err := newService(cmd.DumpOptions, logger)
	if err != nil {
		return fmt.Errorf("init dump service: %w", err)
	}
	res, err := svc.Dump(dump.Request{
		Transaction: b.Transaction,
		Headers:     b.Headers,
		OutputPath:  cmd.Output,
	})
	if err != nil {
		return err
	}
	fmt.Println(res.Command)
	return nil
}

func runBatch(ctx context.Context, cmd batchCommand, logger *zap.Logger) error {
	if err := os.MkdirAll(cmd.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	svc, err := newService(cmd.DumpOptions, logger)
	if err != nil {
		return fmt.Errorf("init dump service: %w", err)
	}
	runner, err := dump.NewBatchRunner(svc, bundle.Loader{}, metrics.NewBatch(), cmd.Workers, cmd.RPS, logger.Named("batch"))
	if err != nil {
		return fmt.Errorf("init batch runner: %w", err)
	}

	jobs := make([]dump.Job, 0, len(cmd.Args.Bundles))
	for _, path := range cmd.Args.Bundles {
		jobs = append(jobs, dump.Job{BundlePath: path, OutputPath: outputFor(cmd.OutputDir, path)})
	}
	results, err := runner.Run(ctx, jobs)
	for _, r := range results {
		if r.Err == nil {
			fmt.Printf("%s\t%s\n", r.Job.BundlePath, r.Result.Command)
		}
	}
	return err
}

// outputFor names the document for a bundle: tx.json becomes <dir>/tx.mock.json.
func outputFor(dir, bundlePath string) string {
	base := filepath.Base(bundlePath)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+".mock.json")
}

func writeMetrics(path string, logger *zap.Logger) {
	if path == "" {
		return
	}
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		logger.Error("failed to write metrics file", zap.String("path", path), zap.Error(err))
	}
}
