package dump

import (
	"errors"
	"os"
	"time"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/chain"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/debugger"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/mocktx"
	"go.uber.org/zap"
)

// Options select the script group to replay and how the document refers to its binary.
type Options struct {
	BinaryPath string
	// BinaryDir, when set, is scanned for files whose size matches embedded cell dep data.
	BinaryDir    string
	GroupIndex   int
	DebuggerPath string
	DebugListen  string
	// OmitBinaryData blanks cell deps carrying the binary under test.
	OmitBinaryData bool
	// ScriptHash emits the --script-hash command form.
	ScriptHash bool
}

// Request is one resolved transaction to dump.
type Request struct {
	Transaction *model.ResolvedTransaction
	Headers     HeaderProvider
	// Groups defaults to the groups collected from Transaction.
	Groups     debugger.GroupSource
	OutputPath string
}

// Result is a completed dump.
type Result struct {
	TxHash      model.Hash
	Command     string
	Substituted int
}

type Service struct {
	opts    Options
	cells   CellDataProvider
	metrics Metrics
	logger  *zap.Logger
}

func NewService(opts Options, cells CellDataProvider, metrics Metrics, logger *zap.Logger) (*Service, error) {
	if metrics == nil {
		return nil, errors.New("dump metrics is required")
	}
	if opts.BinaryPath == "" {
		return nil, errors.New("binary path is required")
	}
	if opts.ScriptHash && opts.DebugListen != "" {
		return nil, errors.New("gdb listen address is not supported with the script hash command form")
	}
	if cells == nil {
		cells = chain.MemCellData{}
	}
	return &Service{
		opts:    opts,
		cells:   cells,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Dump writes the mock transaction document to req.OutputPath and returns the debugger command
// replaying the configured script group. Nothing is written unless every stage succeeds.
func (s *Service) Dump(req Request) (res *Result, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveDump(err, started)
	}()

	if req.Transaction == nil {
		return nil, dumperr.Newf(dumperr.StageBuild, dumperr.ErrLookup, "resolved transaction is required")
	}
	if req.OutputPath == "" {
		return nil, dumperr.Newf(dumperr.StageWrite, dumperr.ErrIO, "output path is required")
	}
	logger := s.logger.With(zap.String("output", req.OutputPath))

	var mtx *mocktx.MockTransaction
	if err = s.stage(logger, dumperr.StageBuild, func() (err error) {
		mtx, err = BuildSnapshot(req.Transaction, s.cells, req.Headers)
		return err
	}); err != nil {
		return nil, err
	}
	logger = logger.With(zap.Stringer("tx_hash", mtx.TxHash))

	var doc *document.Document
	if err = s.stage(logger, dumperr.StageEncode, func() (err error) {
		opts, err := s.renderOptions()
		if err != nil {
			return err
		}
		doc, err = Render(mtx, opts)
		return err
	}); err != nil {
		return nil, err
	}

	substituted := 0
	if s.opts.BinaryDir != "" {
		if err = s.stage(logger, dumperr.StageSubstitute, func() (err error) {
			substituted, err = SubstituteBinaries(s.opts.BinaryDir, doc)
			return err
		}); err != nil {
			return nil, err
		}
		logger.Debug("binaries substituted", zap.String("dir", s.opts.BinaryDir), zap.Int("count", substituted))
	}

	var command string
	if err = s.stage(logger, dumperr.StageResolve, func() (err error) {
		command, err = s.synthesize(req, doc)
		return err
	}); err != nil {
		return nil, err
	}

	if err = s.stage(logger, dumperr.StageWrite, func() error {
		if err := document.WriteFile(req.OutputPath, doc); err != nil {
			return dumperr.New(dumperr.StageWrite, dumperr.ErrIO, err)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	logger.Info("transaction dumped", zap.Int("group_index", s.opts.GroupIndex), zap.String("command", command))
	return &Result{TxHash: mtx.TxHash, Command: command, Substituted: substituted}, nil
}

func (s *Service) renderOptions() (RenderOptions, error) {
	if !s.opts.OmitBinaryData {
		return RenderOptions{}, nil
	}
	data, err := os.ReadFile(s.opts.BinaryPath)
	if err != nil {
		return RenderOptions{}, dumperr.New(dumperr.StageEncode, dumperr.ErrIO, err)
	}
	h := hashing.DataHash(data)
	return RenderOptions{ReferenceHash: &h}, nil
}

func (s *Service) synthesize(req Request, doc *document.Document) (string, error) {
	groups := req.Groups
	if groups == nil {
		groups = chain.CollectScriptGroups(req.Transaction)
	}
	dreq := debugger.Request{
		Groups:       groups,
		Transaction:  req.Transaction,
		Document:     doc,
		GroupIndex:   s.opts.GroupIndex,
		BinaryPath:   s.opts.BinaryPath,
		DocumentPath: req.OutputPath,
		DebugListen:  s.opts.DebugListen,
		DebuggerPath: s.opts.DebuggerPath,
	}
	if s.opts.ScriptHash {
		dreq.Document = nil
	}
	return debugger.Select(dreq).Synthesize(dreq)
}

func (s *Service) stage(logger *zap.Logger, stage dumperr.Stage, run func() error) error {
	started := time.Now()
	err := run()
	s.metrics.ObserveStage(stage, err, started)
	if err != nil {
		logger.Error("dump stage failed", zap.String("stage", string(stage)), zap.Error(err))
	}
	return err
}
