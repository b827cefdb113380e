package dump

import (
	"time"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/bundle"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	CellDataProvider interface {
		LoadCellData(cell *model.CellMeta) ([]byte, bool)
	}
	HeaderProvider interface {
		GetHeader(hash model.Hash) (*model.Header, bool)
	}
	Metrics interface {
		ObserveStage(stage dumperr.Stage, err error, started time.Time)
		ObserveDump(err error, started time.Time)
	}

	BundleLoader interface {
		Load(path string) (*bundle.Bundle, error)
	}
	BatchMetrics interface {
		ObserveJob(err error, started time.Time)
		ObserveBatch(jobs int)
	}
)
