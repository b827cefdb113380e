package dump

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/goodnatureofminers/ckb-transaction-dumper/pkg/workerpool"
	"go.uber.org/multierr"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Job dumps one bundle file to one document path.
type Job struct {
	BundlePath string
	OutputPath string
}

// JobResult is the outcome of one job. Err is set when the job failed.
type JobResult struct {
	Job    Job
	Result *Result
	Err    error
}

// BatchRunner dumps many bundles concurrently. Each dump stays single threaded.
type BatchRunner struct {
	service *Service
	loader  BundleLoader
	workers int
	limiter ratelimit.Limiter
	metrics BatchMetrics
	logger  *zap.Logger
}

// NewBatchRunner constructs a BatchRunner. A non-positive rps disables throttling.
func NewBatchRunner(
	service *Service,
	loader BundleLoader,
	metrics BatchMetrics,
	workers int,
	rps int,
	logger *zap.Logger,
) (*BatchRunner, error) {
	if service == nil {
		return nil, errors.New("dump service is required")
	}
	if loader == nil {
		return nil, errors.New("bundle loader is required")
	}
	if metrics == nil {
		return nil, errors.New("batch metrics is required")
	}
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &BatchRunner{
		service: service,
		loader:  loader,
		workers: workers,
		limiter: limiter,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Run executes every job and returns per-job results in job order. The returned error
// combines the failures of all jobs; a failed job does not stop the others.
func (b *BatchRunner) Run(ctx context.Context, jobs []Job) ([]JobResult, error) {
	if err := checkOutputs(jobs); err != nil {
		return nil, err
	}
	b.metrics.ObserveBatch(len(jobs))

	results, err := workerpool.Map(ctx, b.workers, jobs, func(ctx context.Context, _ int, job Job) (JobResult, error) {
		b.limiter.Take()
		if err := ctx.Err(); err != nil {
			return JobResult{}, err
		}
		return b.runJob(job), nil
	})
	if err != nil {
		return nil, err
	}

	var errs error
	for _, r := range results {
		if r.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", r.Job.BundlePath, r.Err))
		}
	}
	return results, errs
}

func (b *BatchRunner) runJob(job Job) (res JobResult) {
	started := time.Now()
	res.Job = job
	defer func() {
		b.metrics.ObserveJob(res.Err, started)
	}()

	bundle, err := b.loader.Load(job.BundlePath)
	if err != nil {
		b.logger.Error("load bundle failed", zap.String("bundle", job.BundlePath), zap.Error(err))
		res.Err = err
		return res
	}
	res.Result, res.Err = b.service.Dump(Request{
		Transaction: bundle.Transaction,
		Headers:     bundle.Headers,
		OutputPath:  job.OutputPath,
	})
	return res
}

// checkOutputs rejects jobs that would write the same document.
func checkOutputs(jobs []Job) error {
	seen := make(map[string]string, len(jobs))
	for _, job := range jobs {
		path, err := filepath.Abs(job.OutputPath)
		if err != nil {
			return fmt.Errorf("output path %s: %w", job.OutputPath, err)
		}
		if prev, ok := seen[path]; ok {
			return fmt.Errorf("bundles %s and %s both write %s", prev, job.BundlePath, path)
		}
		seen[path] = job.BundlePath
	}
	return nil
}
