package secretrecon

import (
	"context"
	"crypto/rand"
	"errors"
	"io"
	"math/big"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/sha3"

	"github.com/jonathanMweiss/secretrecon/config"
	"github.com/jonathanMweiss/secretrecon/internal/crypto/lagrange"
	"github.com/jonathanMweiss/secretrecon/internal/msync"
)

var ErrRunnerStopped = errors.New("secretrecon: runner stopped")

type RunnerConfig struct {
	// Workers is the number of documents solved in parallel. Defaults to runtime.NumCPU().
	Workers int
	// VerifyRounds is the number of random share subsets checked against the lowest-index subset.
	// Zero disables the check.
	VerifyRounds int
	// Rand feeds the subset choice of the consistency check and must be safe for concurrent use.
	// Defaults to crypto/rand.
	Rand io.Reader
	Log  *logrus.Entry
}

// Result is the outcome of solving one share document.
type Result struct {
	Path string
	// Digest is the SHA3-256 of the document bytes.
	Digest   [32]byte
	Metadata config.Metadata
	// Chosen are the shares the secret was interpolated from.
	Chosen []Point
	Secret *big.Int
	Err    error
}

// Runner solves share documents with a pool of workers.
type Runner struct {
	verifyRounds int
	rand         io.Reader
	log          *logrus.Entry

	taskQueue chan solveTask
	results   msync.Map[string, Result]

	// determine the state of this runner to the workers.
	ctx    context.Context
	cancel context.CancelFunc
}

type solveTask struct {
	index        int
	path         string
	responseChan chan solveResponse
}

type solveResponse struct {
	index  int
	result Result
}

func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}

	if cfg.Rand == nil {
		cfg.Rand = rand.Reader
	}

	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}

	ctx, cancel := context.WithCancel(context.Background())
	r := &Runner{
		verifyRounds: cfg.VerifyRounds,
		rand:         cfg.Rand,
		log:          cfg.Log,
		taskQueue:    make(chan solveTask, cfg.Workers),
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < cfg.Workers; i++ {
		go r.worker()
	}

	return r
}

func (r *Runner) Stop() {
	r.cancel()
}

// SolveFiles solves every document in paths and returns the results in the same order.
// A failure to solve one document is reported in its Result and does not stop the others.
func (r *Runner) SolveFiles(ctx context.Context, paths []string) ([]Result, error) {
	if r.ctx.Err() != nil {
		return nil, ErrRunnerStopped
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stop := r.ctx.Done()
	responseChan := make(chan solveResponse, len(paths)) // making certain no worker will get stuck on response.

	for i, path := range paths {
		select {
		case r.taskQueue <- solveTask{index: i, path: path, responseChan: responseChan}:
		case <-stop:
			return nil, ErrRunnerStopped
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	results := make([]Result, len(paths))
	for range paths {
		select {
		case rsp := <-responseChan:
			results[rsp.index] = rsp.result
			r.results.Store(rsp.result.Path, rsp.result)
		case <-stop:
			return nil, ErrRunnerStopped
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	return results, nil
}

// LastResult returns the latest result computed for path.
func (r *Runner) LastResult(path string) (Result, bool) {
	return r.results.Load(path)
}

func (r *Runner) worker() {
	for {
		select {
		case t := <-r.taskQueue:
			t.responseChan <- solveResponse{
				index:  t.index,
				result: r.solveFile(t.path),
			}

		case <-r.ctx.Done():
			return
		}
	}
}

func (r *Runner) solveFile(path string) Result {
	log := r.log.WithField("file", path)
	res := Result{Path: path}

	bts, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	res.Digest = sha3.Sum256(bts)

	doc, err := config.ParseDocument(bts)
	if err != nil {
		res.Err = err
		return res
	}

	res.Metadata = doc.Metadata
	log.WithFields(logrus.Fields{"n": doc.Metadata.N, "k": doc.Metadata.K}).Info("loaded share document")

	if doc.Metadata.N != len(doc.Shares) {
		log.Warnf("metadata states %d shares, document holds %d", doc.Metadata.N, len(doc.Shares))
	}

	points, err := DecodeRecords(doc.Shares)
	if err != nil {
		res.Err = err
		return res
	}

	res.Chosen, err = lagrange.SelectInterpolationSet(points, doc.Metadata.K)
	if err != nil {
		res.Err = err
		return res
	}

	for _, p := range res.Chosen {
		log.Debugf("interpolating %v", p)
	}

	if r.verifyRounds > 0 {
		res.Secret, res.Err = lagrange.VerifyConsistency(points, doc.Metadata.K, r.verifyRounds, r.rand)
	} else {
		res.Secret, res.Err = lagrange.InterpolateAtZero(res.Chosen)
	}

	if res.Err != nil {
		return res
	}

	log.WithField("secret", res.Secret.String()).Info("secret reconstructed")

	return res
}
