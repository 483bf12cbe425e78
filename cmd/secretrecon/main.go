package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/jonathanMweiss/secretrecon"
	"github.com/jonathanMweiss/secretrecon/config"
	"github.com/jonathanMweiss/secretrecon/internal/codec"
)

const usage = `usage:
  secretrecon solve [flags] file...   reconstruct the secret of each share document
  secretrecon gen [flags]             write a random share document`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "solve":
		err = runSolve(os.Args[2:], os.Stdout)
	case "gen":
		err = runGen(os.Args[2:], os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logrus.Fatal(err)
	}
}

func newLogger(lvl logrus.Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(lvl)

	return logrus.NewEntry(logger)
}

type solveOutput struct {
	File   string   `codec:"file"`
	Digest string   `codec:"digest"`
	N      int      `codec:"n"`
	K      int      `codec:"k"`
	Chosen []string `codec:"chosen,omitempty"`
	Secret string   `codec:"secret,omitempty"`
	Error  string   `codec:"error,omitempty"`
}

func runSolve(args []string, w io.Writer) error {
	flags := pflag.NewFlagSet("solve", pflag.ContinueOnError)
	addSolveFlags(flags)

	cfg, err := parseSolveFlags(flags, args)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)

	runner := secretrecon.NewRunner(secretrecon.RunnerConfig{
		Workers:      cfg.Workers,
		VerifyRounds: cfg.Verify,
		Log:          log,
	})
	defer runner.Stop()

	results, err := runner.SolveFiles(context.Background(), cfg.Files)
	if err != nil {
		return err
	}

	failed := 0
	outputs := make([]solveOutput, len(results))
	for i, res := range results {
		outputs[i] = solveOutput{
			File:   res.Path,
			Digest: hex.EncodeToString(res.Digest[:]),
			N:      res.Metadata.N,
			K:      res.Metadata.K,
		}

		if res.Err != nil {
			failed++
			outputs[i].Error = res.Err.Error()
			log.WithField("file", res.Path).Error(res.Err)
			continue
		}

		outputs[i].Secret = res.Secret.String()
		for _, p := range res.Chosen {
			outputs[i].Chosen = append(outputs[i].Chosen, p.String())
		}
	}

	if cfg.JSON {
		if err := codec.MarshalJsonIntoWriter(outputs, w); err != nil {
			return err
		}
	} else {
		for _, out := range outputs {
			if out.Error != "" {
				continue
			}

			writeText(w, out)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents could not be solved", failed, len(results))
	}

	return nil
}

func writeText(w io.Writer, out solveOutput) {
	fmt.Fprintf(w, "%s\n", out.File)
	fmt.Fprintf(w, "Number of shares (n): %d\n", out.N)
	fmt.Fprintf(w, "Minimum shares required (k): %d\n", out.K)
	fmt.Fprintln(w, "Points for interpolation:")
	for _, p := range out.Chosen {
		fmt.Fprintf(w, "  %s\n", p)
	}
	fmt.Fprintf(w, "Secret for %s: %s\n", out.File, out.Secret)
}

func runGen(args []string, w io.Writer) error {
	flags := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	addGenFlags(flags)

	cfg, err := parseGenFlags(flags, args)
	if err != nil {
		return err
	}

	log := newLogger(cfg.LogLevel)

	secret := cfg.Secret
	if secret == nil {
		secret, err = rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 256))
		if err != nil {
			return err
		}
	}

	doc, err := config.GenerateDocument(secret, cfg.N, cfg.K, cfg.CoefBits, cfg.Bases)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{"n": cfg.N, "k": cfg.K}).Debugf("hid secret %s", secret)

	if cfg.Out == "" {
		return doc.Encode(w)
	}

	if err := doc.WriteFile(cfg.Out); err != nil {
		return err
	}

	log.WithField("file", cfg.Out).Info("share document written")

	return nil
}
