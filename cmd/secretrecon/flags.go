package main

import (
	"fmt"
	"math/big"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	LogLevelKey = "log-level"

	WorkersKey = "workers"
	VerifyKey  = "verify"
	JSONKey    = "json"

	NKey        = "n"
	KKey        = "k"
	SecretKey   = "secret"
	CoefBitsKey = "coef-bits"
	BasesKey    = "bases"
	OutKey      = "out"
)

func addCommonFlags(flags *pflag.FlagSet) {
	flags.String(LogLevelKey, logrus.InfoLevel.String(), "Log level (trace, debug, info, warn, error)")
}

func addSolveFlags(flags *pflag.FlagSet) {
	addCommonFlags(flags)
	flags.Int(WorkersKey, 0, "Number of documents solved in parallel (0 uses every CPU)")
	flags.Int(VerifyKey, 0, "Number of random share subsets checked against the lowest-index subset")
	flags.Bool(JSONKey, false, "Print the results as JSON")
}

func addGenFlags(flags *pflag.FlagSet) {
	addCommonFlags(flags)
	flags.Int(NKey, 4, "Number of shares to hand out")
	flags.Int(KKey, 3, "Number of shares needed to reconstruct the secret")
	flags.String(SecretKey, "", "Decimal secret to hide (random 256-bit secret if empty)")
	flags.Uint(CoefBitsKey, 256, "Bit size of the random polynomial coefficients")
	flags.IntSlice(BasesKey, []int{10}, "Bases the shares are written in, assigned round robin")
	flags.String(OutKey, "", "File to write the document to (stdout if empty)")
}

type solveConfig struct {
	LogLevel logrus.Level
	Workers  int
	Verify   int
	JSON     bool
	Files    []string
}

type genConfig struct {
	LogLevel logrus.Level
	N        int
	K        int
	Secret   *big.Int
	CoefBits uint
	Bases    []int
	Out      string
}

func parseLogLevel(flags *pflag.FlagSet) (logrus.Level, error) {
	lvl, err := flags.GetString(LogLevelKey)
	if err != nil {
		return 0, err
	}

	return logrus.ParseLevel(lvl)
}

func parseSolveFlags(flags *pflag.FlagSet, args []string) (*solveConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	lvl, err := parseLogLevel(flags)
	if err != nil {
		return nil, err
	}

	workers, err := flags.GetInt(WorkersKey)
	if err != nil {
		return nil, err
	}

	verify, err := flags.GetInt(VerifyKey)
	if err != nil {
		return nil, err
	}

	if verify < 0 {
		return nil, fmt.Errorf("--%s must not be negative", VerifyKey)
	}

	asJSON, err := flags.GetBool(JSONKey)
	if err != nil {
		return nil, err
	}

	if flags.NArg() == 0 {
		return nil, fmt.Errorf("no share documents given")
	}

	return &solveConfig{
		LogLevel: lvl,
		Workers:  workers,
		Verify:   verify,
		JSON:     asJSON,
		Files:    flags.Args(),
	}, nil
}

func parseGenFlags(flags *pflag.FlagSet, args []string) (*genConfig, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	lvl, err := parseLogLevel(flags)
	if err != nil {
		return nil, err
	}

	n, err := flags.GetInt(NKey)
	if err != nil {
		return nil, err
	}

	k, err := flags.GetInt(KKey)
	if err != nil {
		return nil, err
	}

	secretStr, err := flags.GetString(SecretKey)
	if err != nil {
		return nil, err
	}

	var secret *big.Int
	if secretStr != "" {
		var ok bool
		if secret, ok = new(big.Int).SetString(secretStr, 10); !ok {
			return nil, fmt.Errorf("--%s is not a decimal integer: %q", SecretKey, secretStr)
		}
	}

	coefBits, err := flags.GetUint(CoefBitsKey)
	if err != nil {
		return nil, err
	}

	bases, err := flags.GetIntSlice(BasesKey)
	if err != nil {
		return nil, err
	}

	out, err := flags.GetString(OutKey)
	if err != nil {
		return nil, err
	}

	return &genConfig{
		LogLevel: lvl,
		N:        n,
		K:        k,
		Secret:   secret,
		CoefBits: coefBits,
		Bases:    bases,
		Out:      out,
	}, nil
}
