package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"io/ioutil"
	stdlog "log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/chronos-tachyon/crcforge"
	"github.com/chronos-tachyon/crcforge/namegen"
	getopt "github.com/pborman/getopt/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	flagVersion   = false
	flagDebug     = false
	flagTrace     = false
	flagLogStderr = false

	flagPolynomial = PolynomialFlag{crcforge.DefaultPreset.Polynomial()}
	flagTarget     = Checksum32Flag{0}
	flagOffset     = OffsetFlag{IsEnd: true}
	flagHexInput   = false
	flagHexOutput  = false
	flagCheck      = false

	flagDirectory   = ""
	flagCount       = 1
	flagMaxAttempts = namegen.DefaultMaxAttempts
)

func init() {
	getopt.SetParameters("[<input>]")

	getopt.FlagLong(&flagVersion, "version", 'V', "print version and exit")

	getopt.FlagLong(&flagDebug, "verbose", 'v', "enable debug logging")
	getopt.FlagLong(&flagTrace, "debug", 'D', "enable debug and trace logging")
	getopt.FlagLong(&flagLogStderr, "log-stderr", 'L', "log JSON to stderr")

	getopt.FlagLong(&flagPolynomial, "polynomial", 'p', "reflected polynomial; one of crc32c, ieee, koopman, or a hex constant")
	getopt.FlagLong(&flagTarget, "target", 't', "wanted CRC-32, in hex")
	getopt.FlagLong(&flagOffset, "offset", 'o', "patch insertion offset, or \"end\" (default end, or 4 with --directory)")
	getopt.FlagLong(&flagHexInput, "hex-input", 'x', "input is hex-encoded")
	getopt.FlagLong(&flagHexOutput, "hex-output", 'X', "write output hex-encoded")
	getopt.FlagLong(&flagCheck, "check", 'C', "print the CRC-32 of the input instead of forging")

	getopt.FlagLong(&flagDirectory, "directory", 'd', "create forged filenames in this directory")
	getopt.FlagLong(&flagCount, "count", 'c', "number of forged filenames to create")
	getopt.FlagLong(&flagMaxAttempts, "max-attempts", 0, "candidates to try per filename")
}

func main() {
	getopt.Parse()

	if flagVersion {
		fmt.Println(strings.TrimSpace(version))
		os.Exit(0)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.DurationFieldUnit = time.Second
	zerolog.DurationFieldInteger = false
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if flagDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	if flagTrace {
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	switch {
	case flagLogStderr:
		// do nothing

	default:
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	stdlog.SetFlags(0)
	stdlog.SetOutput(log.Logger)

	tables := crcforge.NewTables(flagPolynomial.Value)
	if err := tables.Verify(); err != nil {
		log.Logger.Fatal().
			Err(err).
			Msg("polynomial does not describe a reversible CRC-32")
	}

	if flagDirectory != "" {
		doCreateNames(tables)
		return
	}

	input := readInput()
	if flagCheck {
		fmt.Println(crcforge.Checksum32(tables.Checksum(input)))
		return
	}
	doForge(os.Stdout, tables, input)
}

func readInput() []byte {
	var raw []byte
	var err error
	switch getopt.NArgs() {
	case 0:
		raw, err = ioutil.ReadAll(os.Stdin)
		if err != nil {
			log.Logger.Fatal().
				Err(err).
				Msg("ioutil.ReadAll failed")
		}

	case 1:
		raw = []byte(getopt.Arg(0))

	default:
		getopt.Usage()
		os.Exit(2)
	}

	if flagHexInput {
		decoded, err := hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			log.Logger.Fatal().
				Err(err).
				Msg("hex.DecodeString failed")
		}
		raw = decoded
	}
	return raw
}

func doForge(w io.Writer, tables *crcforge.Tables, input []byte) {
	pos := flagOffset.Resolve(len(input))

	output, err := crcforge.Forge(tables, uint32(flagTarget.Value), input, pos, crcforge.WithTracers(crcforge.Log(log.Logger)))
	if err != nil {
		log.Logger.Fatal().
			Int("offset", pos).
			Int("length", len(input)).
			Err(err).
			Msg("crcforge.Forge failed")
	}

	log.Logger.Debug().
		Str("polynomial", crcforge.Checksum32(tables.Polynomial()).String()).
		Str("target", flagTarget.Value.String()).
		Int("offset", pos).
		Hex("patch", output[pos:pos+crcforge.PatchSize]).
		Msg("forged")

	if flagHexOutput {
		_, err = fmt.Fprintln(w, hex.EncodeToString(output))
	} else {
		_, err = w.Write(output)
	}
	if err != nil {
		log.Logger.Fatal().
			Err(err).
			Msg("failed to write output")
	}
}

func doCreateNames(tables *crcforge.Tables) {
	if flagCount < 1 {
		log.Logger.Fatal().
			Int("count", flagCount).
			Msg("--count must be at least 1")
	}
	if flagMaxAttempts < 1 {
		log.Logger.Fatal().
			Int("maxAttempts", flagMaxAttempts).
			Msg("--max-attempts must be at least 1")
	}

	opts := make([]namegen.Option, 4, 5)
	opts[0] = namegen.WithTables(tables)
	opts[1] = namegen.WithTarget(uint32(flagTarget.Value))
	opts[2] = namegen.WithMaxAttempts(flagMaxAttempts)
	opts[3] = namegen.WithLogger(log.Logger)
	if !flagOffset.IsEnd {
		if flagOffset.Value < 0 {
			log.Logger.Fatal().
				Int("offset", flagOffset.Value).
				Msg("--offset must not be negative")
		}
		opts = append(opts, namegen.WithOffset(flagOffset.Value))
	}
	gen := namegen.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	names, err := gen.CreateNames(ctx, flagDirectory, flagCount)
	log.Logger.Info().
		Str("directory", flagDirectory).
		Int("created", len(names)).
		Int("requested", flagCount).
		Msg("done")
	if err != nil {
		log.Logger.Fatal().
			Err(err).
			Msg("failed to create forged names")
	}
}
