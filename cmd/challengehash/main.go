package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.gammaspectra.live/P2Pool/challenge/crypto"
	"git.gammaspectra.live/P2Pool/challenge/crypto/challenge"
	"git.gammaspectra.live/P2Pool/challenge/types"
	"git.gammaspectra.live/P2Pool/challenge/utils"
	"github.com/spf13/cobra"
	fasthex "github.com/tmthrgd/go-hex"
)

type options struct {
	input    string
	message  string
	routines int
	json     bool
	debug    bool
}

type jsonResult struct {
	challenge.Triad
	Hash types.Hash512 `json:"hash"`
}

var errInvalidLines = errors.New("invalid input lines")

// parseLine reads "nonce public_key digest" as hex. With a digest kind the last field is the message, pre-hashed to the digest
func parseLine(line string, kind crypto.DigestKind) (t challenge.Triad, err error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return t, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	if t.Nonce, err = types.HashFromString(fields[0]); err != nil {
		return t, fmt.Errorf("nonce: %w", err)
	}
	if t.PublicKey, err = types.HashFromString(fields[1]); err != nil {
		return t, fmt.Errorf("public key: %w", err)
	}

	if kind == "" {
		if t.Digest, err = types.HashFromString(fields[2]); err != nil {
			return t, fmt.Errorf("digest: %w", err)
		}
		return t, nil
	}

	message, err := fasthex.DecodeString(fields[2])
	if err != nil {
		return t, fmt.Errorf("message: %w", err)
	}
	if t.Digest, err = crypto.MessageDigest(kind, message); err != nil {
		return t, err
	}
	return t, nil
}

func run(r io.Reader, w io.Writer, opts options) error {
	var triads []challenge.Triad
	var invalid int

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var lineNumber int
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		t, err := parseLine(line, crypto.DigestKind(opts.message))
		if err != nil {
			utils.Errorf("Input", "line %d: %s", lineNumber, err)
			invalid++
			continue
		}
		triads = append(triads, t)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	utils.Debugf("Input", "read %d triads, %d invalid", len(triads), invalid)

	results := challenge.HashBatch(triads, opts.routines)

	bw := bufio.NewWriter(w)
	encoder := utils.NewJSONEncoder(bw)
	for i := range results {
		if opts.json {
			if err := encoder.Encode(jsonResult{Triad: triads[i], Hash: results[i]}); err != nil {
				return err
			}
		} else {
			_, _ = bw.WriteString(results[i].String())
			_ = bw.WriteByte('\n')
		}
	}
	if err := bw.Flush(); err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d", errInvalidLines, invalid)
	}
	return nil
}

func newCommand() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "challengehash",
		Short: "Computes SHA-512(nonce || public key || digest) for each input line",
		Long: `Reads lines of "nonce public_key digest", each a 32-byte hex value, and writes the 64-byte challenge hash of each.
With --message the third field is an arbitrary hex message, hashed to the digest first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.debug {
				utils.GlobalLogLevel |= utils.LogLevelDebug | utils.LogLevelNotice
			}

			if opts.message != "" {
				if _, err := crypto.NewDigest(crypto.DigestKind(opts.message)); err != nil {
					return err
				}
			}

			var r io.Reader = os.Stdin
			if opts.input != "" && opts.input != "-" {
				f, err := os.Open(opts.input)
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			return run(r, cmd.OutOrStdout(), opts)
		},
	}

	kinds := make([]string, 0, len(crypto.DigestKinds))
	for _, k := range crypto.DigestKinds {
		kinds = append(kinds, string(k))
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "input file, stdin when empty or -")
	cmd.Flags().StringVarP(&opts.message, "message", "m", "", "treat the third field as a message pre-hashed with this digest ("+strings.Join(kinds, ", ")+")")
	cmd.Flags().IntVarP(&opts.routines, "routines", "r", 0, "hashing goroutines, 0 uses the CPU count")
	cmd.Flags().BoolVar(&opts.json, "json", false, "write JSON objects instead of hex")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return cmd
}

func main() {
	if err := newCommand().Execute(); err != nil {
		utils.Fatalf("Challenge", "%s", err)
	}
}
