// hkdf-go: HMAC-based extract-and-expand key derivation
// Copyright 2025 Dark Bio AG. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hkdf derives keys with HKDF from hex or base64 encoded inputs.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/spf13/cobra"

	"github.com/dark-bio/hkdf-go/hkdf"
	"github.com/dark-bio/hkdf-go/internal/textenc"
)

// Config holds the flag values shared by all subcommands.
type Config struct {
	InputFormat  string
	OutputFormat string
	Hash         string
	IKM          string
	PRK          string
	Salt         string
	Info         string
	Length       int
}

// newRootCommand builds the command tree, binding all flags into a fresh
// configuration.
func newRootCommand() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "hkdf",
		Short: "HKDF key derivation tool",
		Long: `A tool for deriving keys with HKDF (RFC 5869) over SHA-256, SHA-384 or SHA-512.

All binary inputs and outputs are hex encoded by default, or base64 encoded
with --input-format and --output-format.`,
		Version:       versioninfo.Short(),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().StringVar(&cfg.InputFormat, "input-format", textenc.Hex, "encoding of binary inputs (hex or base64)")
	cmd.PersistentFlags().StringVar(&cfg.OutputFormat, "output-format", textenc.Hex, "encoding of binary outputs (hex or base64)")

	cmd.AddCommand(
		newDeriveCommand(&cfg),
		newExtractCommand(&cfg),
		newExpandCommand(&cfg),
		newVectorsCommand(),
	)
	return cmd
}

func newDeriveCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive output keying material from input keying material",
		Long: `Run HKDF extract and expand in one go.

Example:
  hkdf derive --hash SHA-256 --ikm 0b0b0b0b --salt 0001 --info f0f1 --length 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hkdf.ParseHash(cfg.Hash)
			if err != nil {
				return err
			}
			ikm, salt, info, err := decodeInputs(cfg.InputFormat, cfg.IKM, cfg.Salt, cfg.Info)
			if err != nil {
				return err
			}
			okm, err := hkdf.DeriveKey(h, ikm, cfg.Length, salt, info)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), cfg.OutputFormat, okm)
		},
	}
	cmd.Flags().StringVar(&cfg.Hash, "hash", "SHA-256", "hash function (SHA-256, SHA-384 or SHA-512)")
	cmd.Flags().StringVar(&cfg.IKM, "ikm", "", "input keying material")
	cmd.Flags().StringVar(&cfg.Salt, "salt", "", "optional salt")
	cmd.Flags().StringVar(&cfg.Info, "info", "", "optional context info")
	cmd.Flags().IntVarP(&cfg.Length, "length", "l", 0, "output length in bytes (required)")
	cmd.MarkFlagRequired("length")

	return cmd
}

func newExtractCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract a pseudorandom key from input keying material",
		Long: `Run the HKDF extract stage only, printing the pseudorandom key.

Example:
  hkdf extract --hash SHA-512 --ikm 0b0b0b0b --salt 0001`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hkdf.ParseHash(cfg.Hash)
			if err != nil {
				return err
			}
			ikm, salt, _, err := decodeInputs(cfg.InputFormat, cfg.IKM, cfg.Salt, "")
			if err != nil {
				return err
			}
			prk, err := hkdf.Extract(h, ikm, salt)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), cfg.OutputFormat, prk)
		},
	}
	cmd.Flags().StringVar(&cfg.Hash, "hash", "SHA-256", "hash function (SHA-256, SHA-384 or SHA-512)")
	cmd.Flags().StringVar(&cfg.IKM, "ikm", "", "input keying material")
	cmd.Flags().StringVar(&cfg.Salt, "salt", "", "optional salt")

	return cmd
}

func newExpandCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expand",
		Short: "Expand a pseudorandom key into output keying material",
		Long: `Run the HKDF expand stage only, using a previously extracted key.

Example:
  hkdf expand --hash SHA-256 --prk 077709362c2e32df... --info f0f1 --length 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := hkdf.ParseHash(cfg.Hash)
			if err != nil {
				return err
			}
			prk, info, _, err := decodeInputs(cfg.InputFormat, cfg.PRK, cfg.Info, "")
			if err != nil {
				return err
			}
			okm, err := hkdf.Expand(h, prk, cfg.Length, info)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), cfg.OutputFormat, okm)
		},
	}
	cmd.Flags().StringVar(&cfg.Hash, "hash", "SHA-256", "hash function (SHA-256, SHA-384 or SHA-512)")
	cmd.Flags().StringVar(&cfg.PRK, "prk", "", "pseudorandom key (required)")
	cmd.Flags().StringVar(&cfg.Info, "info", "", "optional context info")
	cmd.Flags().IntVarP(&cfg.Length, "length", "l", 0, "output length in bytes (required)")
	cmd.MarkFlagRequired("prk")
	cmd.MarkFlagRequired("length")

	return cmd
}

func newVectorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "vectors",
		Short: "Check the RFC 5869 SHA-256 test vectors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVectors(cmd.OutOrStdout())
		},
	}
}

// decodeInputs decodes up to three binary flag values in the given format.
func decodeInputs(format, a, b, c string) ([]byte, []byte, []byte, error) {
	var out [3][]byte
	for i, s := range []string{a, b, c} {
		blob, err := textenc.Decode(format, s)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to decode input: %w", err)
		}
		out[i] = blob
	}
	return out[0], out[1], out[2], nil
}

// writeOutput encodes the blob in the given format and prints it on its own
// line.
func writeOutput(w io.Writer, format string, blob []byte) error {
	text, err := textenc.Encode(format, blob)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

// vector is an RFC 5869 Appendix A test case, hex encoded.
type vector struct {
	ikm, salt, info string
	length          int
	prk, okm        string
}

// vectors are the SHA-256 test cases of RFC 5869 Appendix A.
var vectors = []vector{
	{
		ikm:    "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
		salt:   "000102030405060708090a0b0c",
		info:   "f0f1f2f3f4f5f6f7f8f9",
		length: 42,
		prk:    "077709362c2e32df0ddc3f0dc47bba6390b6c73bb50f9c3122ec844ad7c2b3e5",
		okm:    "3cb25f25faacd57a90434f64d0362f2a2d2d0a90cf1a5a4c5db02d56ecc4c5bf34007208d5b887185865",
	},
	{
		ikm:    "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f202122232425262728292a2b2c2d2e2f303132333435363738393a3b3c3d3e3f404142434445464748494a4b4c4d4e4f",
		salt:   "606162636465666768696a6b6c6d6e6f707172737475767778797a7b7c7d7e7f808182838485868788898a8b8c8d8e8f909192939495969798999a9b9c9d9e9fa0a1a2a3a4a5a6a7a8a9aaabacadaeaf",
		info:   "b0b1b2b3b4b5b6b7b8b9babbbcbdbebfc0c1c2c3c4c5c6c7c8c9cacbcccdcecfd0d1d2d3d4d5d6d7d8d9dadbdcdddedfe0e1e2e3e4e5e6e7e8e9eaebecedeeeff0f1f2f3f4f5f6f7f8f9fafbfcfdfeff",
		length: 82,
		prk:    "06a6b88c5853361a06104c9ceb35b45cef760014904671014a193f40c15fc244",
		okm:    "b11e398dc80327a1c8e7f78c596a49344f012eda2d4efad8a050cc4c19afa97c59045a99cac7827271cb41c65e590e09da3275600c2f09b8367793a9aca3db71cc30c58179ec3e87c14c01d5c1f3434f1d87",
	},
	{
		ikm:    "0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b0b",
		length: 42,
		prk:    "19ef24a32c717b167f33a91d6f648bdf96596776afdb6377ac434c1c293ccb04",
		okm:    "8da4e775a563c18f715f802a063c5a31b8a11f5c5ee1879ec3454e5f3c738d2d9d201395faa4b61a96c8",
	},
}

// runVectors checks the extracted key and the derived key of every vector,
// printing one Success or Fail line per check.
func runVectors(w io.Writer) error {
	var failed int
	for i, v := range vectors {
		ikm, _ := hex.DecodeString(v.ikm)
		salt, _ := hex.DecodeString(v.salt)
		info, _ := hex.DecodeString(v.info)
		wantPRK, _ := hex.DecodeString(v.prk)
		wantOKM, _ := hex.DecodeString(v.okm)

		prk, err := hkdf.Extract(hkdf.SHA256, ikm, salt)
		failed += report(w, fmt.Sprintf("Test %d.1", i+1), err == nil && bytes.Equal(prk, wantPRK))

		okm, err := hkdf.DeriveKey(hkdf.SHA256, ikm, v.length, salt, info)
		failed += report(w, fmt.Sprintf("Test %d.2", i+1), err == nil && bytes.Equal(okm, wantOKM))
	}
	if failed > 0 {
		return fmt.Errorf("%d test vector checks failed", failed)
	}
	return nil
}

// report prints the outcome of a check, returning 1 if it failed.
func report(w io.Writer, name string, ok bool) int {
	if ok {
		fmt.Fprintf(w, "%s: Success\n", name)
		return 0
	}
	fmt.Fprintf(w, "%s: Fail\n", name)
	return 1
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
