package main

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"jctf-crypto/internal/config"
	icrypto "jctf-crypto/internal/crypto"
	"jctf-crypto/internal/report"
	"jctf-crypto/internal/solvers/aescbc"
	"jctf-crypto/internal/solvers/xorkey"
	"jctf-crypto/pkg/logx"
)

var (
	flagConfig   string
	flagOut      string
	flagHTML     string
	flagPDF      string
	flagLogLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if ee, ok := err.(exitError); ok {
			fmt.Fprintln(os.Stderr, ee.err)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jctf-crypto",
		Short:         "Solve the AES-CBC and XOR crypto challenges",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flagConfig, "config", env("JCTF_CONFIG", ""), "YAML file overriding the embedded challenge inputs")
	root.PersistentFlags().StringVar(&flagOut, "out", env("JCTF_OUT", ""), "JSON report output path")
	root.PersistentFlags().StringVar(&flagHTML, "html", "", "HTML report output path")
	root.PersistentFlags().StringVar(&flagPDF, "pdf", "", "PDF report output path")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", env("JCTF_LOG_LEVEL", ""), "log level: debug,info,warn,error")

	root.AddCommand(cmdDecrypt())
	root.AddCommand(cmdEncrypt())
	root.AddCommand(cmdXOR())
	root.AddCommand(cmdSolve())
	root.AddCommand(cmdReport())
	return root
}

// setup loads the config file (or the embedded literals) and applies the
// log level. Flags win over the file.
func setup() (*config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		c, err := config.LoadConfig(flagConfig)
		if err != nil {
			return nil, exitCodeErr(3, err)
		}
		cfg = c
	}
	if err := logx.SetLevel(pick(flagLogLevel, cfg.Logging.Level)); err != nil {
		return nil, exitCodeErr(3, err)
	}
	return cfg, nil
}

func cmdDecrypt() *cobra.Command {
	var key, iv, ct, format string
	var unpad bool
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "AES-CBC decrypt base64 key, IV and ciphertext",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			opt := decryptOptions(cfg, key, iv, ct)
			if cmd.Flags().Changed("unpad") {
				opt.Unpad = unpad
			}
			f := pick(format, cfg.AESCBC.Format)
			if err := config.ValidateFormat(f); err != nil {
				return exitCodeErr(3, err)
			}
			sol, err := aescbc.Run(opt)
			if err != nil {
				return exitCodeErr(4, err)
			}
			if err := writePlaintext(cmd.OutOrStdout(), sol.Plaintext, f); err != nil {
				return err
			}
			return writeReports(sol.Results, cfg)
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base64 AES key (16, 24 or 32 bytes)")
	cmd.Flags().StringVar(&iv, "iv", "", "base64 IV (16 bytes)")
	cmd.Flags().StringVar(&ct, "ciphertext", "", "base64 ciphertext")
	cmd.Flags().BoolVar(&unpad, "unpad", false, "strip PKCS#7 padding from the output")
	cmd.Flags().StringVar(&format, "format", "", "output format: raw, hex or quoted")
	return cmd
}

func cmdEncrypt() *cobra.Command {
	var key, iv, plaintext string
	var pad bool
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "AES-CBC encrypt text into a base64 fixture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			k, err := icrypto.DecodeBase64("key", pick(key, cfg.AESCBC.Key))
			if err != nil {
				return exitCodeErr(4, err)
			}
			v, err := icrypto.DecodeBase64("iv", pick(iv, cfg.AESCBC.IV))
			if err != nil {
				return exitCodeErr(4, err)
			}
			data := []byte(plaintext)
			if pad {
				if data, err = icrypto.Pad(data); err != nil {
					return exitCodeErr(4, err)
				}
			}
			out, err := icrypto.EncryptCBC(k, v, data)
			if err != nil {
				return exitCodeErr(4, err)
			}
			logx.Debugf("encrypted %d bytes", len(data))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), base64.StdEncoding.EncodeToString(out))
			return err
		},
	}
	cmd.Flags().StringVar(&key, "key", "", "base64 AES key (16, 24 or 32 bytes)")
	cmd.Flags().StringVar(&iv, "iv", "", "base64 IV (16 bytes)")
	cmd.Flags().StringVar(&plaintext, "plaintext", "", "text to encrypt")
	cmd.Flags().BoolVar(&pad, "pad", true, "apply PKCS#7 padding before encrypting")
	return cmd
}

func cmdXOR() *cobra.Command {
	var flagKey, flag, filler string
	cmd := &cobra.Command{
		Use:   "xor",
		Short: "Recover an XOR key and apply it to a filler buffer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			sol, err := xorkey.Run(xorOptions(cfg, flagKey, flag, filler))
			if err != nil {
				return exitCodeErr(4, err)
			}
			if err := writeRecovery(cmd.OutOrStdout(), sol.Recovery); err != nil {
				return err
			}
			return writeReports(sol.Results, cfg)
		},
	}
	cmd.Flags().StringVar(&flagKey, "flag-key", "", "hex of the obfuscated flag")
	cmd.Flags().StringVar(&flag, "flag", "", "hex of the known flag")
	cmd.Flags().StringVar(&filler, "filler", "", "filler text, read as hex digits")
	return cmd
}

func cmdSolve() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Run both solvers on the configured inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup()
			if err != nil {
				return err
			}
			dec, err := aescbc.Run(decryptOptions(cfg, "", "", ""))
			if err != nil {
				return exitCodeErr(4, err)
			}
			rec, err := xorkey.Run(xorOptions(cfg, "", "", ""))
			if err != nil {
				return exitCodeErr(4, err)
			}
			w := cmd.OutOrStdout()
			if err := writePlaintext(w, dec.Plaintext, cfg.AESCBC.Format); err != nil {
				return err
			}
			if err := writeRecovery(w, rec.Recovery); err != nil {
				return err
			}
			res := report.New("solve")
			res.Merge(dec.Results)
			res.Merge(rec.Results)
			return writeReports(res, cfg)
		},
	}
	return cmd
}

func cmdReport() *cobra.Command {
	var in []string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Convert/merge JSON to HTML/PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(in) == 0 {
				return exitCodeErr(3, fmt.Errorf("provide at least one JSON via --in"))
			}
			cfg, err := setup()
			if err != nil {
				return err
			}
			merged, err := report.MergeJSONFiles(in)
			if err != nil {
				return err
			}
			return writeReports(merged, cfg)
		},
	}
	cmd.Flags().StringSliceVar(&in, "in", nil, "input JSONs to merge")
	return cmd
}

func decryptOptions(cfg *config.Config, key, iv, ct string) aescbc.Options {
	return aescbc.Options{
		KeyB64:        pick(key, cfg.AESCBC.Key),
		IVB64:         pick(iv, cfg.AESCBC.IV),
		CiphertextB64: pick(ct, cfg.AESCBC.Ciphertext),
		Unpad:         cfg.AESCBC.Unpad,
	}
}

func xorOptions(cfg *config.Config, flagKey, flag, filler string) xorkey.Options {
	return xorkey.Options{
		FlagKeyHex: pick(flagKey, cfg.XOR.FlagKey),
		FlagHex:    pick(flag, cfg.XOR.Flag),
		FillerHex:  pick(filler, cfg.XOR.Filler),
	}
}

func writePlaintext(w io.Writer, pt []byte, format string) error {
	var line []byte
	switch format {
	case config.FormatHex:
		line = []byte(hex.EncodeToString(pt))
	case config.FormatQuoted:
		line = []byte(strconv.Quote(string(pt)))
	default:
		line = pt
	}
	_, err := w.Write(append(line, '\n'))
	return err
}

func writeRecovery(w io.Writer, r *icrypto.Recovery) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n", r.KeyHex(), r.RecoveredHex())
	return err
}

func writeReports(res *report.Results, cfg *config.Config) error {
	if out := pick(flagOut, cfg.Report.JSON); out != "" {
		if err := report.WriteJSONToFile(res, out); err != nil {
			return err
		}
		logx.Infof("wrote JSON report: %s", out)
	}
	if out := pick(flagHTML, cfg.Report.HTML); out != "" {
		if err := os.WriteFile(out, []byte(report.RenderHTML(res)), 0o644); err != nil {
			return err
		}
		logx.Infof("wrote HTML report: %s", out)
	}
	if out := pick(flagPDF, cfg.Report.PDF); out != "" {
		if err := report.RenderPDFToFile(res, out); err != nil {
			logx.Warnf("PDF generation failed, wrote HTML if provided: %v", err)
			return nil
		}
		logx.Infof("wrote PDF report: %s", out)
	}
	return nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func pick(v, def string) string {
	if v != "" { return v }
	return def
}

type exitError struct{ code int; err error }
func (e exitError) Error() string { return e.err.Error() }
func (e exitError) Unwrap() error { return e.err }
func exitCodeErr(code int, err error) error { return exitError{code: code, err: err} }

func init() { cobra.MousetrapHelpText = "" }
