package xorkey

import (
	"encoding/hex"

	icrypto "jctf-crypto/internal/crypto"
	"jctf-crypto/internal/report"
	"jctf-crypto/pkg/logx"
)

type Options struct {
	FlagKeyHex string
	FlagHex    string
	FillerHex  string
}

type Solution struct {
	Recovery *icrypto.Recovery
	Results  *report.Results
}

func Run(opt Options) (*Solution, error) {
	rec, err := icrypto.RecoverXOR(opt.FlagKeyHex, opt.FlagHex, opt.FillerHex)
	if err != nil { return nil, err }

	var notes []string
	if !rec.SameWidth() {
		logx.Warnf("xor operands differ in width: flag_key=%d flag=%d filler=%d bytes", rec.Widths[0], rec.Widths[1], rec.Widths[2])
		notes = append(notes, "operand widths differ; values were combined as integers")
	}
	logx.Debugf("recovered as text: %q", rec.RecoveredBytes())

	res := report.New("xor")
	res.Add(report.Entry{
		Name:     "XOR key recovery",
		Category: "xor",
		Evidence: map[string]any{
			"key":             rec.KeyHex(),
			"recovered":       rec.RecoveredHex(),
			"recovered_bytes": hex.EncodeToString(rec.RecoveredBytes()),
			"widths":          rec.Widths,
		},
		Notes: notes,
	})
	return &Solution{Recovery: rec, Results: res}, nil
}
