package aescbc

import (
	"crypto/aes"
	"encoding/hex"

	icrypto "jctf-crypto/internal/crypto"
	"jctf-crypto/internal/report"
	"jctf-crypto/pkg/logx"
)

type Options struct {
	KeyB64        string
	IVB64         string
	CiphertextB64 string
	// Unpad strips PKCS#7 padding. Off by default: the plaintext is
	// reported exactly as the CBC transform leaves it.
	Unpad bool
}

type Solution struct {
	Plaintext []byte
	Results   *report.Results
}

func Run(opt Options) (*Solution, error) {
	key, err := icrypto.DecodeBase64("key", opt.KeyB64)
	if err != nil { return nil, err }
	iv, err := icrypto.DecodeBase64("iv", opt.IVB64)
	if err != nil { return nil, err }
	ct, err := icrypto.DecodeBase64("ciphertext", opt.CiphertextB64)
	if err != nil { return nil, err }
	logx.Debugf("aes-cbc %s", logx.SprintKV(map[string]any{"key_bytes": len(key), "iv_bytes": len(iv), "ciphertext_bytes": len(ct)}))

	pt, err := icrypto.DecryptCBC(key, iv, ct)
	if err != nil { return nil, err }

	evidence := map[string]any{
		"key_bits": len(key) * 8,
		"iv_hex":   hex.EncodeToString(iv),
		"blocks":   len(ct) / aes.BlockSize,
		"raw_hex":  hex.EncodeToString(pt),
		"unpadded": opt.Unpad,
	}
	if n, ok := icrypto.PaddingByte(pt); ok {
		evidence["trailing_byte"] = n
	}
	var notes []string
	if opt.Unpad {
		pt, err = icrypto.Unpad(pt)
		if err != nil { return nil, err }
		notes = append(notes, "PKCS#7 padding stripped")
	} else {
		notes = append(notes, "output includes any PKCS#7 padding bytes")
	}
	evidence["plaintext_hex"] = hex.EncodeToString(pt)

	res := report.New("decrypt")
	res.Add(report.Entry{
		Name:     "AES-CBC decryption",
		Category: "aes-cbc",
		Evidence: evidence,
		Notes:    notes,
	})
	logx.Infof("decrypted %d bytes with AES-%d-CBC", len(pt), len(key)*8)
	return &Solution{Plaintext: pt, Results: res}, nil
}
