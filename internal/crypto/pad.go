package crypto

import (
	"crypto/aes"
	"fmt"

	"github.com/andreburgaud/crypt2go/padding"
)

// Pad appends PKCS#7 padding for the AES block size. Aligned input gains a
// full block.
func Pad(b []byte) ([]byte, error) {
	out, err := padding.NewPkcs7Padding(aes.BlockSize).Pad(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	}
	return out, nil
}

// Unpad strips PKCS#7 padding from a decrypted buffer.
func Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a whole number of blocks", ErrInvalidPadding, len(b))
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, fmt.Errorf("%w: trailing byte 0x%02x", ErrInvalidPadding, n)
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, fmt.Errorf("%w: pad bytes disagree with length %d", ErrInvalidPadding, n)
		}
	}
	out, err := padding.NewPkcs7Padding(aes.BlockSize).Unpad(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	}
	return out, nil
}

// PaddingByte returns the trailing byte of a decrypted buffer, which under
// PKCS#7 is the pad length. ok is false for empty input.
func PaddingByte(b []byte) (n byte, ok bool) {
	if len(b) == 0 { return 0, false }
	return b[len(b)-1], true
}
