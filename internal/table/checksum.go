package table

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DatasetChecksum returns a short, stable identifier for a set of input files:
// the first 6 hex characters of the MD5 over their contents, in argument order.
// Missing files contribute nothing, so an absent optional phase file does not
// make the checksum fail.
func DatasetChecksum(paths ...string) (string, error) {
	h := md5.New()
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return "", fmt.Errorf("failed to open %s: %w", path, err)
		}
		_, err = io.Copy(h, f)
		f.Close()
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", path, err)
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:6], nil
}
