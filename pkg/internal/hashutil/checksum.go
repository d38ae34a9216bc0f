package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
)

// Sum returns the lowercase hex SHA-256 digest of data
func Sum(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// SumFile streams a file through SHA-256 and returns the lowercase hex digest
func SumFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
