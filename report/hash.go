package report

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Hash returns highwayhash-64 of data
func Hash(data []byte) (uint64, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	_, err = hash.Write(data)
	return hash.Sum64(), err
}

// Fingerprint identifies a violation by file path, class name and method key
func Fingerprint(path, class, methodKey string) string {
	value, err := Hash([]byte(path + "\x00" + class + "\x00" + methodKey))
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%016x", value)
}
