package usecase

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"crawler-console/internal/transform"
)

// archive collects entries in insertion order until written.
type archive struct {
	policy  transform.CollisionPolicy
	names   []string
	entries map[string][]byte
}

func newArchive(policy transform.CollisionPolicy) *archive {
	return &archive{
		policy:  policy,
		entries: make(map[string][]byte),
	}
}

// add stores data under name and returns the name actually used.
func (a *archive) add(name, sourcePath string, data []byte) string {
	if _, taken := a.entries[name]; taken {
		if a.policy == transform.CollisionOverwrite {
			a.entries[name] = data
			return name
		}
		name = a.disambiguate(name, sourcePath)
	}
	a.names = append(a.names, name)
	a.entries[name] = data
	return name
}

// disambiguate turns "x-formatted.json" into "x-formatted-1a2b3c4d.json".
func (a *archive) disambiguate(name, sourcePath string) string {
	ext := path.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	sum := sha256.Sum256([]byte(sourcePath))
	candidate := fmt.Sprintf("%s-%s%s", stem, hex.EncodeToString(sum[:4]), ext)
	for n := 2; ; n++ {
		if _, taken := a.entries[candidate]; !taken {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%s-%d%s", stem, hex.EncodeToString(sum[:4]), n, ext)
	}
}

func (a *archive) build(modified time.Time) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range a.names {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:     name,
			Method:   zip.Deflate,
			Modified: modified,
		})
		if err != nil {
			return nil, err
		}
		if _, err := w.Write(a.entries[name]); err != nil {
			return nil, err
		}
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
