package util

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// PartSuffix marks files that are still being written.
const PartSuffix = ".part"

// WriteFileAtomic writes data next to path and renames it into place, so a
// failed run never leaves a truncated file behind.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*"+PartSuffix)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Chmod(tmpName, perm); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	return nil
}

// CopyToPart streams r into path+PartSuffix and returns the part file name
// and the number of bytes written. The caller renames or removes it.
func CopyToPart(r io.Reader, path string) (string, int64, error) {
	part := path + PartSuffix

	out, err := os.Create(part)
	if err != nil {
		return "", 0, fmt.Errorf("create %s: %w", part, err)
	}

	defer func() {
		if cerr := out.Close(); cerr != nil {
			log.Printf("error closing output file %s: %v", part, cerr)
		}
	}()

	n, err := io.Copy(out, r)
	if err != nil {
		return part, n, err
	}

	return part, n, out.Sync()
}

func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
