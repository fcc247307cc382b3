package ppm

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFile writes img to path in P3 format.
//
// The image is written to a temporary file in the same directory and renamed
// over path once complete, so path either keeps its previous content or holds
// the whole image.
func WriteFile(path string, img *Image) (err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Marshal(img, bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing P3 image: %w", err)
	}
	if err := f.Chmod(0644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadFile parses the P3 image stored at path.
func ReadFile(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Unmarshal(f)
}
