// SPDX-License-Identifier: MIT

package modelio

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/linefem/structure"
)

// SaveFile writes s to path, truncating any existing file.
func SaveFile(path string, s *structure.Structure, comment string, opts ...SaveOption) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("SaveFile: %w", err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	return Save(f, s, comment, opts...)
}

// LoadFile reads a model from path.
func LoadFile(path string) (*structure.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("LoadFile(%s): %w", path, err)
	}

	return s, nil
}
