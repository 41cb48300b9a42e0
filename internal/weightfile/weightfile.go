// Package weightfile reads and writes the flat little-endian float32
// container used to seed a node's initial model parameters.
//
// Layout:
//
//	offset 0:  8 bytes  magic "GGSW1\0\0\0"
//	offset 8:  8 bytes  uint64 length (number of float32 values)
//	offset 16: length*4 bytes  values, little-endian float32
package weightfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
)

var magic = [8]byte{'G', 'G', 'S', 'W', '1', 0, 0, 0}

// Load reads a flat float32 array from path. Returns an error wrapping
// the underlying cause on a missing file, bad magic, or short read.
func Load(path string) ([]float32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("weightfile.Load: open %q: %w", path, err)
	}
	defer f.Close()

	var gotMagic [8]byte
	if _, err := io.ReadFull(f, gotMagic[:]); err != nil {
		return nil, fmt.Errorf("weightfile.Load: read magic: %w", err)
	}
	if gotMagic != magic {
		return nil, fmt.Errorf("weightfile.Load: bad magic %x", gotMagic)
	}

	var length uint64
	if err := binary.Read(f, binary.LittleEndian, &length); err != nil {
		return nil, fmt.Errorf("weightfile.Load: read length: %w", err)
	}

	raw := make([]byte, length*4)
	if _, err := io.ReadFull(f, raw); err != nil {
		return nil, fmt.Errorf("weightfile.Load: read values (want %d): %w", length, err)
	}

	values := make([]float32, length)
	for i := range values {
		bits := binary.LittleEndian.Uint32(raw[i*4 : i*4+4])
		values[i] = math.Float32frombits(bits)
	}
	return values, nil
}

// Save writes values to path in the weightfile container format.
func Save(path string, values []float32) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("weightfile.Save: create %q: %w", path, err)
	}
	defer f.Close()

	if _, err := f.Write(magic[:]); err != nil {
		return fmt.Errorf("weightfile.Save: write magic: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, uint64(len(values))); err != nil {
		return fmt.Errorf("weightfile.Save: write length: %w", err)
	}
	raw := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(raw[i*4:i*4+4], math.Float32bits(v))
	}
	if _, err := f.Write(raw); err != nil {
		return fmt.Errorf("weightfile.Save: write values: %w", err)
	}
	return nil
}
