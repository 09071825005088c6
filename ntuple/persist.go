package ntuple

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Binary weight layout, little-endian: a uint32 tuple count followed by one
// table per tuple, each a uint64 entry count and the raw float64 entries.
// The order of tables matches the fixed tuple index table.

// WriteTo streams the weight tables to w.
func (n *Network) WriteTo(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(IndexCount)); err != nil {
		return err
	}
	for t := 0; t < IndexCount; t++ {
		if err := binary.Write(w, binary.LittleEndian, uint64(TableLen)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, n.tables[t]); err != nil {
			return err
		}
	}
	return nil
}

// ReadFrom replaces the weight tables with the ones read from r. A tuple
// count or table length that does not match the compiled network topology
// is an error: loading mismatched weights would silently corrupt learning.
func (n *Network) ReadFrom(r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	if count != IndexCount {
		return fmt.Errorf("weight file holds %d tables, network has %d", count, IndexCount)
	}
	for t := 0; t < IndexCount; t++ {
		var length uint64
		if err := binary.Read(r, binary.LittleEndian, &length); err != nil {
			return err
		}
		if length != TableLen {
			return fmt.Errorf("table %d holds %d entries, expected %d", t, length, TableLen)
		}
		if err := binary.Read(r, binary.LittleEndian, n.tables[t]); err != nil {
			return err
		}
	}
	return nil
}

// Save writes the weight tables to the file at path.
func (n *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("opening weight file: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := n.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("writing weights to %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing weights to %s: %w", path, err)
	}
	return f.Close()
}

// Load reads the weight tables from the file at path.
func (n *Network) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening weight file: %w", err)
	}
	defer f.Close()

	if err := n.ReadFrom(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("reading weights from %s: %w", path, err)
	}
	return nil
}
