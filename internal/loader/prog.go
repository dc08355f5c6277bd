// Package loader decodes the PROG program format and raw ROM images.
// Parsing never touches machine memory; a successfully parsed program is
// applied as a second step, so a rejected file leaves the machine in its
// prior state.
package loader

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrBadMagic rejects input that does not start with the PROG tag.
	ErrBadMagic = errors.New("prog: bad magic")
	// ErrTruncated rejects input that ends inside a header or section.
	ErrTruncated = errors.New("prog: truncated input")
	// ErrBadLength rejects a section whose length field is inconsistent
	// or whose payload does not fit the 16-bit address space.
	ErrBadLength = errors.New("prog: bad section length")
	// ErrRomSize rejects raw ROM images that are not exactly 8KB.
	ErrRomSize = errors.New("rom: image must be exactly 8192 bytes")
)

const (
	progMagic = "PROG"

	sectionName      = 0x0001
	sectionBasicFlag = 0x0002
	sectionMemory    = 0x0100

	// RomImageSize is the size of a raw BASIC ROM image, loaded at $E000.
	RomImageSize = 8192

	addressSpace = 0x10000
)

// Region is one memory patch: Data applied starting at Addr.
type Region struct {
	Addr uint16
	Data []uint8
}

// Program is the decoded descriptor of a PROG file.
type Program struct {
	Name     string
	Basic    bool
	Regions  []Region
	Warnings []string
}

// Writer8 is the memory sink a parsed program is applied to.
type Writer8 interface {
	Write8(addr uint16, data uint8)
}

// Parse decodes a PROG stream.
//
// Layout: magic "PROG", version u16, section count u16, then sections of
// {type u16, length u32, payload}, all little-endian. Known types:
// 0x0001 program name (UTF-8), 0x0002 basic flag (one byte), 0x0100
// memory bytes (addr u16, size u16, raw bytes). Unknown types are
// skipped with a recorded warning.
func Parse(r io.Reader) (*Program, error) {
	var magic [4]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return nil, fmt.Errorf("%w: magic: %v", ErrTruncated, err)
	}
	if string(magic[:]) != progMagic {
		return nil, ErrBadMagic
	}
	var header struct {
		Version  uint16
		Sections uint16
	}
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrTruncated, err)
	}

	p := &Program{}
	for i := 0; i < int(header.Sections); i++ {
		var sh struct {
			Type   uint16
			Length uint32
		}
		if err := binary.Read(r, binary.LittleEndian, &sh); err != nil {
			return nil, fmt.Errorf("%w: section %d header: %v", ErrTruncated, i, err)
		}
		payload := make([]uint8, sh.Length)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, fmt.Errorf("%w: section %d payload: %v", ErrTruncated, i, err)
		}

		switch sh.Type {
		case sectionName:
			p.Name = string(payload)
		case sectionBasicFlag:
			if len(payload) != 1 {
				return nil, fmt.Errorf("%w: basic flag is %d bytes", ErrBadLength, len(payload))
			}
			p.Basic = payload[0] != 0
		case sectionMemory:
			region, err := parseMemorySection(payload)
			if err != nil {
				return nil, err
			}
			p.Regions = append(p.Regions, region)
		default:
			p.Warnings = append(p.Warnings,
				fmt.Sprintf("skipped unknown section type %#04x (%d bytes)", sh.Type, sh.Length))
		}
	}
	return p, nil
}

func parseMemorySection(payload []uint8) (Region, error) {
	if len(payload) < 4 {
		return Region{}, fmt.Errorf("%w: memory section is %d bytes", ErrBadLength, len(payload))
	}
	addr := binary.LittleEndian.Uint16(payload)
	size := binary.LittleEndian.Uint16(payload[2:])
	if len(payload) != 4+int(size) {
		return Region{}, fmt.Errorf("%w: memory section declares %d data bytes, carries %d",
			ErrBadLength, size, len(payload)-4)
	}
	if int(addr)+int(size) > addressSpace {
		return Region{}, fmt.Errorf("%w: region %#04x+%d overflows the address space",
			ErrBadLength, addr, size)
	}
	return Region{Addr: addr, Data: payload[4:]}, nil
}

// Apply patches the regions into memory in file order; later regions
// overwrite earlier overlaps.
func (p *Program) Apply(mem Writer8) {
	for _, region := range p.Regions {
		for i, b := range region.Data {
			mem.Write8(region.Addr+uint16(i), b)
		}
	}
}

// LoadFile parses a PROG file from disk.
func LoadFile(path string) (*Program, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open the file: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// LoadROM reads a raw BASIC ROM image. The image must be exactly 8KB;
// the machine places it at $E000.
func LoadROM(path string) ([]uint8, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read the file: %w", err)
	}
	if len(data) != RomImageSize {
		return nil, fmt.Errorf("%w: got %d", ErrRomSize, len(data))
	}
	return data, nil
}
