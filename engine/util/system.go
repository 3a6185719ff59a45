package util

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ByteOrder names the order the host stores multi byte values in. The raw
// vertex and matrix streams this process uploads are in host order, so it is
// worth logging at startup.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (b ByteOrder) String() string {
	if b == BigEndian {
		return "big endian"
	}
	return "little endian"
}

// HostByteOrder probes the byte order this process runs under.
func HostByteOrder() (ByteOrder, error) {
	probe := uint16(0xABCD)
	bytes := *(*[2]byte)(unsafe.Pointer(&probe))
	switch bytes {
	case [2]byte{0xCD, 0xAB}:
		return LittleEndian, nil
	case [2]byte{0xAB, 0xCD}:
		return BigEndian, nil
	}
	return 0, errors.New("unable to determine the host byte order")
}
