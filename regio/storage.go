package regio

import (
	"encoding/binary"
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// StorageSpace is a Space backed by an Akita memory Storage. It stands in
// for the real MMIO bus in tests and behavioral models: registers live in
// simulated memory as little-endian 32-bit words.
//
// Accesses outside the storage capacity panic. On silicon an out-of-map
// access is undefined behavior; in simulation it is a bug worth surfacing
// loudly.
type StorageSpace struct {
	storage *mem.Storage
}

// NewStorageSpace creates a StorageSpace with capacity bytes of simulated
// register memory, all reading as zero.
func NewStorageSpace(capacity uint64) *StorageSpace {
	return &StorageSpace{storage: mem.NewStorage(capacity)}
}

// Read32 returns the word at addr.
func (s *StorageSpace) Read32(addr uint32) uint32 {
	data, err := s.storage.Read(uint64(addr), 4)
	if err != nil {
		panic(fmt.Sprintf("register read out of range at 0x%08X: %v", addr, err))
	}
	return binary.LittleEndian.Uint32(data)
}

// Write32 stores val to the word at addr.
func (s *StorageSpace) Write32(addr uint32, val uint32) {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, val)
	if err := s.storage.Write(uint64(addr), data); err != nil {
		panic(fmt.Sprintf("register write out of range at 0x%08X: %v", addr, err))
	}
}
