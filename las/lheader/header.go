package lheader

import (
	"sync"

	"github.com/thanhnguyen2187/lasso/ds"
)

// Header is a header section. Type and prefix are fixed at construction;
// the descriptor list is only ever replaced as a whole.
//
// A Header is safe for concurrent use. Readers observe either the list before
// a SetDescriptors call or the list after it, never a mix of both.
type Header struct {
	headerType Type
	prefix     string

	mu          sync.RWMutex
	descriptors []Descriptor
	// first position of each name in descriptors
	indexByName *ds.LinkedHashMap[string, int]
}

func NewHeader(headerType Type, prefix string, descriptors ...Descriptor) *Header {
	header := &Header{
		headerType: headerType,
		prefix:     prefix,
	}
	header.SetDescriptors(descriptors)
	return header
}

func (r *Header) Type() Type {
	return r.headerType
}

func (r *Header) Prefix() string {
	return r.prefix
}

// Descriptors returns a copy of the current descriptor list,
// in the order it was last set.
func (r *Header) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return ds.ShallowCopy(r.descriptors)
}

// Descriptor returns the first descriptor named name, in insertion order.
// When there is none, the error is an ErrDescriptorNotFound.
func (r *Header) Descriptor(name string) (Descriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	index, ok := r.lookup(name)
	if !ok {
		err := ErrDescriptorNotFound{
			Caller: "Header.Descriptor",
			Name:   name,
		}
		return Descriptor{}, err
	}
	return r.descriptors[index], nil
}

// SetDescriptors replaces the whole descriptor list. The slice is copied,
// so later changes to it by the caller do not reach the header.
func (r *Header) SetDescriptors(descriptors []Descriptor) {
	descriptorsCopy := ds.ShallowCopy(descriptors)
	indexByName := indexDescriptors(descriptorsCopy)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.descriptors = descriptorsCopy
	r.indexByName = indexByName
}

func (r *Header) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.descriptors)
}

func (r *Header) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.lookup(name)
	return ok
}

// Names returns the distinct descriptor names in order of first appearance.
func (r *Header) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.indexByName == nil {
		return []string{}
	}
	return r.indexByName.Keys()
}

// lookup expects r.mu to be held.
func (r *Header) lookup(name string) (int, bool) {
	if r.indexByName == nil {
		return 0, false
	}
	return r.indexByName.Get(name)
}

func indexDescriptors(descriptors []Descriptor) *ds.LinkedHashMap[string, int] {
	indexByName := ds.NewLinkedHashMap[string, int]()
	for i, descriptor := range descriptors {
		// duplicated names resolve to their first occurrence
		indexByName.PutIfAbsent(descriptor.Name, i)
	}
	return indexByName
}
