package render

import (
	"fmt"
)

// VertexBufferElement describes one vertex attribute inside an interleaved
// vertex. Offset is in bytes from the start of the vertex.
type VertexBufferElement struct {
	Type       uint32
	Count      int32
	Normalized bool
	Offset     uintptr
}

// SizeOfType returns the size in bytes of a GL component type, or 0 if the
// type cannot be used in a vertex layout.
func SizeOfType(xtype uint32) int32 {
	switch xtype {
	case FLOAT, INT, UNSIGNED_INT:
		return 4
	case SHORT, UNSIGNED_SHORT:
		return 2
	case BYTE, UNSIGNED_BYTE:
		return 1
	}
	return 0
}

// VertexBufferLayout is the ordered attribute list of one vertex buffer.
// Each pushed element starts where the previous one ended and the stride
// grows by its size.
type VertexBufferLayout struct {
	elements []VertexBufferElement
	stride   int32
}

func NewVertexBufferLayout() *VertexBufferLayout {
	return &VertexBufferLayout{}
}

// Push appends an attribute of count components of the given type.
func (l *VertexBufferLayout) Push(xtype uint32, count int32, normalized bool) error {
	size := SizeOfType(xtype)
	if size == 0 {
		return fmt.Errorf("unsupported vertex attribute type 0x%04X", xtype)
	}
	if count < 1 || count > 4 {
		return fmt.Errorf("vertex attribute needs 1 to 4 components, got %d", count)
	}

	l.elements = append(l.elements, VertexBufferElement{
		Type:       xtype,
		Count:      count,
		Normalized: normalized,
		Offset:     uintptr(l.stride),
	})
	l.stride += count * size
	return nil
}

// PushFloat, PushUint and PushUbyte panic on a bad component count.
func (l *VertexBufferLayout) PushFloat(count int32) *VertexBufferLayout {
	return l.mustPush(FLOAT, count, false)
}

func (l *VertexBufferLayout) PushUint(count int32) *VertexBufferLayout {
	return l.mustPush(UNSIGNED_INT, count, false)
}

// Bytes are normalized to [0, 1], the usual packed color.
func (l *VertexBufferLayout) PushUbyte(count int32) *VertexBufferLayout {
	return l.mustPush(UNSIGNED_BYTE, count, true)
}

func (l *VertexBufferLayout) mustPush(xtype uint32, count int32, normalized bool) *VertexBufferLayout {
	if err := l.Push(xtype, count, normalized); err != nil {
		panic(err)
	}
	return l
}

func (l *VertexBufferLayout) Elements() []VertexBufferElement {
	return l.elements
}

// Stride is the size in bytes of one whole vertex.
func (l *VertexBufferLayout) Stride() int32 {
	return l.stride
}
