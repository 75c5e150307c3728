package render

import (
	"unsafe"
)

const (
	FLOAT_SIZE = 4
	UINT_SIZE  = 4
)

// VertexBuffer owns one ARRAY_BUFFER handle holding interleaved vertex data.
type VertexBuffer struct {
	device *Device
	handle uint32
	size   int // in bytes
}

// NewVertexBuffer uploads data into a new buffer and leaves it bound.
func NewVertexBuffer(d *Device, data []float32) *VertexBuffer {
	vb := &VertexBuffer{
		device: d,
		size:   len(data) * FLOAT_SIZE,
	}

	d.Call("GenBuffers", func() { vb.handle = d.GL.GenBuffer() })
	if vb.handle == 0 {
		Logger().Error("Failed to create OpenGL vertex buffer")
	}
	d.Call("BindBuffer", func() { d.GL.BindBuffer(ARRAY_BUFFER, vb.handle) })
	d.Call("BufferData", func() { d.GL.BufferData(ARRAY_BUFFER, Float32Bytes(data), STATIC_DRAW) })
	return vb
}

func (vb *VertexBuffer) Bind() {
	vb.device.Call("BindBuffer", func() { vb.device.GL.BindBuffer(ARRAY_BUFFER, vb.handle) })
}

func (vb *VertexBuffer) Unbind() {
	vb.device.Call("BindBuffer", func() { vb.device.GL.BindBuffer(ARRAY_BUFFER, 0) })
}

// Delete releases the handle. Later calls do nothing.
func (vb *VertexBuffer) Delete() {
	if vb.handle == 0 {
		return
	}
	vb.device.Call("DeleteBuffers", func() { vb.device.GL.DeleteBuffer(vb.handle) })
	vb.handle = 0
}

func (vb *VertexBuffer) Handle() uint32 {
	return vb.handle
}

func (vb *VertexBuffer) Size() int {
	return vb.size
}

// Float32Bytes views data as raw bytes without copying.
func Float32Bytes(data []float32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*FLOAT_SIZE)
}

func Uint32Bytes(data []uint32) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), len(data)*UINT_SIZE)
}
