package render

// IndexBuffer owns one ELEMENT_ARRAY_BUFFER handle and remembers how many
// indices it holds.
type IndexBuffer struct {
	device *Device
	handle uint32
	count  int32
}

func NewIndexBuffer(d *Device, indices []uint32) *IndexBuffer {
	ib := &IndexBuffer{
		device: d,
		count:  int32(len(indices)),
	}

	d.Call("GenBuffers", func() { ib.handle = d.GL.GenBuffer() })
	if ib.handle == 0 {
		Logger().Error("Failed to create OpenGL index buffer")
	}
	d.Call("BindBuffer", func() { d.GL.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.handle) })
	d.Call("BufferData", func() { d.GL.BufferData(ELEMENT_ARRAY_BUFFER, Uint32Bytes(indices), STATIC_DRAW) })
	return ib
}

func (ib *IndexBuffer) Bind() {
	ib.device.Call("BindBuffer", func() { ib.device.GL.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.handle) })
}

func (ib *IndexBuffer) Unbind() {
	ib.device.Call("BindBuffer", func() { ib.device.GL.BindBuffer(ELEMENT_ARRAY_BUFFER, 0) })
}

// Delete releases the handle. Later calls do nothing.
func (ib *IndexBuffer) Delete() {
	if ib.handle == 0 {
		return
	}
	ib.device.Call("DeleteBuffers", func() { ib.device.GL.DeleteBuffer(ib.handle) })
	ib.handle = 0
}

func (ib *IndexBuffer) Handle() uint32 {
	return ib.handle
}

// Count is the number of indices, used as the DrawElements count.
func (ib *IndexBuffer) Count() int32 {
	return ib.count
}
