package render

// VertexArray owns one vertex array object. Attribute indices are handed
// out in order across every buffer added to it.
type VertexArray struct {
	device      *Device
	handle      uint32
	attribCount uint32
}

func NewVertexArray(d *Device) *VertexArray {
	va := &VertexArray{device: d}

	d.Call("GenVertexArrays", func() { va.handle = d.GL.GenVertexArray() })
	if va.handle == 0 {
		Logger().Error("Failed to create OpenGL vertex array object")
	}
	return va
}

// AddBuffer records vb in the vertex array with one attribute per layout
// element.
func (va *VertexArray) AddBuffer(vb *VertexBuffer, layout *VertexBufferLayout) {
	va.Bind()
	vb.Bind()

	gl := va.device.GL
	stride := layout.Stride()
	for _, element := range layout.Elements() {
		index := va.attribCount
		va.device.Call("EnableVertexAttribArray", func() { gl.EnableVertexAttribArray(index) })
		va.device.Call("VertexAttribPointer", func() {
			gl.VertexAttribPointer(index, element.Count, element.Type, element.Normalized, stride, element.Offset)
		})
		va.attribCount++
	}
}

func (va *VertexArray) Bind() {
	va.device.Call("BindVertexArray", func() { va.device.GL.BindVertexArray(va.handle) })
}

func (va *VertexArray) Unbind() {
	va.device.Call("BindVertexArray", func() { va.device.GL.BindVertexArray(0) })
}

// Delete releases the handle. Later calls do nothing.
func (va *VertexArray) Delete() {
	if va.handle == 0 {
		return
	}
	va.device.Call("DeleteVertexArrays", func() { va.device.GL.DeleteVertexArray(va.handle) })
	va.handle = 0
}

func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// AttribCount is the number of attributes configured so far.
func (va *VertexArray) AttribCount() uint32 {
	return va.attribCount
}
