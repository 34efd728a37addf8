//go:build !tinygo

package hal

type hostHAL struct {
	fb  *hostFramebuffer
	ptr Pointer
	t   *hostTime
}

func newHostHAL(width, height int, ptr Pointer) *hostHAL {
	return &hostHAL{
		fb:  newHostFramebuffer(width, height),
		ptr: ptr,
		t:   newHostTime(),
	}
}

func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{ptr: h.ptr} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	ptr Pointer
}

func (in hostInput) Pointer() Pointer { return in.ptr }
