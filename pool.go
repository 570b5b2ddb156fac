// pool.go - Only for internal buffer reuse
package vietqr

import (
	"bytes"
	"sync"
)

var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 256))
	},
}

// Only pool buffers, never payload strings
func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() <= 1024 { // Don't pool huge buffers
		buf.Reset()
		bufferPool.Put(buf)
	}
}
