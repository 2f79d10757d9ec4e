package namegen

import (
	"sync"

	"github.com/chronos-tachyon/assert"
)

var bytesPool = sync.Pool{
	New: func() interface{} {
		ptr := new([]byte)
		*ptr = make([]byte, 0, 256)
		return ptr
	},
}

func takeBytes(n int) *[]byte {
	ptr := bytesPool.Get().(*[]byte)
	if cap(*ptr) < n {
		*ptr = make([]byte, n)
	}
	*ptr = (*ptr)[:n]
	return ptr
}

func giveBytes(ptr *[]byte) {
	assert.NotNil(&ptr)
	assert.NotNil(ptr)
	*ptr = (*ptr)[:0]
	bytesPool.Put(ptr)
}
