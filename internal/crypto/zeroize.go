package crypto

import "runtime"

// Zeroize overwrites the slice with zeros and prevents the stores from
// being eliminated as dead, per golang/go#33325. Go's garbage collector
// may still have copied the buffer elsewhere; this is the strongest
// erasure the runtime allows.
func Zeroize(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
