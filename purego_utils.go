//go:build (darwin || linux) && !cgo

// Shared utilities for the purego libvlc binding.

package vlcplayer

import (
	"os"
	"path/filepath"
	"runtime"
	"unsafe"
)

// goStringFromPtr converts a C string pointer to a Go string.
func goStringFromPtr(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	p := unsafe.Pointer(ptr)
	var length int
	for {
		if *(*byte)(unsafe.Add(p, length)) == 0 {
			break
		}
		length++
		if length > 4096 { // Safety limit
			break
		}
	}
	if length == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), length))
}

// cString returns a NUL-terminated copy of s. The caller must keep the
// slice alive for as long as native code may read it.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

// cStringArray builds a char** for argv-style arguments. Both return values
// must be kept alive across the native call.
func cStringArray(args []string) ([]uintptr, [][]byte) {
	if len(args) == 0 {
		return nil, nil
	}
	ptrs := make([]uintptr, len(args))
	bufs := make([][]byte, len(args))
	for i, a := range args {
		bufs[i] = cString(a)
		ptrs[i] = uintptr(unsafe.Pointer(&bufs[i][0]))
	}
	return ptrs, bufs
}

// findModuleRoot walks up the directory tree from the current working directory
// to find the module root (directory containing go.mod).
func findModuleRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// findSourceRoot returns the directory containing this source file.
func findSourceRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	return filepath.Dir(file)
}
