// Command libgreeting exposes the greeting through the C ABI.
//
// Build it as a library:
//
//	go build -buildmode=c-shared -o libgreeting.so ./cmd/libgreeting
//	go build -buildmode=c-archive -o libgreeting.a ./cmd/libgreeting
//
// The generated header declares:
//
//	char* get_greeting(void);
//	void free_greeting(char* greeting);
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/a-peyrard/greeting"
)

// get_greeting returns a NUL-terminated copy of the greeting allocated with
// malloc. The caller owns it and must release it with free_greeting.
//
//export get_greeting
func get_greeting() *C.char {
	return C.CString(greeting.Get())
}

// free_greeting releases a value returned by get_greeting. NULL is ignored.
//
//export free_greeting
func free_greeting(p *C.char) {
	if p == nil {
		return
	}
	C.free(unsafe.Pointer(p))
}

// main is required by -buildmode=c-shared and c-archive.
func main() {}
