// Command libglot builds the C-callable translation engine:
//
//	go build -buildmode=c-shared -o libglot.so ./cmd/libglot
//
// The public surface is declared in glot.h. Handles are opaque integers
// managed by the Go side; strings returned to C are owned by the caller and
// released through glot_free_string. Errors are reported through the
// thread-local slot in lasterror.c.
package main

func main() {}
