package shell

import (
	"bytes"

	"github.com/harrison/shellkit/console"
)

// testShell builds a shell whose console writes to in-memory buffers
// and whose exit hook records instead of terminating the process.
func testShell() (*Shell, *bytes.Buffer, *bytes.Buffer, *[]int) {
	var out, errOut bytes.Buffer
	exits := []int{}

	s := New(console.NewWithWriters(&out, &errOut))
	s.exit = func(code int) {
		exits = append(exits, code)
	}
	return s, &out, &errOut, &exits
}
