package main

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()
	b := new(bytes.Buffer)
	cmd.SetOut(b)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	assert.NoError(t, err)

	out := b.String()
	assert.Contains(t, out, "calc version "+version)
	assert.Contains(t, out, "Commit: "+commit)
	assert.Contains(t, out, "Build Date: "+date)
	assert.Contains(t, out, "Go Version: "+runtime.Version())
	assert.Contains(t, out, "Platform: "+runtime.GOOS+"/"+runtime.GOARCH)
}
