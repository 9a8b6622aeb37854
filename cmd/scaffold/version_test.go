package main

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionString(t *testing.T) {
	s := versionString()

	assert.True(t, strings.HasPrefix(s, "scaffold "))
	assert.Contains(t, s, runtime.Version())
	assert.Contains(t, s, runtime.GOOS+"/"+runtime.GOARCH)
}
