// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/cnotch/mpeg4audio/av/codec/aac"
	"github.com/cnotch/xlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCode(t *testing.T) {
	tests := []struct {
		arg     string
		want    byte
		wantErr bool
	}{
		{"2", 2, false},
		{"0x1f", 31, false},
		{"0b11111", 31, false},
		{"0o37", 31, false},
		{"255", 255, false},
		{"256", 0, true},
		{"-1", 0, true},
		{"lc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseCode(tt.arg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	list(&buf, false)
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(aac.ObjectTypes()))
	assert.Equal(t, "0\tNULL(0)\tNull", lines[0])
	assert.Equal(t, "2\tAAC_LC(2)\tAAC LC", lines[2])

	buf.Reset()
	list(&buf, true)
	lines = strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, aac.MaxObjectType) // 0..95 去掉 escape
	assert.Equal(t, "10\tRESERVED(10)\t", lines[10])
	assert.Equal(t, "95\tRESERVED(95)\t", lines[len(lines)-1])
	for _, line := range lines {
		assert.False(t, strings.HasPrefix(line, strconv.Itoa(aac.AOT_ESCAPE_VALUE)+"\t"))
	}
}

func TestCheck(t *testing.T) {
	var buf bytes.Buffer
	code := check(&buf, xlog.L(), []string{"2", "0x5f"})
	assert.Equal(t, 0, code)
	assert.Equal(t, "2\tAAC_LC(2)\tAAC LC\n95\tRESERVED(95)\t\n", buf.String())

	buf.Reset()
	code = check(&buf, xlog.L(), []string{"31", "42", "97", "x"})
	assert.Equal(t, 1, code)
	assert.Equal(t, "42\tUSAC(42)\tUnified Speech and Audio Coding\n", buf.String())
}
