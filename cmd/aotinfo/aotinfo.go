// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cnotch/mpeg4audio/av/codec/aac"
	"github.com/cnotch/xlog"
)

func printObjectType(w io.Writer, aot aac.ObjectType) {
	fmt.Fprintf(w, "%d\t%v\t%s\n", aot.Byte(), aot, aot.Description())
}

// list 输出全部已命名的 AOT；reserved 为 true 时按编码顺序插入保留值
func list(w io.Writer, reserved bool) {
	if !reserved {
		for _, aot := range aac.ObjectTypes() {
			printObjectType(w, aot)
		}
		return
	}

	for b := 0; b <= aac.MaxObjectType; b++ {
		aot, err := aac.ObjectTypeFromByte(byte(b))
		if err != nil { // escape
			continue
		}
		printObjectType(w, aot)
	}
}

func parseCode(s string) (byte, error) {
	v, err := strconv.ParseUint(s, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid code %q: %w", s, err)
	}
	return byte(v), nil
}

// check 校验每个参数，返回进程退出码
func check(w io.Writer, l *xlog.Logger, args []string) int {
	code := 0
	for _, arg := range args {
		b, err := parseCode(arg)
		if err != nil {
			l.Errorf("%v", err)
			code = 1
			continue
		}

		aot, err := aac.ObjectTypeFromByte(b)
		if err != nil {
			l.Errorf("code %s rejected: %v", arg, err)
			code = 1
			continue
		}
		printObjectType(w, aot)
	}
	return code
}
