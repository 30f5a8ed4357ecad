// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// aotinfo 列出或校验 MPEG-4 audio object type。
//
//	aotinfo [-reserved] [code...]
//
// code 支持 2、0x1f、0b11111、0o37 等写法。
package main

import (
	"flag"
	"os"

	"github.com/cnotch/mpeg4audio/config"
	"github.com/cnotch/xlog"
)

func main() {
	// 初始化配置
	config.InitConfig()

	var code int
	if args := flag.Args(); len(args) > 0 {
		code = check(os.Stdout, xlog.L(), args)
	} else {
		list(os.Stdout, config.ListReserved())
	}
	os.Exit(code)
}
