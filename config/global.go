// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"strings"

	cfg "github.com/cnotch/loader"
	"github.com/cnotch/xlog"
)

// 命令名
const (
	Vendor  = "CAOHONGJU"
	Name    = "aotinfo"
	Version = "V1.0.0"
)

var globalC *config

// InitConfig 初始化 Config，依次从环境变量和命令行加载
func InitConfig() {
	globalC = new(config)
	globalC.initFlags()

	if err := cfg.Load(globalC,
		&cfg.EnvLoader{Prefix: strings.ToUpper(Name)},
		&cfg.FlagLoader{}); err != nil {
		// 异常，直接退出
		xlog.Panic(err.Error())
	}

	// 初始化日志
	globalC.Log.initLogger()
}

// ListReserved 是否列出保留值
func ListReserved() bool {
	if globalC == nil {
		return false
	}
	return globalC.Reserved
}
