// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package config

import (
	"flag"
)

// config 命令配置
type config struct {
	Reserved bool      `json:"reserved"` // 列表中包含保留值
	Log      LogConfig `json:"log"`      // 日志配置
}

func (c *config) initFlags() {
	flag.BoolVar(&c.Reserved, "reserved", false,
		"Determines if reserved audio object types should be listed")

	// 初始化日志配置
	c.Log.initFlags()
}
