// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aac

import "strconv"

// ObjectType MPEG-4 audio object type 指示值。
//
// 合法值为 [0,95] 且不等于 AOT_ESCAPE_VALUE；表中未命名的值为保留值，
// 可以持有并原样往返。
type ObjectType uint8

// ObjectTypeFromByte 从字段原始字节构造 ObjectType。
// 31 返回 ErrEscapeValue 错误，>=96 返回 ErrTooLarge 错误并携带原值。
func ObjectTypeFromByte(b byte) (ObjectType, error) {
	switch {
	case b == AOT_ESCAPE_VALUE:
		return 0, &ObjectTypeError{Kind: ErrEscapeValue, Value: b}
	case b > MaxObjectType:
		return 0, &ObjectTypeError{Kind: ErrTooLarge, Value: b}
	}
	return ObjectType(b), nil
}

// ObjectTypes 返回所有已命名的 ObjectType，按编码升序。
func ObjectTypes() []ObjectType {
	aots := make([]ObjectType, len(objectTypeEntries))
	for i := range objectTypeEntries {
		aots[i] = objectTypeEntries[i].aot
	}
	return aots
}

// Byte 返回字段原始字节
func (aot ObjectType) Byte() byte {
	return byte(aot)
}

func (aot ObjectType) entry() *objectTypeEntry {
	if int(aot) < len(objectTypeTable) {
		return objectTypeTable[aot]
	}
	return nil
}

// Name 返回标识名，如 "AAC_LC"；保留值返回空串。
func (aot ObjectType) Name() string {
	if e := aot.entry(); e != nil {
		return e.name
	}
	return ""
}

// Description 返回描述，如 "AAC LC"；保留值返回空串。
func (aot ObjectType) Description() string {
	if e := aot.entry(); e != nil {
		return e.desc
	}
	return ""
}

// IsReserved 是否为未命名的保留值
func (aot ObjectType) IsReserved() bool {
	return aot.entry() == nil
}

// IsErrorResilient 是否为 Error Resilient (ER) 类型
func (aot ObjectType) IsErrorResilient() bool {
	if aot.IsReserved() {
		return false
	}
	return (aot >= AOT_ER_AAC_LC && aot <= AOT_ER_PARAMETRIC) || aot == AOT_ER_AAC_ELD
}

// String 诊断用格式，如 "AAC_LC(2)"、"RESERVED(95)"。
func (aot ObjectType) String() string {
	name := "RESERVED"
	if e := aot.entry(); e != nil {
		name = e.name
	}
	return name + "(" + strconv.Itoa(int(aot)) + ")"
}

// GoString 使 %#v 与 String 一致
func (aot ObjectType) GoString() string {
	return aot.String()
}
