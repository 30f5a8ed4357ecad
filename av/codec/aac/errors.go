// Copyright (c) 2019,CAOHONGJU All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aac

import "fmt"

// ErrorKind ObjectType 转换失败的类型
type ErrorKind int

// 转换错误类型
const (
	// ErrEscapeValue 传入了 escape 值 31
	ErrEscapeValue ErrorKind = iota + 1
	// ErrTooLarge 传入值 >= 96
	ErrTooLarge
)

func (k ErrorKind) String() string {
	switch k {
	case ErrEscapeValue:
		return "EscapeValue"
	case ErrTooLarge:
		return "TooLarge"
	default:
		return "ErrorKind(" + fmt.Sprint(int(k)) + ")"
	}
}

// ObjectTypeError 字节转换为 ObjectType 失败。
// Value 为原始输入字节。
type ObjectTypeError struct {
	Kind  ErrorKind
	Value uint8
}

// 用于 errors.Is 比较，只比较 Kind
var (
	ErrEscape             error = &ObjectTypeError{Kind: ErrEscapeValue, Value: AOT_ESCAPE_VALUE}
	ErrObjectTypeTooLarge error = &ObjectTypeError{Kind: ErrTooLarge}
)

func (e *ObjectTypeError) Error() string {
	switch e.Kind {
	case ErrEscapeValue:
		return fmt.Sprintf("aac: audio object type %d is the escape value", e.Value)
	case ErrTooLarge:
		return fmt.Sprintf("aac: audio object type %d too large (max %d)", e.Value, MaxObjectType)
	default:
		return fmt.Sprintf("aac: invalid audio object type %d", e.Value)
	}
}

// Is 同类错误视为相等
func (e *ObjectTypeError) Is(target error) bool {
	t, ok := target.(*ObjectTypeError)
	return ok && t.Kind == e.Kind
}
