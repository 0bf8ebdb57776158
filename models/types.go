/*
 * @Author: kamalyes 501893067@qq.com
 * @Date: 2025-11-20 09:31:08
 * @LastEditors: kamalyes 501893067@qq.com
 * @LastEditTime: 2026-02-24 10:02:15
 * @FilePath: \go-fishpi\models\types.go
 * @Description: 宽松 JSON 字段类型，兼容站点返回的多种编码形式
 *
 * Copyright (c) 2025 by kamalyes, All Rights Reserved.
 */
package models

import (
	"strings"

	json "github.com/goccy/go-json"
)

// IntBool 非零即真的布尔字段，站点以 0/1 编码
type IntBool bool

// UnmarshalJSON 实现 json.Unmarshaler，兼容数字与布尔字面量
func (b *IntBool) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*b = n != 0
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*b = IntBool(v)
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (b IntBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// ZeroBool 零值即真的布尔字段，站点用 0 表示开启
type ZeroBool bool

// UnmarshalJSON 实现 json.Unmarshaler
func (b *ZeroBool) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*b = n == 0
	return nil
}

// MarshalJSON 实现 json.Marshaler
func (b ZeroBool) MarshalJSON() ([]byte, error) {
	if b {
		return []byte("0"), nil
	}
	return []byte("1"), nil
}

// StringList 兼容单个字符串与字符串数组两种形式的字段
type StringList []string

// UnmarshalJSON 实现 json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "[") {
		var items []string
		if err := json.Unmarshal(data, &items); err != nil {
			return err
		}
		*l = items
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*l = StringList{single}
	return nil
}

// FlexString 兼容数字与字符串两种形式的字段
type FlexString string

// UnmarshalJSON 实现 json.Unmarshaler
func (s *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "\"") {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	*s = FlexString(trimmed)
	return nil
}

// String 实现Stringer接口
func (s FlexString) String() string {
	return string(s)
}
