package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList 表示以 JSON 文本形式持久化的字符串列表字段（例如文章标签）。
// 编码/解码发生在持久化边界：数据库中存储的是 JSON 数组文本，
// 解码失败或字段为空时静默回落为空列表，不向上层抛错。
type StringList []string

// Value 实现 driver.Valuer，将列表编码为 JSON 文本写入数据库。
// 空列表写入 NULL。
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan 实现 sql.Scanner，从数据库读取 JSON 文本并解码。
// NULL、空串或非法 JSON 一律解码为空列表。
func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = StringList{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case string:
		data = []byte(v)
	case []byte:
		data = v
	default:
		return fmt.Errorf("StringList: 不支持的扫描类型 %T", src)
	}

	if len(data) == 0 {
		*l = StringList{}
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		// 历史数据可能存有非法 JSON，按空列表处理
		*l = StringList{}
		return nil
	}
	if items == nil {
		items = []string{}
	}
	*l = StringList(items)
	return nil
}
