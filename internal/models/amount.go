package models

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Amount 统一金额类型（保留 2 位小数）
type Amount struct {
	decimal.Decimal
}

// NewAmountFromDecimal 从 decimal 创建金额
func NewAmountFromDecimal(value decimal.Decimal) Amount {
	return Amount{Decimal: value.Round(2)}
}

// ParseAmount 从字符串解析金额，空串返回零值
func ParseAmount(raw string) (Amount, error) {
	if raw == "" {
		return Amount{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Amount{}, err
	}
	return NewAmountFromDecimal(d), nil
}

// MarshalJSON 统一输出 2 位小数的字符串
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Decimal.Round(2).StringFixed(2))
}

// UnmarshalJSON 解析金额（字符串或数字）
func (a *Amount) UnmarshalJSON(b []byte) error {
	d, err := unmarshalDecimal(b)
	if err != nil {
		return err
	}
	a.Decimal = d.Round(2)
	return nil
}

// Value 用于数据库写入
func (a Amount) Value() (driver.Value, error) {
	return a.Decimal.Round(2).Value()
}

// Scan 用于数据库读取
func (a *Amount) Scan(value interface{}) error {
	if err := a.Decimal.Scan(value); err != nil {
		return err
	}
	a.Decimal = a.Decimal.Round(2)
	return nil
}

// String 返回 2 位小数格式
func (a Amount) String() string {
	return a.Decimal.Round(2).StringFixed(2)
}

// Rate 汇率类型（保留 4 位小数）
type Rate struct {
	decimal.Decimal
}

// NewRateFromDecimal 从 decimal 创建汇率
func NewRateFromDecimal(value decimal.Decimal) Rate {
	return Rate{Decimal: value.Round(4)}
}

// ParseRate 从字符串解析汇率，空串返回零值
func ParseRate(raw string) (Rate, error) {
	if raw == "" {
		return Rate{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return Rate{}, err
	}
	return NewRateFromDecimal(d), nil
}

// MarshalJSON 统一输出 4 位小数的字符串
func (r Rate) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Decimal.Round(4).StringFixed(4))
}

// UnmarshalJSON 解析汇率（字符串或数字）
func (r *Rate) UnmarshalJSON(b []byte) error {
	d, err := unmarshalDecimal(b)
	if err != nil {
		return err
	}
	r.Decimal = d.Round(4)
	return nil
}

// Value 用于数据库写入
func (r Rate) Value() (driver.Value, error) {
	return r.Decimal.Round(4).Value()
}

// Scan 用于数据库读取
func (r *Rate) Scan(value interface{}) error {
	if err := r.Decimal.Scan(value); err != nil {
		return err
	}
	r.Decimal = r.Decimal.Round(4)
	return nil
}

// String 返回 4 位小数格式
func (r Rate) String() string {
	return r.Decimal.Round(4).StringFixed(4)
}

func unmarshalDecimal(b []byte) (decimal.Decimal, error) {
	if len(b) == 0 {
		return decimal.Decimal{}, nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return decimal.Decimal{}, err
		}
		if s == "" {
			return decimal.Decimal{}, nil
		}
		return decimal.NewFromString(s)
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return decimal.Decimal{}, err
	}
	return decimal.NewFromFloat(f), nil
}
