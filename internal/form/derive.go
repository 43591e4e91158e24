package form

import (
	"strings"

	"github.com/jagannathit007/BSock-admin-sub004/internal/constants"

	"github.com/shopspring/decimal"
)

// tripleField 三元组内的字段位置
type tripleField int

const (
	tripleFieldNone tripleField = iota
	tripleFieldUSD
	tripleFieldRate
	tripleFieldLocal
)

// triple 单个地区的联动三元组：美元金额、汇率、本币金额（原始文本）
type triple struct {
	USD   string
	Rate  string
	Local string
}

// tripleRule 补全规则：当目标字段不是本次编辑的字段、且两个操作数均有效时，
// 以两位（金额）或四位（汇率）小数写回目标字段。规则按声明顺序求值，首条命中即止。
type tripleRule struct {
	name    string
	target  tripleField
	compute func(t triple) (string, bool)
}

// 规则顺序即优先级：先补本币，再补美元，最后补汇率。
// 编辑中的字段永远不会被任何规则改写，保证用户最后一次输入不被覆盖。
var tripleRules = []tripleRule{
	{
		name:   "localFromUSD",
		target: tripleFieldLocal,
		compute: func(t triple) (string, bool) {
			usd, ok := parsePositive(t.USD)
			if !ok {
				return "", false
			}
			rate, ok := parsePositive(t.Rate)
			if !ok {
				return "", false
			}
			return usd.Mul(rate).Round(2).StringFixed(2), true
		},
	},
	{
		name:   "usdFromLocal",
		target: tripleFieldUSD,
		compute: func(t triple) (string, bool) {
			local, ok := parsePositive(t.Local)
			if !ok {
				return "", false
			}
			rate, ok := parsePositive(t.Rate)
			if !ok {
				return "", false
			}
			return local.Div(rate).Round(2).StringFixed(2), true
		},
	},
	{
		name:   "rateFromAmounts",
		target: tripleFieldRate,
		compute: func(t triple) (string, bool) {
			usd, ok := parsePositive(t.USD)
			if !ok {
				return "", false
			}
			local, ok := parsePositive(t.Local)
			if !ok {
				return "", false
			}
			return local.Div(usd).Round(4).StringFixed(4), true
		},
	},
}

// solveTriple 求解三元组：少于两个有效值时原样返回；否则按规则链补全缺口。
// 无法解析或非正数的值一律按缺失处理，因此不存在除零分支，也不会返回错误。
func solveTriple(t triple, edited tripleField) triple {
	if presentCount(t) < 2 {
		return t
	}
	for _, rule := range tripleRules {
		if rule.target == edited {
			continue
		}
		value, ok := rule.compute(t)
		if !ok {
			continue
		}
		switch rule.target {
		case tripleFieldUSD:
			t.USD = value
		case tripleFieldRate:
			t.Rate = value
		case tripleFieldLocal:
			t.Local = value
		}
		return t
	}
	return t
}

func presentCount(t triple) int {
	count := 0
	for _, raw := range []string{t.USD, t.Rate, t.Local} {
		if _, ok := parsePositive(raw); ok {
			count++
		}
	}
	return count
}

func parsePositive(raw string) (decimal.Decimal, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(trimmed)
	if err != nil || !d.IsPositive() {
		return decimal.Decimal{}, false
	}
	return d, true
}

// DeriveRow 对单行执行推导：被编辑字段属于某地区三元组时求解该三元组
// （另一地区不受影响），随后无条件重推交货地。纯函数，入参行不被修改。
func DeriveRow(row ProductRow, editedField string) ProductRow {
	switch editedField {
	case FieldHKUsd, FieldHKXe, FieldHKHkd:
		t := solveTriple(triple{USD: row.HKUsd, Rate: row.HKXe, Local: row.HKHkd}, tripleFieldFor(editedField))
		row.HKUsd, row.HKXe, row.HKHkd = t.USD, t.Rate, t.Local
	case FieldDubaiUsd, FieldDubaiXe, FieldDubaiAed:
		t := solveTriple(triple{USD: row.DubaiUsd, Rate: row.DubaiXe, Local: row.DubaiAed}, tripleFieldFor(editedField))
		row.DubaiUsd, row.DubaiXe, row.DubaiAed = t.USD, t.Rate, t.Local
	}
	row.DeliveryLocations = deriveDeliveryLocations(row)
	return row
}

func tripleFieldFor(field string) tripleField {
	switch field {
	case FieldHKUsd, FieldDubaiUsd:
		return tripleFieldUSD
	case FieldHKXe, FieldDubaiXe:
		return tripleFieldRate
	case FieldHKHkd, FieldDubaiAed:
		return tripleFieldLocal
	default:
		return tripleFieldNone
	}
}

// deriveDeliveryLocations 重推交货地集合：某地区任一金额字段有值即包含该地区，
// 顺序固定为香港在前、迪拜在后。整体替换旧值，不做合并。
func deriveDeliveryLocations(row ProductRow) []string {
	locations := make([]string, 0, 2)
	if hasAmount(row.HKUsd) || hasAmount(row.HKHkd) {
		locations = append(locations, constants.RegionHongKong)
	}
	if hasAmount(row.DubaiUsd) || hasAmount(row.DubaiAed) {
		locations = append(locations, constants.RegionDubai)
	}
	return locations
}

// hasAmount 金额是否视为有值：去空白后非空，且若可解析为数字则不为零。
func hasAmount(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return false
	}
	if d, err := decimal.NewFromString(trimmed); err == nil && d.IsZero() {
		return false
	}
	return true
}
