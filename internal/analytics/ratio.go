// internal/analytics/ratio.go
package analytics

import (
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Ratio — результат деления, у которого знаменатель может быть нулевым.
// Невалидное значение (Valid == false) означает "не применимо": например,
// ROI при нулевой сумме выплат. Такое значение никогда не превращается
// в NaN или тихий ноль — все потребители обязаны различать его явно.
type Ratio struct {
	Valid bool
	Value float64
}

// NA возвращает неприменимое значение.
func NA() Ratio {
	return Ratio{}
}

// RatioOf возвращает валидное значение коэффициента.
func RatioOf(v float64) Ratio {
	return Ratio{Valid: true, Value: v}
}

// SafeDiv делит num на den. При нулевом знаменателе возвращает N/A.
func SafeDiv(num, den decimal.Decimal) Ratio {
	if den.IsZero() {
		return NA()
	}
	return RatioOf(num.InexactFloat64() / den.InexactFloat64())
}

// Format возвращает строковое представление с заданной точностью,
// либо "N/A" для неприменимого значения.
func (r Ratio) Format(prec int) string {
	if !r.Valid {
		return "N/A"
	}
	return strconv.FormatFloat(r.Value, 'f', prec, 64)
}

// MarshalJSON сериализует неприменимое значение как null.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if !r.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(r.Value)
}

// UnmarshalJSON восстанавливает значение из null или числа.
func (r *Ratio) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = NA()
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*r = RatioOf(v)
	return nil
}
