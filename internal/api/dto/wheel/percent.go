package wheel

import (
	"bytes"
	"math"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Percent вероятность из формы. Принимает число или строку; как и поле ввода
// на клиенте, берёт целую часть, а нечисловое или пустое значение считает нулём
type Percent int

func (p *Percent) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*p = Percent(clampInt(math.Trunc(num)))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*p = Percent(parseLeadingInt(str))
	return nil
}

// parseLeadingInt целое число в начале строки: "42%" -> 42, "abc" -> 0
func parseLeadingInt(s string) int {
	s = strings.TrimSpace(s)
	sign := 1
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = -1
		}
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > math.MaxInt32 {
			n = math.MaxInt32
		}
	}
	return sign * n
}

func clampInt(f float64) int {
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}
