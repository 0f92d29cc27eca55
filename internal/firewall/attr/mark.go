package attr

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const maxMark = 0xffffffff

// ToHex32 formats an integer-like value as a 32-bit hexadecimal mark ("0xff").
// Strings are parsed with base prefixes (0x, 0o, 0b, leading 0). Anything that is not
// an integer in the [0, 0xffffffff] range gives None.
func ToHex32(value any) Value {
	var n uint64

	switch v := value.(type) {
	case int:
		if v < 0 {
			return None()
		}

		n = uint64(v)
	case int8, int16, int32, int64:
		i := toInt64(v)
		if i < 0 {
			return None()
		}

		n = uint64(i)
	case uint:
		n = uint64(v)
	case uint8:
		n = uint64(v)
	case uint16:
		n = uint64(v)
	case uint32:
		n = uint64(v)
	case uint64:
		n = v
	case float32:
		return ToHex32(float64(v))
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > maxMark {
			return None()
		}

		n = uint64(math.Trunc(v))
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(v), 0, 64)
		if err != nil || i < 0 {
			return None()
		}

		n = uint64(i)
	case fmt.Stringer:
		return ToHex32(v.String())
	default:
		return None()
	}

	if n > maxMark {
		return None()
	}

	return Some("0x" + strconv.FormatUint(n, 16))
}

func toInt64(value any) int64 {
	switch v := value.(type) {
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	}

	return 0
}
