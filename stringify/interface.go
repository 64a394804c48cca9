package stringify

import (
	"fmt"
	"reflect"
	"strconv"
)

// Interface returns a human-readable version of the given value.
func Interface(value interface{}) string {
	switch typeCastedValue := value.(type) {
	case bool:
		return strconv.FormatBool(typeCastedValue)
	case string:
		return typeCastedValue
	case int:
		return strconv.FormatInt(int64(typeCastedValue), 10)
	case int8:
		return strconv.FormatInt(int64(typeCastedValue), 10)
	case int16:
		return strconv.FormatInt(int64(typeCastedValue), 10)
	case int32:
		return strconv.FormatInt(int64(typeCastedValue), 10)
	case int64:
		return strconv.FormatInt(typeCastedValue, 10)
	case uint:
		return strconv.FormatUint(uint64(typeCastedValue), 10)
	case uint8:
		return strconv.FormatUint(uint64(typeCastedValue), 10)
	case uint16:
		return strconv.FormatUint(uint64(typeCastedValue), 10)
	case uint32:
		return strconv.FormatUint(uint64(typeCastedValue), 10)
	case uint64:
		return strconv.FormatUint(typeCastedValue, 10)
	case float32:
		return Float32(typeCastedValue)
	case float64:
		return Float64(typeCastedValue)
	case fmt.Stringer:
		return typeCastedValue.String()
	default:
		reflectedValue := reflect.ValueOf(value)
		switch reflectedValue.Kind() {
		case reflect.Bool:
			return strconv.FormatBool(reflectedValue.Bool())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			return strconv.FormatInt(reflectedValue.Int(), 10)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			return strconv.FormatUint(reflectedValue.Uint(), 10)
		case reflect.Float32:
			return Float32(float32(reflectedValue.Float()))
		case reflect.Float64:
			return Float64(reflectedValue.Float())
		case reflect.String:
			return reflectedValue.String()
		case reflect.Struct:
			return fmt.Sprint(value)
		default:
			panic("undefined type: " + reflectedValue.Kind().String())
		}
	}
}
