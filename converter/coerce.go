package converter

import (
	"fmt"
	"github.com/viant/toolbox"
	"math"
	"strconv"
	"strings"
	"time"
)

//AsString coerces value to string
func AsString(value interface{}) string {
	return toolbox.AsString(value)
}

//AsInt coerces value to int64, fractional numbers are rejected
func AsInt(value interface{}) (int64, error) {
	switch actual := value.(type) {
	case int:
		return int64(actual), nil
	case int8:
		return int64(actual), nil
	case int16:
		return int64(actual), nil
	case int32:
		return int64(actual), nil
	case int64:
		return actual, nil
	case uint:
		return int64(actual), nil
	case uint8:
		return int64(actual), nil
	case uint16:
		return int64(actual), nil
	case uint32:
		return int64(actual), nil
	case uint64:
		return int64(actual), nil
	case float32:
		return floatAsInt(float64(actual))
	case float64:
		return floatAsInt(actual)
	case bool:
		if actual {
			return 1, nil
		}
		return 0, nil
	case []byte:
		return textAsInt(string(actual))
	case string:
		return textAsInt(actual)
	}
	asInt, err := toolbox.ToInt(value)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %T to int, %w", value, err)
	}
	return int64(asInt), nil
}

func floatAsInt(value float64) (int64, error) {
	if value != math.Trunc(value) {
		return 0, fmt.Errorf("unable to convert %v to int, fraction present", value)
	}
	return int64(value), nil
}

func textAsInt(text string) (int64, error) {
	text = strings.TrimSpace(text)
	if asInt, err := strconv.ParseInt(text, 10, 64); err == nil {
		return asInt, nil
	}
	asFloat, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to int", text)
	}
	return floatAsInt(asFloat)
}

//AsFloat coerces value to float64
func AsFloat(value interface{}) (float64, error) {
	switch actual := value.(type) {
	case float64:
		return actual, nil
	case float32:
		return float64(actual), nil
	case int:
		return float64(actual), nil
	case int64:
		return float64(actual), nil
	case uint64:
		return float64(actual), nil
	case []byte:
		return strconv.ParseFloat(strings.TrimSpace(string(actual)), 64)
	case string:
		return strconv.ParseFloat(strings.TrimSpace(actual), 64)
	}
	asFloat, err := toolbox.ToFloat(value)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %T to float, %w", value, err)
	}
	return asFloat, nil
}

//AsBool coerces value to bool accepting common textual and numeric forms
func AsBool(value interface{}) (bool, error) {
	switch actual := value.(type) {
	case bool:
		return actual, nil
	case string:
		return textAsBool(actual)
	case []byte:
		return textAsBool(string(actual))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		asInt, _ := AsInt(actual)
		return intAsBool(asInt)
	case float32, float64:
		asFloat, _ := AsFloat(actual)
		if asFloat != math.Trunc(asFloat) {
			return false, fmt.Errorf("unable to convert %v to bool", actual)
		}
		return intAsBool(int64(asFloat))
	}
	return false, fmt.Errorf("unable to convert %T to bool", value)
}

func textAsBool(text string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, nil
	case "false", "f", "no", "n", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("unable to convert %q to bool", text)
}

func intAsBool(value int64) (bool, error) {
	switch value {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, fmt.Errorf("unable to convert %v to bool", value)
}

//AsTime coerces value to time.Time using supplied layout, RFC3339 is the default
func AsTime(value interface{}, layout string) (time.Time, error) {
	if layout == "" {
		layout = time.RFC3339
	}
	switch actual := value.(type) {
	case time.Time:
		return actual, nil
	case *time.Time:
		return *actual, nil
	}
	asTime, err := toolbox.ToTime(value, layout)
	if err != nil {
		return time.Time{}, err
	}
	return *asTime, nil
}
