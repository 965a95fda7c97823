package dialect

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/artie-labs/brickbyte/lib/config/constants"
	"github.com/artie-labs/brickbyte/lib/jsonutil"
)

// QuoteLiteral doubles every single quote and then wraps the value in single quotes.
func QuoteLiteral(value string) string {
	return fmt.Sprintf("'%s'", strings.ReplaceAll(value, "'", "''"))
}

// FormatTimestamp returns the canonical textual form of a timestamp, e.g. 2024-01-02 03:04:05.123456+00:00
// The fraction is omitted when there are no microseconds, otherwise it is padded to six digits.
func FormatTimestamp(ts time.Time) string {
	if ts.Nanosecond()/int(time.Microsecond) == 0 {
		return ts.Format(constants.TimestampLayout)
	}

	return ts.Format(constants.TimestampMicrosLayout)
}

func formatFloat(value float64, bitSize int) (string, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return "", fmt.Errorf("non-finite number %v cannot be written as a literal", value)
	}

	return strconv.FormatFloat(value, 'g', -1, bitSize), nil
}

// QuoteValue converts [value] into a SQL literal.
func QuoteValue(value any) (string, error) {
	switch castedValue := value.(type) {
	case nil:
		return "NULL", nil
	case string:
		return QuoteLiteral(castedValue), nil
	case map[string]any, []any:
		encoded, err := jsonutil.MarshalSpaced(castedValue)
		if err != nil {
			return "", fmt.Errorf("failed to marshal value: %w", err)
		}
		return QuoteLiteral(encoded), nil
	case time.Time:
		return QuoteLiteral(FormatTimestamp(castedValue)), nil
	case bool:
		return strconv.FormatBool(castedValue), nil
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(castedValue), nil
	case float32:
		return formatFloat(float64(castedValue), 32)
	case float64:
		return formatFloat(castedValue, 64)
	case json.Number:
		parsed, err := castedValue.Float64()
		if err != nil {
			return "", fmt.Errorf("invalid number %q: %w", castedValue, err)
		}
		if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
			return "", fmt.Errorf("invalid number %q: non-finite", castedValue)
		}
		return castedValue.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}
