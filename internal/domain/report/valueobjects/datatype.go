package valueobjects

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DataType is the declared type of a custom report field.
type DataType string

const (
	DataTypeText    DataType = "text"
	DataTypeNumber  DataType = "number"
	DataTypeDate    DataType = "date"
	DataTypeBoolean DataType = "boolean"
)

func (d DataType) String() string { return string(d) }

func (d DataType) IsValid() bool {
	switch d {
	case DataTypeText, DataTypeNumber, DataTypeDate, DataTypeBoolean:
		return true
	}
	return false
}

// NormalizeValue checks value against the type and returns its canonical form.
func (d DataType) NormalizeValue(value string) (string, error) {
	v := strings.TrimSpace(value)
	switch d {
	case DataTypeText:
		return value, nil
	case DataTypeNumber:
		f, err := strconv.ParseFloat(strings.Replace(v, ",", ".", 1), 64)
		if err != nil {
			return "", fmt.Errorf("value %q is not a number", value)
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	case DataTypeDate:
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return "", fmt.Errorf("value %q is not a date (YYYY-MM-DD)", value)
		}
		return t.Format("2006-01-02"), nil
	case DataTypeBoolean:
		switch strings.ToLower(v) {
		case "sim", "s":
			return "true", nil
		case "nao", "não", "n":
			return "false", nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return "", fmt.Errorf("value %q is not a boolean", value)
		}
		return strconv.FormatBool(b), nil
	default:
		return "", fmt.Errorf("invalid data type: %s", d)
	}
}
