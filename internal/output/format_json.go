package output

import (
	"encoding/json"
)

// JSONFormatter formats engine results as JSON.
type JSONFormatter struct {
	Pretty bool // If true, format with indentation
}

// Format marshals any engine result value.
func (jf *JSONFormatter) Format(value interface{}) (string, error) {
	var data []byte
	var err error

	if jf.Pretty {
		data, err = json.MarshalIndent(value, "", "  ")
	} else {
		data, err = json.Marshal(value)
	}

	if err != nil {
		return "", err
	}
	return string(data), nil
}
