package dtos

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
)

// Clients send either native JSON types or their stringified
// equivalents (form serializers and older admin clients do both), so
// payload fields coerce before constraint checking.

// FlexInt accepts 7 and "7".
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if str == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(str)
		if err != nil {
			return errors.Wrap(err, "not a number")
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

// FlexBool accepts true and "true".
type FlexBool bool

func (f *FlexBool) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		b, err := strconv.ParseBool(str)
		if err != nil {
			return errors.Wrap(err, "not a boolean")
		}
		*f = FlexBool(b)
		return nil
	}
	var b bool
	if err := json.Unmarshal(data, &b); err != nil {
		return err
	}
	*f = FlexBool(b)
	return nil
}

// StringList accepts ["a"] and "[\"a\"]".
type StringList []string

func (f *StringList) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if str == "" {
			*f = nil
			return nil
		}
		var values []string
		if err := json.Unmarshal([]byte(str), &values); err != nil {
			return errors.Wrap(err, "not a string list")
		}
		*f = values
		return nil
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*f = values
	return nil
}

// StringMap accepts {"k":"v"} and "{\"k\":\"v\"}".
type StringMap map[string]string

func (f *StringMap) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = nil
		return nil
	}
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		if str == "" {
			*f = nil
			return nil
		}
		var values map[string]string
		if err := json.Unmarshal([]byte(str), &values); err != nil {
			return errors.Wrap(err, "not a string map")
		}
		*f = values
		return nil
	}
	var values map[string]string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*f = values
	return nil
}
