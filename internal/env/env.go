package env

import (
	"errors"
	"strconv"
)

var ErrKeyNotFound = errors.New("not found")

func Get(key string, f func(key string) (val string)) (string, error) {
	v := f(key)
	if v == "" {
		return "", ErrKeyNotFound
	}

	return v, nil
}

func GetInt(key string, f func(key string) (val string)) (int, error) {
	v, err := Get(key, f)
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(v)
}
