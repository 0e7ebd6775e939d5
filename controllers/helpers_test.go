package controllers

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func TestParseTagsParam(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"  ", nil},
		{"AI/ML", []string{"AI/ML"}},
		{"AI/ML,IoT", []string{"AI/ML", "IoT"}},
		{" AI/ML , IoT ,", []string{"AI/ML", "IoT"}},
		{",,Energy", []string{"Energy"}},
	}

	for _, tc := range cases {
		got := parseTagsParam(tc.raw)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("parseTagsParam(%q) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestIsDuplicateEntry(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}, true},
		{fmt.Errorf("create: %w", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}), true},
		{gorm.ErrDuplicatedKey, true},
		{&mysql.MySQLError{Number: 1452, Message: "foreign key constraint fails"}, false},
		{errors.New("connection reset"), false},
	}
	for _, tc := range cases {
		if got := isDuplicateEntry(tc.err); got != tc.want {
			t.Errorf("isDuplicateEntry(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}
