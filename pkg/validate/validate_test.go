package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"a@b.com", true},
		{"first.last@example.co.uk", true},
		{"UPPER@EXAMPLE.COM", true},
		{"user@[192.168.0.1]", true},
		{"no-at-sign", false},
		{"missing@tld", false},
		{"two@@example.com", false},
		{"@example.com", false},
		{"spaces in@example.com", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Email(c.email), "email %q", c.email)
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		phone string
		want  bool
	}{
		{"123-456-7890", true},
		{"1234567890", true},
		{"(123) 456-7890", true},
		{"+91 123 456 7890", true},
		{"123.456.7890", true},
		{"4567890", true},
		{"12345", false},
		{"phone", false},
		{"", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Phone(c.phone), "phone %q", c.phone)
	}
}

func TestPassword(t *testing.T) {
	cases := []struct {
		name     string
		password string
		want     bool
	}{
		{"valid", "Pass123!", true},
		{"valid max length", "Abcdefg1234!@#$", true},
		{"too short", "Ab1!", false},
		{"too long", "Abcdefg1234!@#$%", false},
		{"missing digit", "Password!", false},
		{"missing letter", "12345678!", false},
		{"missing symbol", "Password1", false},
		{"disallowed character", "Pass123!$ space", false},
		{"disallowed symbol", "Pass123?", false},
		{"empty", "", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Password(c.password))
		})
	}
}
