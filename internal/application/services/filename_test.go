package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_sanitizeFileName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"car.jpg", "car.jpg"},
		{"Meu Carro.PNG", "meu-carro.png"},
		{"São Paulo é ótima.jpeg", "sao-paulo-e-otima.jpeg"},
		{"../../../etc/passwd", "passwd"},
		{"C:\\Users\\ana\\foto.png", "foto.png"},
		{"___weird---name___.jpg", "weird-name.jpg"},
		{"", "file"},
		{"...", "file"},
		{"????.png", "file.png"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, sanitizeFileName(c.in), "in=%q", c.in)
	}
}

func Test_sanitizeFileName_Truncates(t *testing.T) {
	long := strings.Repeat("a", 300) + ".png"
	got := sanitizeFileName(long)
	assert.LessOrEqual(t, len(got), maxBaseNameLen)
	assert.True(t, strings.HasSuffix(got, ".png"))
}
