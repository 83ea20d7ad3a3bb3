package s3_test

import (
	"fieldservice/infras/s3"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectURLAndKey(t *testing.T) {
	url := s3.ObjectURL("https://cdn.example.com/", "customers/logos/CUS-1A2B3C4D.png")
	assert.Equal(t, "https://cdn.example.com/customers/logos/CUS-1A2B3C4D.png", url)

	tests := []struct {
		name     string
		url      string
		expected string
	}{
		{name: "public domain", url: url, expected: "customers/logos/CUS-1A2B3C4D.png"},
		{name: "api endpoint", url: "https://s3.example.com/logos/customers/logos/a.png", expected: "customers/logos/a.png"},
		{name: "foreign url", url: "https://elsewhere.com/a.png", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s3.ObjectKeyFromURL("https://cdn.example.com", "https://s3.example.com", "logos", tt.url))
		})
	}
}
