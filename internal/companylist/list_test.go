package companylist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewList_Normalizes(t *testing.T) {
	l := NewList([]string{"  Google ", "google", "", "Tata   Consultancy Services", "   "})
	assert.Equal(t, []string{"google", "tata consultancy services"}, l.Names())
	assert.Equal(t, 2, l.Len())
}

func TestList_Contains(t *testing.T) {
	l := NewList([]string{"Google", "Tata Consultancy Services"})

	tests := []struct {
		name string
		want bool
	}{
		{"Google", true},
		{"GOOGLE INDIA PVT LTD", true},
		{"tata consultancy", true},
		{"Tata   Consultancy Services Limited", true},
		{"Acme Corp", false},
		{"Googleplex Ventures", false},
		{"Goo", false},
		{"Tata", true},
		{"", false},
		{"   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Contains(tt.name))
		})
	}
}

func TestList_Match(t *testing.T) {
	l := NewList([]string{"Infosys"})
	matched, ok := l.Match("Infosys BPM")
	assert.True(t, ok)
	assert.Equal(t, "infosys", matched)

	var nilList *List
	assert.False(t, nilList.Contains("Infosys"))
	assert.Zero(t, nilList.Len())
}

func TestList_ShortNamesDoNotMatchInsideWords(t *testing.T) {
	l := NewList([]string{"Zomato", "Wipro", "Capgemini", "IBM"})

	tests := []struct {
		name string
		want bool
	}{
		{"AI", false},
		{"ai", false},
		{"Pro", false},
		{"Gemini", false},
		{"IBM", true},
		{"IBM India", false},
		{"Wipro Technologies", true},
		{"Wipro-Tech", true},
		{"Zomato Ltd.", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Contains(tt.name))
		})
	}
}

func TestContainsWords(t *testing.T) {
	assert.True(t, containsWords("google india", "google"))
	assert.True(t, containsWords("the google", "google"))
	assert.False(t, containsWords("googleplex", "google"))
	assert.True(t, containsWords("googleplex and google", "google"))
	assert.False(t, containsWords("open ai labs", "ai"))
}
