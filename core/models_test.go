package core

import (
	"testing"
)

func TestIDFromContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "same content produces same ID",
			content: "test content",
		},
		{
			name:    "empty string",
			content: "",
		},
		{
			name:    "long content",
			content: "This is a much longer piece of content that should still hash consistently",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id1 := IDFromContent(tt.content)
			id2 := IDFromContent(tt.content)

			if id1 != id2 {
				t.Errorf("IDFromContent() produced different IDs for same content: %d vs %d", id1, id2)
			}
		})
	}
}

func TestIDFromContent_Different(t *testing.T) {
	id1 := IDFromContent("content1")
	id2 := IDFromContent("content2")

	if id1 == id2 {
		t.Errorf("IDFromContent() produced same ID for different content")
	}
}

func TestCatalogItem_Key(t *testing.T) {
	tests := []struct {
		name string
		item CatalogItem
		want string
	}{
		{
			name: "basic item",
			item: CatalogItem{Name: "Essential 10GB", Provider: "bell", Code: "B-10"},
			want: "(bell,Essential 10GB,B-10)",
		},
		{
			name: "empty code",
			item: CatalogItem{Name: "Promo 50", Provider: "telus"},
			want: "(telus,Promo 50,)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Key(); got != tt.want {
				t.Errorf("Key() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCatalogItem_KeyDistinctIDs(t *testing.T) {
	a := CatalogItem{Name: "Plan A", Provider: "bell", Code: "1"}
	b := CatalogItem{Name: "Plan A", Provider: "rogers", Code: "1"}

	if IDFromContent(a.Key()) == IDFromContent(b.Key()) {
		t.Errorf("items from different providers must not share IDs")
	}
}
