package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusName(t *testing.T) {
	assert.Equal(t, "Draft", StatusName(StatusDraft))
	assert.Equal(t, "Moderation", StatusName(StatusModeration))
	assert.Equal(t, "Rejected", StatusName(StatusRejected))
	assert.Equal(t, "Published", StatusName(StatusPublished))
	assert.Equal(t, "Unknown", StatusName(99))
}

func TestArticleTagIDs(t *testing.T) {
	a := Article{Tags: []Tag{{ID: 3, Name: "go"}, {ID: 1, Name: "news"}}}
	assert.Equal(t, []int{3, 1}, a.TagIDs(), "display order preserved")

	assert.Empty(t, Article{}.TagIDs())
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "Alice Liddell", User{FirstName: "Alice", LastName: "Liddell"}.FullName())
	assert.Equal(t, "Alice", User{FirstName: "Alice"}.FullName())
	assert.Equal(t, "Liddell", Author{LastName: "Liddell"}.FullName())
	assert.Equal(t, "", Author{}.FullName())
}
