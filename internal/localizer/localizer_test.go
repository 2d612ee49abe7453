package localizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"outofschool/internal/dto"
)

func TestLocalizer_Get(t *testing.T) {
	l := New(dto.LanguageUA)

	tests := []struct {
		name string
		lang dto.Language
		key  string
		args []any
		want string
	}{
		{
			name: "english",
			lang: dto.LanguageEN,
			key:  EmailAlreadyTaken,
			args: []any{"a@example.com"},
			want: "Email a@example.com is already taken",
		},
		{
			name: "ukrainian",
			lang: dto.LanguageUA,
			key:  PhoneNumberAlreadyTaken,
			args: []any{"+380501112233"},
			want: "Номер телефону +380501112233 вже використовується",
		},
		{
			name: "unknown language falls back to default",
			lang: dto.Language("de"),
			key:  EntityNotFound,
			args: []any{"Category", 5},
			want: "Category з id 5 не існує в системі",
		},
		{
			name: "unknown key is returned formatted",
			lang: dto.LanguageEN,
			key:  "Missing %d",
			args: []any{7},
			want: "Missing 7",
		},
		{
			name: "no args",
			lang: dto.LanguageEN,
			key:  "Plain",
			want: "Plain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Get(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestNew_UnsupportedDefault(t *testing.T) {
	l := New(dto.Language("fr"))
	assert.Equal(t, dto.LanguageUA, l.Default())
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalogs[dto.LanguageUA] {
		_, ok := catalogs[dto.LanguageEN][key]
		assert.True(t, ok, key)
	}
	assert.Len(t, catalogs[dto.LanguageEN], len(catalogs[dto.LanguageUA]))
}

func TestLocalize_LanguageFromContext(t *testing.T) {
	l := New(dto.LanguageUA)

	assert.Equal(t, "Email a@b.ua is already taken",
		l.Localize(WithLanguage(context.Background(), dto.LanguageEN), EmailAlreadyTaken, "a@b.ua"))
	assert.Equal(t, "Електронна адреса a@b.ua вже використовується",
		l.Localize(context.Background(), EmailAlreadyTaken, "a@b.ua"))

	lang, ok := LanguageFrom(WithLanguage(context.Background(), dto.LanguageEN))
	assert.True(t, ok)
	assert.Equal(t, dto.LanguageEN, lang)
}
