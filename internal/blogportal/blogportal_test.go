package blogportal

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{title: "Hello World", want: "hello-world"},
		{title: "Hello, World!", want: "hello-world"},
		{title: "What is Go?", want: "what-is-go"},
		{title: "Version 1.2.3", want: "version-123"},
		{title: "  Trimmed  ", want: "trimmed"},
		{title: "snake_case and-dash", want: "snake_case-and-dash"},
		{title: "Draft: 100% Coverage_Tips", want: "draft-100-coverage_tips"},
		{title: "Ünïcödé Straße", want: "ünïcödé-straße"},
		{title: "<script>alert(1)</script>", want: "scriptalert1script"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			got, err := Slugify(tt.title)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("Empty", func(t *testing.T) {
		for _, title := range []string{"", "   ", "?!.", "%%%"} {
			_, err := Slugify(title)
			assert.ErrorIs(t, err, ErrValidation, title)
		}
	})
}

func TestRegisterInput_Validate(t *testing.T) {
	valid := RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret"}
	require.NoError(t, valid.validate())

	tests := []struct {
		name      string
		mutate    func(in *RegisterInput)
		wantField string
	}{
		{name: "EmptyUsername", mutate: func(in *RegisterInput) { in.Username = "" }, wantField: "username"},
		{name: "LongUsername", mutate: func(in *RegisterInput) { in.Username = strings.Repeat("a", 81) }, wantField: "username"},
		{name: "BadEmail", mutate: func(in *RegisterInput) { in.Email = "not-an-email" }, wantField: "email"},
		{name: "EmptyPassword", mutate: func(in *RegisterInput) { in.Password = "" }, wantField: "password"},
		{name: "LongPassword", mutate: func(in *RegisterInput) { in.Password = strings.Repeat("p", 73) }, wantField: "password"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			err := in.validate()
			require.ErrorIs(t, err, ErrValidation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestPostInput_NormalizeValidate(t *testing.T) {
	in := PostInput{
		Title:    "  Title  ",
		Content:  "\n body \n",
		TagNames: []string{" go ", "", "  "},
	}
	in.normalize()

	assert.Equal(t, "Title", in.Title)
	assert.Equal(t, "body", in.Content)
	assert.Equal(t, []string{"go"}, in.TagNames)
	require.NoError(t, in.validate())

	t.Run("BlankContent", func(t *testing.T) {
		in := PostInput{Title: "T", Content: "   "}
		in.normalize()
		assert.ErrorIs(t, in.validate(), ErrValidation)
	})

	t.Run("LongTitle", func(t *testing.T) {
		in := PostInput{Title: strings.Repeat("t", 201), Content: "c"}
		assert.ErrorIs(t, in.validate(), ErrValidation)
	})

	t.Run("BadCategory", func(t *testing.T) {
		zero := 0
		in := PostInput{Title: "T", Content: "c", CategoryID: &zero}
		assert.ErrorIs(t, in.validate(), ErrValidation)
	})

	t.Run("BadTagID", func(t *testing.T) {
		in := PostInput{Title: "T", Content: "c", TagIDs: []int{1, -1}}
		assert.ErrorIs(t, in.validate(), ErrValidation)
	})
}

func TestPostFilter_Normalize(t *testing.T) {
	f := PostFilter{Page: -3, Search: "  go  "}
	f.normalize()
	assert.Equal(t, 1, f.Page)
	assert.Equal(t, defaultPageSize, f.PageSize)
	assert.Equal(t, "go", f.Search)

	f = PostFilter{Page: 2, PageSize: 1000}
	f.normalize()
	assert.Equal(t, 2, f.Page)
	assert.Equal(t, maxPageSize, f.PageSize)

	for _, size := range []int{0, 1, defaultPageSize, maxPageSize} {
		f = PostFilter{Page: math.MaxInt, PageSize: size}
		f.normalize()
		offset := (f.Page - 1) * f.PageSize
		assert.GreaterOrEqual(t, offset, 0, "page size %d", size)
		assert.Greater(t, f.Page, 1)
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("reader@example.com"))
	assert.ErrorIs(t, validateEmail(""), ErrValidation)
	assert.ErrorIs(t, validateEmail("reader"), ErrValidation)
	assert.ErrorIs(t, validateEmail(strings.Repeat("a", 120)+"@example.com"), ErrValidation)
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()

	_, ok := IdentityFrom(ctx)
	assert.False(t, ok)

	_, err := RequireUser(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = RequireAdmin(ctx)
	assert.ErrorIs(t, err, ErrForbidden)

	userCtx := WithIdentity(ctx, Identity{UserID: 2, Username: "alice"})
	identity, err := RequireUser(userCtx)
	require.NoError(t, err)
	assert.Equal(t, 2, identity.UserID)

	_, err = RequireAdmin(userCtx)
	assert.ErrorIs(t, err, ErrForbidden)

	adminCtx := WithIdentity(ctx, Identity{UserID: 1, Username: "admin", IsAdmin: true})
	identity, err = RequireAdmin(adminCtx)
	require.NoError(t, err)
	assert.True(t, identity.IsAdmin)
}

func TestRenderMarkdown(t *testing.T) {
	html := RenderMarkdown("# Title\n\nSome **bold** text\n\n- [x] done")
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<strong>bold</strong>")
	assert.Contains(t, html, `type="checkbox"`)

	assert.NotContains(t, RenderMarkdown("<script>alert(1)</script>"), "<script>")
	assert.Empty(t, RenderMarkdown("   "))
}
