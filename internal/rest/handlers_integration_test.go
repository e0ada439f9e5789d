package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/blog-portal/internal/blogportal"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/media"
	"github.com/daniilsolovey/blog-portal/internal/session"
)

var testDB *pg.DB

func TestMain(m *testing.M) {
	database, err := db.SetupTestDB()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to prepare test database. Make sure PostgreSQL is running:")
		fmt.Fprintln(os.Stderr, "  docker-compose -f docker-compose.test.yml up -d")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	testDB = database

	code := m.Run()

	if err := testDB.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to close database connection: %v\n", err)
	}

	os.Exit(code)
}

type testServer struct {
	e        *echo.Echo
	sessions *session.Manager
	uploads  string
}

// newTestServer serves the API over a transaction rolled back after the test.
func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tx, err := testDB.Begin()
	if err != nil {
		t.Fatalf("failed to begin transaction: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Errorf("failed to rollback transaction: %v", err)
		}
	})

	uploads := t.TempDir()
	storage, err := media.NewLocalStorage(uploads, "uploads")
	require.NoError(t, err)

	sessions, err := session.NewManager(session.Config{Secret: "test-secret", TTL: time.Hour})
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	repo := db.New(tx)
	h := NewHandler(blogportal.NewManager(repo, storage, logger), sessions, repo, logger, Options{
		UploadsDir:    uploads,
		UploadsPrefix: "uploads",
	})

	return &testServer{e: h.RegisterRoutes(), sessions: sessions, uploads: uploads}
}

func (s *testServer) do(t *testing.T, req *http.Request, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, httptest.NewRequest(http.MethodGet, path, nil), cookies...)
}

func (s *testServer) send(t *testing.T, method, path string, body any, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	return s.do(t, req, cookies...)
}

func (s *testServer) cookieFor(t *testing.T, identity blogportal.Identity) *http.Cookie {
	t.Helper()
	token, exp, err := s.sessions.Issue(identity)
	require.NoError(t, err)
	return s.sessions.Cookie(token, exp)
}

func (s *testServer) admin(t *testing.T) *http.Cookie {
	return s.cookieFor(t, blogportal.Identity{UserID: db.TestAdminID, Username: "admin", IsAdmin: true})
}

func (s *testServer) alice(t *testing.T) *http.Cookie {
	return s.cookieFor(t, blogportal.Identity{UserID: db.TestAliceID, Username: "alice"})
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("failed to unmarshal response: %v, body: %s", err, rec.Body.String())
	}
	return v
}

func responseCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

type formFile struct {
	name string
	body string
}

func multipartRequest(t *testing.T, method, path string, fields map[string][]string, file *formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(name, v))
		}
	}

	if file != nil {
		fw, err := w.CreateFormFile(featuredImageField, file.name)
		require.NoError(t, err)
		_, err = fw.Write([]byte(file.body))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	return req
}

func summaryIDs(list []PostSummary) []int {
	ids := make([]int, 0, len(list))
	for _, p := range list {
		ids = append(ids, p.PostID)
	}
	return ids
}

func TestHandler_Health_Integration(t *testing.T) {
	s := newTestServer(t)

	rec := s.get(t, "/health")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ok", decode[map[string]string](t, rec)["status"])
}

func TestHandler_Home_Integration(t *testing.T) {
	s := newTestServer(t)

	rec := s.get(t, "/api/v1/home")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	home := decode[HomePage](t, rec)
	assert.Equal(t, []int{db.TestPostGo, db.TestPostLisbon}, summaryIDs(home.Featured))
	assert.Equal(t, []int{db.TestPostGo, db.TestPostIndexing, db.TestPostLisbon, db.TestPostMinimal}, summaryIDs(home.Recent))
	assert.Len(t, home.Categories, 3)
	assert.Len(t, home.Tags, 3)
}

func TestHandler_Posts_Integration(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name    string
		query   string
		wantIDs []int
	}{
		{name: "All", query: "", wantIDs: []int{db.TestPostGo, db.TestPostIndexing, db.TestPostLisbon, db.TestPostMinimal}},
		{name: "Category", query: "?category=1", wantIDs: []int{db.TestPostGo, db.TestPostIndexing}},
		{name: "Tag", query: "?tag=3", wantIDs: []int{db.TestPostLisbon}},
		{name: "Search", query: "?search=Lisbon", wantIDs: []int{db.TestPostLisbon}},
		{name: "EmptyFilters", query: "?category=&tag=&search=", wantIDs: []int{db.TestPostGo, db.TestPostIndexing, db.TestPostLisbon, db.TestPostMinimal}},
		{name: "PageOutOfRange", query: "?page=5", wantIDs: []int{}},
		{name: "HugePage", query: "?page=1152921504606846977", wantIDs: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.get(t, "/api/v1/posts"+tt.query)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

			page := decode[PostPage](t, rec)
			assert.Equal(t, tt.wantIDs, summaryIDs(page.Posts))
		})
	}

	t.Run("Pagination", func(t *testing.T) {
		page := decode[PostPage](t, s.get(t, "/api/v1/posts"))
		assert.Equal(t, 4, page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 9, page.PageSize)
		assert.Equal(t, 1, page.TotalPages)
		assert.False(t, page.HasNext)
		assert.False(t, page.HasPrev)
	})

	t.Run("InvalidPage", func(t *testing.T) {
		rec := s.get(t, "/api/v1/posts?page=abc")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandler_PostBySlug_Integration(t *testing.T) {
	s := newTestServer(t)

	rec := s.get(t, "/api/v1/posts/getting-started-with-go")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	view := decode[PostView](t, rec)
	assert.Equal(t, db.TestPostGo, view.Post.PostID)
	assert.Equal(t, 1, view.Post.Views)
	assert.Contains(t, view.Post.HTML, "<strong>simple</strong>")
	require.Len(t, view.Comments, 1)
	assert.Equal(t, db.TestCommentApproved, view.Comments[0].CommentID)
	assert.Equal(t, "alice", view.Comments[0].Author.Username)
	assert.Equal(t, []int{db.TestPostIndexing}, summaryIDs(view.Related))
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	t.Run("Draft", func(t *testing.T) {
		rec := s.get(t, "/api/v1/posts/draft-100-coverage_tips")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "not found", decode[ErrorResponse](t, rec).Error)
	})

	t.Run("Missing", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, s.get(t, "/api/v1/posts/nope").Code)
	})
}

func TestHandler_Taxonomy_Integration(t *testing.T) {
	s := newTestServer(t)

	categories := decode[[]Category](t, s.get(t, "/api/v1/categories"))
	require.Len(t, categories, 3)
	assert.Equal(t, "Lifestyle", categories[0].Name)

	tags := decode[[]Tag](t, s.get(t, "/api/v1/tags"))
	require.Len(t, tags, 3)
	assert.Equal(t, "go", tags[0].Name)
}

func TestHandler_Auth_Integration(t *testing.T) {
	s := newTestServer(t)

	rec := s.send(t, http.MethodPost, "/api/v1/register", RegisterRequest{Username: "carol", Email: "carol@example.com", Password: "s3cret"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "carol", decode[User](t, rec).Username)
	assert.NotContains(t, rec.Body.String(), "s3cret")

	t.Run("DuplicateUsername", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, "/api/v1/register", RegisterRequest{Username: "carol", Email: "other@example.com", Password: "x"})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, "/api/v1/register", RegisterRequest{Username: "dave", Email: "dave", Password: "x"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode[ErrorResponse](t, rec).Error, "email")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, "/api/v1/login", LoginRequest{Username: "carol", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, responseCookie(rec, "session"))
	})

	rec = s.send(t, http.MethodPost, "/api/v1/login", LoginRequest{Username: "carol", Password: "s3cret"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookie := responseCookie(rec, "session")
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	rec = s.get(t, "/api/v1/me", cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "carol@example.com", decode[User](t, rec).Email)

	rec = s.send(t, http.MethodPost, "/api/v1/logout", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	cleared := responseCookie(rec, "session")
	require.NotNil(t, cleared)
	assert.Empty(t, cleared.Value)
}

func TestHandler_Session_Integration(t *testing.T) {
	s := newTestServer(t)

	t.Run("Anonymous", func(t *testing.T) {
		rec := s.get(t, "/api/v1/me")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "/login", decode[ErrorResponse](t, rec).Redirect)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		rec := s.get(t, "/api/v1/me", &http.Cookie{Name: "session", Value: "garbage"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		cleared := responseCookie(rec, "session")
		require.NotNil(t, cleared)
		assert.Empty(t, cleared.Value)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		cookie := s.cookieFor(t, blogportal.Identity{UserID: 999, Username: "ghost", IsAdmin: true})
		rec := s.get(t, "/api/v1/admin/dashboard", cookie)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("StaleAdminClaim", func(t *testing.T) {
		cookie := s.cookieFor(t, blogportal.Identity{UserID: db.TestAliceID, Username: "alice", IsAdmin: true})
		rec := s.get(t, "/api/v1/admin/dashboard", cookie)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHandler_AddComment_Integration(t *testing.T) {
	s := newTestServer(t)
	path := fmt.Sprintf("/api/v1/posts/%d/comments", db.TestPostGo)

	t.Run("Anonymous", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, path, CommentRequest{Content: "hi"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("User", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, path, CommentRequest{Content: " Nice post "}, s.alice(t))
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		resp := decode[CommentResponse](t, rec)
		assert.Equal(t, "getting-started-with-go", resp.PostSlug)
		require.NotNil(t, resp.Comment)
		assert.Equal(t, "Nice post", resp.Comment.Content)
		assert.False(t, resp.Comment.IsApproved)
	})

	t.Run("Blank", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, path, CommentRequest{Content: "   "}, s.alice(t))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, decode[CommentResponse](t, rec).Comment)
	})

	t.Run("MissingPost", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, "/api/v1/posts/999/comments", CommentRequest{Content: "hi"}, s.alice(t))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandler_AdminAccess_Integration(t *testing.T) {
	s := newTestServer(t)

	rec := s.get(t, "/api/v1/admin/dashboard")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = s.get(t, "/api/v1/admin/dashboard", s.alice(t))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "/", decode[ErrorResponse](t, rec).Redirect)

	rec = s.get(t, "/api/v1/admin/dashboard", s.admin(t))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	d := decode[Dashboard](t, rec)
	assert.Equal(t, 5, d.PostsCount)
	assert.Equal(t, 3, d.UsersCount)
	assert.Equal(t, 3, d.CommentsCount)
	assert.Equal(t, 1, d.PendingComments)
	assert.Equal(t, 1, d.SubscribersCount)
	assert.Len(t, d.RecentPosts, 5)
}

func TestHandler_AdminPosts_Integration(t *testing.T) {
	s := newTestServer(t)
	admin := s.admin(t)

	rec := s.get(t, "/api/v1/admin/posts", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, summaryIDs(decode[[]PostSummary](t, rec)), db.TestPostDraft)

	t.Run("GetDraft", func(t *testing.T) {
		rec := s.get(t, fmt.Sprintf("/api/v1/admin/posts/%d", db.TestPostDraft), admin)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		post := decode[Post](t, rec)
		assert.Equal(t, db.TestPostDraft, post.PostID)
		assert.False(t, post.IsPublished)

		rec = s.get(t, "/api/v1/admin/posts/9999", admin)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("CreateWithImage", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/api/v1/admin/posts", map[string][]string{
			"title":        {"Hello Echo"},
			"content":      {"Some *markdown*"},
			"category_id":  {"1"},
			"tag_ids":      {"1,2"},
			"tag_names":    {"web, go"},
			"is_published": {"on"},
		}, &formFile{name: "cover photo.png", body: "png-bytes"})

		rec := s.do(t, req, admin)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

		post := decode[Post](t, rec)
		assert.Equal(t, "hello-echo", post.Slug)
		assert.True(t, post.IsPublished)
		assert.False(t, post.IsFeatured)
		require.NotNil(t, post.Category)
		assert.Equal(t, db.TestCategoryTechnology, post.Category.CategoryID)
		assert.ElementsMatch(t, []string{"go", "postgres", "web"}, tagNamesOf(post.Tags))

		require.NotNil(t, post.FeaturedImage)
		assert.True(t, strings.HasPrefix(*post.FeaturedImage, "uploads/"))
		assert.True(t, strings.HasSuffix(*post.FeaturedImage, "_cover_photo.png"))

		rec = s.get(t, "/"+*post.FeaturedImage)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "png-bytes", rec.Body.String())
	})

	t.Run("CreateDuplicateTitle", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/api/v1/admin/posts", map[string][]string{
			"title":   {"Weekend in Lisbon"},
			"content": {"again"},
		}, nil)

		rec := s.do(t, req, admin)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("CreateInvalid", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPost, "/api/v1/admin/posts", map[string][]string{
			"title":       {"No content"},
			"category_id": {"abc"},
		}, nil)

		assert.Equal(t, http.StatusBadRequest, s.do(t, req, admin).Code)
	})

	t.Run("Update", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, fmt.Sprintf("/api/v1/admin/posts/%d", db.TestPostMinimal), map[string][]string{
			"title":       {"Living With Less"},
			"content":     {"Less is more."},
			"category_id": {"2"},
			"is_featured": {"true"},
		}, nil)

		rec := s.do(t, req, admin)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		post := decode[Post](t, rec)
		assert.Equal(t, "Living With Less", post.Title)
		assert.Equal(t, "minimal-living", post.Slug)
		assert.Equal(t, "Less is more.", post.Content)
		assert.False(t, post.IsPublished)
		assert.True(t, post.IsFeatured)
		require.NotNil(t, post.Category)
		assert.Equal(t, db.TestCategoryLifestyle, post.Category.CategoryID)
	})

	t.Run("UpdateMissing", func(t *testing.T) {
		req := multipartRequest(t, http.MethodPut, "/api/v1/admin/posts/999", map[string][]string{
			"title":   {"Ghost"},
			"content": {"boo"},
		}, nil)

		assert.Equal(t, http.StatusNotFound, s.do(t, req, admin).Code)
	})

	t.Run("Toggles", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/posts/%d/publish", db.TestPostDraft), nil, admin)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.True(t, decode[ToggleResponse](t, rec).Value)

		rec = s.send(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/posts/%d/feature", db.TestPostGo), nil, admin)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.False(t, decode[ToggleResponse](t, rec).Value)

		assert.Equal(t, http.StatusNotFound, s.send(t, http.MethodPost, "/api/v1/admin/posts/999/publish", nil, admin).Code)
		assert.Equal(t, http.StatusBadRequest, s.send(t, http.MethodPost, "/api/v1/admin/posts/x/publish", nil, admin).Code)
	})

	t.Run("Delete", func(t *testing.T) {
		rec := s.send(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/posts/%d", db.TestPostLisbon), nil, admin)
		require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

		assert.Equal(t, http.StatusNotFound, s.get(t, "/api/v1/posts/weekend-in-lisbon").Code)
		assert.Equal(t, http.StatusNotFound, s.send(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/posts/%d", db.TestPostLisbon), nil, admin).Code)
	})
}

func TestHandler_AdminComments_Integration(t *testing.T) {
	s := newTestServer(t)
	admin := s.admin(t)

	rec := s.get(t, "/api/v1/admin/comments", admin)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	comments := decode[[]Comment](t, rec)
	require.Len(t, comments, 3)
	assert.Equal(t, db.TestCommentPending, comments[0].CommentID)
	assert.Equal(t, "getting-started-with-go", comments[0].PostSlug)

	rec = s.send(t, http.MethodPost, fmt.Sprintf("/api/v1/admin/comments/%d/approve", db.TestCommentPending), nil, admin)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	view := decode[PostView](t, s.get(t, "/api/v1/posts/getting-started-with-go"))
	assert.Len(t, view.Comments, 2)

	rec = s.send(t, http.MethodDelete, fmt.Sprintf("/api/v1/admin/comments/%d", db.TestCommentLisbon), nil, admin)
	require.Equal(t, http.StatusNoContent, rec.Code)

	assert.Equal(t, http.StatusNotFound, s.send(t, http.MethodDelete, "/api/v1/admin/comments/999", nil, admin).Code)
	assert.Equal(t, http.StatusNotFound, s.send(t, http.MethodPost, "/api/v1/admin/comments/999/approve", nil, admin).Code)
}

func TestHandler_Newsletter_Integration(t *testing.T) {
	s := newTestServer(t)

	rec := s.send(t, http.MethodPost, "/api/v1/newsletter", NewsletterRequest{Email: "new@example.com"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, decode[NewsletterResponse](t, rec).Success)

	rec = s.send(t, http.MethodPost, "/api/v1/newsletter", NewsletterRequest{Email: db.TestSubscriberEmail})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decode[NewsletterResponse](t, rec)
	assert.False(t, resp.Success)
	assert.Equal(t, "Email already subscribed", resp.Message)

	rec = s.send(t, http.MethodPost, "/api/v1/newsletter", NewsletterRequest{Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, decode[NewsletterResponse](t, rec).Success)
}

func TestHandler_SiteExtras_Integration(t *testing.T) {
	s := newTestServer(t)

	t.Run("Contact", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, "/api/v1/contact", ContactRequest{Name: "Ann", Email: "ann@example.com", Message: "Hello"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotEmpty(t, decode[MessageResponse](t, rec).Message)

		rec = s.send(t, http.MethodPost, "/api/v1/contact", ContactRequest{Name: "Ann"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Theme", func(t *testing.T) {
		rec := s.send(t, http.MethodPost, "/api/v1/theme", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[ThemeResponse](t, rec).DarkMode)

		cookie := responseCookie(rec, darkModeCookie)
		require.NotNil(t, cookie)
		assert.Equal(t, "true", cookie.Value)

		rec = s.send(t, http.MethodPost, "/api/v1/theme", nil, &http.Cookie{Name: darkModeCookie, Value: "true"})
		assert.False(t, decode[ThemeResponse](t, rec).DarkMode)
	})
}

func tagNamesOf(tags []Tag) []string {
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}
