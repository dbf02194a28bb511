package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"gamescove/internal/db"
	"gamescove/internal/middleware"
	"gamescove/internal/models"
	"gamescove/internal/repository"
	"gamescove/internal/router"
	"gamescove/internal/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testPassword = "test-secret"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("ADMIN_PASSWORD", testPassword)

	// Fake external verifier: only "good-token" passes.
	verify := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		ok := r.PostForm.Get("response") == "good-token"
		fmt.Fprintf(w, `{"success":%t}`, ok)
	}))
	os.Setenv("RECAPTCHA_SECRET_KEY", "test-secret")
	os.Setenv("RECAPTCHA_VERIFY_URL", verify.URL)

	// Fake chat completion endpoint.
	chat := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"mock reply"}}]}`))
	}))
	os.Setenv("CHAT_BASE_URL", chat.URL)
	os.Setenv("CHAT_API_KEY", "test-token")

	code := m.Run()
	verify.Close()
	chat.Close()
	os.Exit(code)
}

var testDBSeq int64

// newTestServer builds the full engine over an isolated in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *repository.Repos) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	g, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(g); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, _ := g.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	// The page cache is process-wide; drop entries left by other tests.
	utils.GetCache().Purge()

	return router.New(g, []byte("test-session-secret")), repository.New(g)
}

func doJSON(r *gin.Engine, method, path, body string, cookies []*http.Cookie, csrf string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	if csrf != "" {
		req.Header.Set(middleware.CSRFHeaderName, csrf)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// login returns the session cookies and CSRF token of an authenticated admin.
func login(t *testing.T, r *gin.Engine) ([]*http.Cookie, string) {
	t.Helper()

	w := doJSON(r, "POST", "/api/auth/login", fmt.Sprintf(`{"password":%q}`, testPassword), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, body %s", w.Code, w.Body.String())
	}

	cookies := w.Result().Cookies()
	csrf := ""
	for _, c := range cookies {
		if c.Name == middleware.CSRFCookieName {
			csrf = c.Value
		}
	}
	if csrf == "" {
		t.Fatal("login did not set a CSRF cookie")
	}
	return cookies, csrf
}

func TestAuthFlow(t *testing.T) {
	r, _ := newTestServer(t)

	// Wrong password.
	w := doJSON(r, "POST", "/api/auth/login", `{"password":"nope"}`, nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", w.Code)
	}

	cookies, _ := login(t, r)

	w = doJSON(r, "GET", "/api/auth/check", "", cookies, "")
	var check struct {
		Authenticated bool `json:"authenticated"`
	}
	json.Unmarshal(w.Body.Bytes(), &check)
	if !check.Authenticated {
		t.Error("check after login: authenticated = false, want true")
	}

	w = doJSON(r, "GET", "/api/auth/logout", "", cookies, "")
	if w.Code != http.StatusOK {
		t.Fatalf("logout status = %d", w.Code)
	}

	w = doJSON(r, "GET", "/api/auth/check", "", w.Result().Cookies(), "")
	json.Unmarshal(w.Body.Bytes(), &check)
	if check.Authenticated {
		t.Error("check after logout: authenticated = true, want false")
	}
}

func TestAdminRequiresSessionAndCSRF(t *testing.T) {
	r, _ := newTestServer(t)

	// Anonymous.
	w := doJSON(r, "GET", "/api/admin/games", "", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous status = %d, want 401", w.Code)
	}

	cookies, _ := login(t, r)

	// Authenticated but no CSRF header: a 403, not a 401.
	w = doJSON(r, "PUT", "/api/admin/games", `{"id":1,"title":"x"}`, cookies, "")
	if w.Code != http.StatusForbidden {
		t.Errorf("missing csrf status = %d, want 403", w.Code)
	}

	// Admin GETs need no CSRF token.
	w = doJSON(r, "GET", "/api/admin/games", "", cookies, "")
	if w.Code != http.StatusOK {
		t.Errorf("admin list status = %d, want 200", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); cc != middleware.NoStorePolicy {
		t.Errorf("admin Cache-Control = %q, want no-store", cc)
	}
}

func TestGameCreateAssignsUniqueSlugs(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	body := `{"title":"Space Invaders 2","category":"arcade"}`
	w := doJSON(r, "POST", "/api/admin/games", body, cookies, csrf)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var first models.Game
	json.Unmarshal(w.Body.Bytes(), &first)
	if first.Slug != "space-invaders-2" {
		t.Errorf("slug = %q, want space-invaders-2", first.Slug)
	}
	if first.DownloadURL != "#" {
		t.Errorf("download_url = %q, want placeholder #", first.DownloadURL)
	}

	w = doJSON(r, "POST", "/api/admin/games", body, cookies, csrf)
	if w.Code != http.StatusCreated {
		t.Fatalf("second create status = %d", w.Code)
	}
	var second models.Game
	json.Unmarshal(w.Body.Bytes(), &second)
	if second.Slug != "space-invaders-2-1" {
		t.Errorf("colliding slug = %q, want space-invaders-2-1", second.Slug)
	}
}

func TestGameUpdateNotFound(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	w := doJSON(r, "PUT", "/api/admin/games", `{"id":9999,"title":"Ghost"}`, cookies, csrf)
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}

func TestGameValidation(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	w := doJSON(r, "POST", "/api/admin/games", `{"title":"  "}`, cookies, csrf)
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank title status = %d, want 400", w.Code)
	}

	w = doJSON(r, "POST", "/api/admin/games", `{"title":"Ok","theme":"bogus"}`, cookies, csrf)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad theme status = %d, want 400", w.Code)
	}
}

func TestPublicGamesFeaturedFilter(t *testing.T) {
	r, repos := newTestServer(t)

	games := []models.Game{
		{Title: "Plain", Slug: "plain"},
		{Title: "Star", Slug: "star", Tags: []string{models.FeaturedTag}},
	}
	for i := range games {
		if err := repos.Games.Create(&games[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := doJSON(r, "GET", "/api/games?featured=1", "", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if cc := w.Header().Get("Cache-Control"); cc != middleware.PublicCachePolicy {
		t.Errorf("Cache-Control = %q, want public policy", cc)
	}

	var got []models.Game
	json.Unmarshal(w.Body.Bytes(), &got)
	if len(got) != 1 || got[0].Title != "Star" {
		t.Errorf("featured = %+v, want just Star", got)
	}
}

func TestBlogCreateCoercesFields(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	// Missing summary.
	w := doJSON(r, "POST", "/api/admin/blogs",
		`{"title":"T","image":"i.png","author":"A","content":"c","category":"news"}`, cookies, csrf)
	if w.Code != http.StatusBadRequest || !strings.Contains(w.Body.String(), "summary") {
		t.Errorf("missing summary: status = %d body = %s", w.Code, w.Body.String())
	}

	body := `{"title":"Great Game","summary":"s","image":"i.png","author":"A",` +
		`"content":"c","category":"news","rating":"4.5","publish_date":"Jan 5, 2026","video_url":""}`
	w = doJSON(r, "POST", "/api/admin/blogs", body, cookies, csrf)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var post models.BlogPost
	json.Unmarshal(w.Body.Bytes(), &post)
	if post.Rating != 4.5 {
		t.Errorf("rating = %v, want 4.5", post.Rating)
	}
	if post.PublishDate != "2026-01-05" {
		t.Errorf("publish_date = %q, want 2026-01-05", post.PublishDate)
	}
	if post.VideoURL != nil {
		t.Errorf("empty video_url stored as %q, want absent", *post.VideoURL)
	}
	if post.Slug != "great-game" {
		t.Errorf("slug = %q, want great-game", post.Slug)
	}

	// Unparsable rating defaults to 0.
	body = `{"title":"Other","summary":"s","image":"i.png","author":"A",` +
		`"content":"c","category":"news","rating":"lots of stars"}`
	w = doJSON(r, "POST", "/api/admin/blogs", body, cookies, csrf)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	json.Unmarshal(w.Body.Bytes(), &post)
	if post.Rating != 0 {
		t.Errorf("unparsable rating = %v, want 0", post.Rating)
	}
}

func seedBlogPost(t *testing.T, repos *repository.Repos) models.BlogPost {
	t.Helper()
	post := models.BlogPost{Title: "Review", Slug: "review", Content: "body"}
	if err := repos.Blogs.Create(&post); err != nil {
		t.Fatalf("seed blog: %v", err)
	}
	return post
}

func TestCommentSubmissionPipeline(t *testing.T) {
	r, repos := newTestServer(t)
	post := seedBlogPost(t, repos)

	submit := func(author, text, token string) *httptest.ResponseRecorder {
		body := fmt.Sprintf(`{"postId":%d,"author":%q,"text":%q,"verificationToken":%q}`,
			post.ID, author, text, token)
		return doJSON(r, "POST", "/api/comments", body, nil, "")
	}

	// Missing token.
	if w := submit("Sam", "this is long enough", ""); w.Code != http.StatusBadRequest ||
		!strings.Contains(w.Body.String(), "verification") {
		t.Errorf("missing token: status = %d body = %s", w.Code, w.Body.String())
	}

	// Failed verification.
	if w := submit("Sam", "this is long enough", "bad-token"); w.Code != http.StatusBadRequest {
		t.Errorf("bad token status = %d, want 400", w.Code)
	}

	// Author length boundaries: 1 rejected, 2 accepted.
	if w := submit("S", "this is long enough", "good-token"); w.Code != http.StatusBadRequest {
		t.Errorf("author len 1 status = %d, want 400", w.Code)
	}
	if w := submit("Sa", "this is long enough", "good-token"); w.Code != http.StatusCreated {
		t.Errorf("author len 2 status = %d, body %s", w.Code, w.Body.String())
	}

	// Text length boundaries: 9 rejected, 10 accepted.
	if w := submit("Sam", "123456789", "good-token"); w.Code != http.StatusBadRequest {
		t.Errorf("text len 9 status = %d, want 400", w.Code)
	}
	w := submit("Sam", "1234567890", "good-token")
	if w.Code != http.StatusCreated {
		t.Errorf("text len 10 status = %d, want 201", w.Code)
	}

	var created models.Comment
	json.Unmarshal(w.Body.Bytes(), &created)
	if created.Status != models.CommentPending {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.Avatar == "" {
		t.Error("no placeholder avatar assigned")
	}

	// Whitespace is trimmed before the bounds check.
	if w := submit("  Sam  ", "   trimmed text here   ", "good-token"); w.Code != http.StatusCreated {
		t.Errorf("trimmed submit status = %d", w.Code)
	}
}

func TestAdsUpsertEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	w := doJSON(r, "POST", "/api/admin/ads", `{"game_vertical":"<script>A</script>"}`, cookies, csrf)
	if w.Code != http.StatusOK {
		t.Fatalf("first upsert status = %d, body %s", w.Code, w.Body.String())
	}
	w = doJSON(r, "POST", "/api/admin/ads", `{"game_vertical":"<script>B</script>"}`, cookies, csrf)
	if w.Code != http.StatusOK {
		t.Fatalf("second upsert status = %d", w.Code)
	}

	w = doJSON(r, "GET", "/api/ads", "", nil, "")
	var codes map[string]string
	json.Unmarshal(w.Body.Bytes(), &codes)
	if codes["game_vertical"] != "<script>B</script>" {
		t.Errorf("code = %q, want the second write", codes["game_vertical"])
	}

	// Unknown placement rejects the whole request.
	w = doJSON(r, "POST", "/api/admin/ads", `{"nonsense":"x"}`, cookies, csrf)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown placement status = %d, want 400", w.Code)
	}
}

func TestSettingsEndpoint(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	w := doJSON(r, "PUT", "/api/admin/settings", `{"site_name":"Pixel Palace"}`, cookies, csrf)
	if w.Code != http.StatusOK {
		t.Fatalf("save status = %d, body %s", w.Code, w.Body.String())
	}

	var merged map[string]string
	json.Unmarshal(w.Body.Bytes(), &merged)
	if merged["site_name"] != "Pixel Palace" {
		t.Errorf("site_name = %q", merged["site_name"])
	}
	if merged["hero_title"] == "" {
		t.Error("defaults missing from merged settings")
	}

	w = doJSON(r, "PUT", "/api/admin/settings", `{"not_a_setting":"x"}`, cookies, csrf)
	if w.Code != http.StatusBadRequest {
		t.Errorf("unknown key status = %d, want 400", w.Code)
	}
}

func TestSocialLinkValidation(t *testing.T) {
	r, _ := newTestServer(t)
	cookies, csrf := login(t, r)

	// Scheme is auto-prefixed.
	body := `{"name":"X","url":"x.com/gamescove","icon":"<svg viewBox=\"0 0 16 16\"></svg>"}`
	w := doJSON(r, "POST", "/api/admin/social-links", body, cookies, csrf)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	var link models.SocialLink
	json.Unmarshal(w.Body.Bytes(), &link)
	if link.URL != "https://x.com/gamescove" {
		t.Errorf("url = %q, want https prefix", link.URL)
	}

	// Icon must contain SVG markup.
	w = doJSON(r, "POST", "/api/admin/social-links",
		`{"name":"X","url":"x.com","icon":"not svg"}`, cookies, csrf)
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad icon status = %d, want 400", w.Code)
	}
}

func TestBlogDetailIncrementsViews(t *testing.T) {
	r, repos := newTestServer(t)
	post := seedBlogPost(t, repos)

	w := doJSON(r, "GET", fmt.Sprintf("/api/blogs/%d", post.ID), "", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("detail status = %d", w.Code)
	}

	got, err := repos.Blogs.ByID(post.ID)
	if err != nil {
		t.Fatalf("ByID: %v", err)
	}
	if got.ViewCount != 1 {
		t.Errorf("view_count = %d, want 1", got.ViewCount)
	}

	// Slug lookup works too.
	w = doJSON(r, "GET", "/api/blogs/review", "", nil, "")
	if w.Code != http.StatusOK {
		t.Errorf("slug detail status = %d", w.Code)
	}

	w = doJSON(r, "GET", "/api/blogs/does-not-exist", "", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing detail status = %d, want 404", w.Code)
	}
}

func TestChatEndpoint(t *testing.T) {
	r, _ := newTestServer(t)

	w := doJSON(r, "POST", "/api/chat", `{"message":"any fun platformers?"}`, nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("chat status = %d, body %s", w.Code, w.Body.String())
	}
	var resp struct {
		Reply string `json:"reply"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Reply != "mock reply" {
		t.Errorf("reply = %q", resp.Reply)
	}

	w = doJSON(r, "POST", "/api/chat", `{"message":"  "}`, nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("blank message status = %d, want 400", w.Code)
	}
}

func TestMetaLookups(t *testing.T) {
	r, repos := newTestServer(t)

	games := []models.Game{
		{Title: "A", Slug: "a", Category: "arcade", Tags: []string{"co-op", "retro"}},
		{Title: "B", Slug: "b", Category: "puzzle", Tags: []string{"retro"}},
	}
	for i := range games {
		if err := repos.Games.Create(&games[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	w := doJSON(r, "GET", "/api/meta/categories", "", nil, "")
	var categories []string
	json.Unmarshal(w.Body.Bytes(), &categories)
	if len(categories) != 2 || categories[0] != "arcade" || categories[1] != "puzzle" {
		t.Errorf("categories = %v", categories)
	}

	w = doJSON(r, "GET", "/api/meta/tags", "", nil, "")
	var tags []string
	json.Unmarshal(w.Body.Bytes(), &tags)
	if len(tags) != 2 || tags[0] != "co-op" || tags[1] != "retro" {
		t.Errorf("tags = %v", tags)
	}
}
