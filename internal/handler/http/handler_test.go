package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/kmdeakers/go-notes/internal/config"
	"github.com/kmdeakers/go-notes/internal/logger"
	"github.com/kmdeakers/go-notes/internal/mock"
	"github.com/kmdeakers/go-notes/internal/service"
	"github.com/kmdeakers/go-notes/internal/session"
	"github.com/kmdeakers/go-notes/internal/store"
	"github.com/kmdeakers/go-notes/internal/validators"
	"github.com/kmdeakers/go-notes/models"
)

type testServer struct {
	router   *chi.Mux
	sessions *session.Manager
	users    *mock.MockUserRepository
	notes    *mock.MockNoteRepository
}

func newTestServer(t *testing.T, ctrl *gomock.Controller) *testServer {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockNotes := mock.NewMockNoteRepository(ctrl)

	l := logger.Nop()
	services := service.NewServices(store.Storages{
		UserRepository: mockUsers,
		NoteRepository: mockNotes,
	}, l)

	sessions := session.NewManager(config.App{
		SessionSignKey:  "test-sign-key",
		SessionIssuer:   "go-notes-test",
		SessionDuration: time.Hour,
	})

	h := NewHandler(services, sessions, validators.NewFormValidator(), "test", l)

	return &testServer{
		router:   h.Init(),
		sessions: sessions,
		users:    mockUsers,
		notes:    mockNotes,
	}
}

// loginAs issues a session cookie directly through the session manager and
// returns the cookie together with the per-session CSRF value.
func (ts *testServer) loginAs(t *testing.T, username string) (*http.Cookie, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	token, err := ts.sessions.SetIdentity(rec, username)
	require.NoError(t, err)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	return cookies[0], token.CSRF
}

// formToken fetches the registration page as a fresh visitor and returns the
// pre-login anti-forgery cookie together with its value.
func (ts *testServer) formToken(t *testing.T) (*http.Cookie, string) {
	t.Helper()

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/register", nil))
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.FormTokenCookieName {
			return c, c.Value
		}
	}

	t.Fatal("expected the registration page to issue a form token cookie")
	return nil, ""
}

func postForm(target string, values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestHomepage_RedirectsToRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/register", rec.Header().Get("Location"))
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	ts.users.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, user models.User) (models.User, error) {
			assert.Equal(t, "alice", user.Username)
			assert.NotEqual(t, "pw1", user.Password, "password must be stored hashed")
			return user, nil
		})

	formCookie, formToken := ts.formToken(t)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/register", url.Values{
		"csrf_token": {formToken},
		"username":   {"alice"},
		"password":   {"pw1"},
		"email":      {"alice@example.com"},
		"first_name": {"Alice"},
		"last_name":  {"Smith"},
	}, formCookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users/alice", rec.Header().Get("Location"))

	c := sessionCookie(rec)
	require.NotNil(t, c, "expected a session cookie after registration")
	assert.NotEmpty(t, c.Value)
}

func TestRegister_ValidationErrorsRerender(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	formCookie, formToken := ts.formToken(t)

	// Missing email and names; the repository must never be touched.
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/register", url.Values{
		"csrf_token": {formToken},
		"username":   {"alice"},
		"password":   {"pw1"},
	}, formCookie))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), validators.MsgRequired)
	assert.Nil(t, sessionCookie(rec))
}

func TestRegister_MissingFormTokenRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	// No form token cookie or field: the post is rejected before validation
	// and the repository is never touched.
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/register", url.Values{
		"username":   {"alice"},
		"password":   {"pw1"},
		"email":      {"alice@example.com"},
		"first_name": {"Alice"},
		"last_name":  {"Smith"},
	}))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_MismatchedFormTokenRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	formCookie, _ := ts.formToken(t)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/login", url.Values{
		"csrf_token": {"forged"},
		"username":   {"alice"},
		"password":   {"pw1"},
	}, formCookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
	assert.Nil(t, sessionCookie(rec))
}

func TestLogin_SuccessAndFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	formCookie, formToken := ts.formToken(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("pw1"), bcrypt.DefaultCost)
	require.NoError(t, err)
	alice := models.User{Username: "alice", Password: string(hash)}

	// Correct credentials redirect to the profile.
	ts.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/login", url.Values{
		"csrf_token": {formToken},
		"username":   {"alice"},
		"password":   {"pw1"},
	}, formCookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users/alice", rec.Header().Get("Location"))
	require.NotNil(t, sessionCookie(rec))

	// Wrong password re-renders the form with the generic message and no
	// session cookie.
	ts.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)

	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/login", url.Values{
		"csrf_token": {formToken},
		"username":   {"alice"},
		"password":   {"wrong"},
	}, formCookie))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgBadNamePassword)
	assert.Nil(t, sessionCookie(rec))

	// An unknown username produces the same page.
	ts.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	rec = httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/login", url.Values{
		"csrf_token": {formToken},
		"username":   {"ghost"},
		"password":   {"pw1"},
	}, formCookie))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgBadNamePassword)
	assert.Nil(t, sessionCookie(rec))
}

func TestUserProfile_OwnerSeesNotes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, _ := ts.loginAs(t, "alice")

	ts.users.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice", FirstName: "Alice", LastName: "Smith", Email: "alice@example.com"}, nil)
	ts.notes.EXPECT().
		FindNotesByOwner(gomock.Any(), "alice").
		Return([]models.Note{{ID: 1, Title: "shopping", Content: "milk", Owner: "alice"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopping")
}

func TestUserProfile_AnonymousRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	ts.users.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice"}, nil)
	ts.notes.EXPECT().
		FindNotesByOwner(gomock.Any(), "alice").
		Return([]models.Note{}, nil)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/alice", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestUserProfile_ForeignUserRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, _ := ts.loginAs(t, "bob")

	ts.users.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice"}, nil)
	ts.notes.EXPECT().
		FindNotesByOwner(gomock.Any(), "alice").
		Return([]models.Note{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/users/alice", nil)
	req.AddCookie(cookie)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestUserProfile_UnknownUserIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	ts.users.EXPECT().
		FindUserByUsername(gomock.Any(), "ghost").
		Return(models.User{}, store.ErrNoUserWasFound)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/ghost", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAddNote_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, csrf := ts.loginAs(t, "alice")

	ts.users.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice"}, nil)
	ts.notes.EXPECT().
		FindNotesByOwner(gomock.Any(), "alice").
		Return([]models.Note{}, nil)
	ts.notes.EXPECT().
		CreateNote(gomock.Any(), models.Note{Title: "T", Content: "C", Owner: "alice"}).
		Return(models.Note{ID: 1, Title: "T", Content: "C", Owner: "alice"}, nil)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/users/alice/notes/add", url.Values{
		"csrf_token": {csrf},
		"title":      {"T"},
		"content":    {"C"},
	}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users/alice", rec.Header().Get("Location"))
}

func TestAddNote_MissingCSRFRedirects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, _ := ts.loginAs(t, "alice")

	// No repository expectations: the CSRF guard rejects before any lookup.
	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/users/alice/notes/add", url.Values{
		"title":   {"T"},
		"content": {"C"},
	}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestEditNote_CrossUserRedirectsAndLeavesNoteUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, csrf := ts.loginAs(t, "bob")

	// The note belongs to alice. UpdateNote must never be called.
	ts.notes.EXPECT().
		FindNoteByID(gomock.Any(), int64(1)).
		Return(models.Note{ID: 1, Title: "T", Content: "C", Owner: "alice"}, nil)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/notes/1/update", url.Values{
		"csrf_token": {csrf},
		"title":      {"stolen"},
		"content":    {"stolen"},
	}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))
}

func TestEditNote_OwnerSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, csrf := ts.loginAs(t, "alice")

	gomock.InOrder(
		// ownership check in the handler
		ts.notes.EXPECT().
			FindNoteByID(gomock.Any(), int64(1)).
			Return(models.Note{ID: 1, Title: "old", Content: "old", Owner: "alice"}, nil),
		// ownership re-check inside the service before the write
		ts.notes.EXPECT().
			FindNoteByID(gomock.Any(), int64(1)).
			Return(models.Note{ID: 1, Title: "old", Content: "old", Owner: "alice"}, nil),
		ts.notes.EXPECT().
			UpdateNote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, update models.NoteUpdate) error {
				assert.Equal(t, int64(1), update.ID)
				assert.Equal(t, "alice", update.Owner)
				return nil
			}),
	)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/notes/1/update", url.Values{
		"csrf_token": {csrf},
		"title":      {"new"},
		"content":    {"new"},
	}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users/alice", rec.Header().Get("Location"))
}

func TestDeleteNote_UnknownNoteIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, csrf := ts.loginAs(t, "alice")

	ts.notes.EXPECT().
		FindNoteByID(gomock.Any(), int64(99)).
		Return(models.Note{}, store.ErrNoteNotFound)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/notes/99/delete", url.Values{
		"csrf_token": {csrf},
	}, cookie))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUser_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, csrf := ts.loginAs(t, "alice")

	ts.users.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{Username: "alice"}, nil)
	ts.notes.EXPECT().
		FindNotesByOwner(gomock.Any(), "alice").
		Return([]models.Note{}, nil)
	ts.users.EXPECT().
		DeleteUser(gomock.Any(), "alice").
		Return(nil)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/users/alice/delete", url.Values{
		"csrf_token": {csrf},
	}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	c := sessionCookie(rec)
	require.NotNil(t, c)
	assert.Less(t, c.MaxAge, 0, "expected the session cookie to be expired")
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)
	cookie, csrf := ts.loginAs(t, "alice")

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, postForm("/logout", url.Values{
		"csrf_token": {csrf},
	}, cookie))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	c := sessionCookie(rec)
	require.NotNil(t, c)
	assert.Less(t, c.MaxAge, 0, "expected the session cookie to be expired")
}

func TestGZip_EncodedPageDeclaresEncoding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	req := httptest.NewRequest(http.MethodGet, "/register", nil)
	req.Header.Set("Accept-Encoding", "gzip")

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))

	zr, err := gzip.NewReader(rec.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<form")
}

func TestRoutes_UnsupportedMethodIs404(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ts := newTestServer(t, ctrl)

	rec := httptest.NewRecorder()
	ts.router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/register", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
