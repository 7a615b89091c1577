package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moviedeck/moviedeck/internal/domain"
	internal_errors "github.com/moviedeck/moviedeck/internal/errors"
	"github.com/moviedeck/moviedeck/internal/middleware"
	"github.com/moviedeck/moviedeck/internal/service"
)

// --- Shared mocks ---

type MockAuthService struct {
	RegisterFunc    func(name, email, password string) (string, domain.User, error)
	LoginFunc       func(email, password string) (string, domain.User, error)
	CurrentUserFunc func(id domain.UserId) (domain.User, error)
}

func (m *MockAuthService) Register(name, email, password string) (string, domain.User, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(name, email, password)
	}
	return "test_token", domain.User{Id: "user-1", Name: name, Email: email}, nil
}

func (m *MockAuthService) Login(email, password string) (string, domain.User, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(email, password)
	}
	return "test_token", domain.User{Id: "user-1", Email: email}, nil
}

func (m *MockAuthService) CurrentUser(id domain.UserId) (domain.User, error) {
	if m.CurrentUserFunc != nil {
		return m.CurrentUserFunc(id)
	}
	return domain.User{Id: id, Name: "Alice", Email: "a@x.com"}, nil
}

type MockFavoritesService struct {
	AddFunc    func(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error)
	RemoveFunc func(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error)
	ListFunc   func(userId domain.UserId) ([]domain.MovieId, error)
}

func (m *MockFavoritesService) Add(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error) {
	if m.AddFunc != nil {
		return m.AddFunc(userId, movieId)
	}
	return []domain.MovieId{movieId}, nil
}

func (m *MockFavoritesService) Remove(userId domain.UserId, movieId domain.MovieId) ([]domain.MovieId, error) {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(userId, movieId)
	}
	return []domain.MovieId{}, nil
}

func (m *MockFavoritesService) List(userId domain.UserId) ([]domain.MovieId, error) {
	if m.ListFunc != nil {
		return m.ListFunc(userId)
	}
	return []domain.MovieId{}, nil
}

type MockMoviesService struct {
	SearchFunc          func(ctx context.Context, query string, page int) (service.SearchResult, error)
	DetailsFunc         func(ctx context.Context, imdbID domain.MovieId) (domain.Movie, error)
	FavoriteDetailsFunc func(ctx context.Context, userId domain.UserId) ([]domain.Movie, error)
}

func (m *MockMoviesService) Search(ctx context.Context, query string, page int) (service.SearchResult, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query, page)
	}
	return service.SearchResult{Movies: []domain.Movie{}}, nil
}

func (m *MockMoviesService) Details(ctx context.Context, imdbID domain.MovieId) (domain.Movie, error) {
	if m.DetailsFunc != nil {
		return m.DetailsFunc(ctx, imdbID)
	}
	return domain.Movie{ImdbID: imdbID}, nil
}

func (m *MockMoviesService) FavoriteDetails(ctx context.Context, userId domain.UserId) ([]domain.Movie, error) {
	if m.FavoriteDetailsFunc != nil {
		return m.FavoriteDetailsFunc(ctx, userId)
	}
	return []domain.Movie{}, nil
}

type MockHealthChecker struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockHealthChecker) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

// --- Helpers ---

func newTestHandler() *Handler {
	return New(&MockAuthService{}, &MockFavoritesService{}, &MockMoviesService{}, &MockHealthChecker{})
}

func createRequest(t *testing.T, method, target string, body []byte) *http.Request {
	t.Helper()
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader([]byte{})
	} else {
		reader = bytes.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

// withUser simulates a request that passed the auth middleware.
func withUser(r *http.Request, user *domain.User) *http.Request {
	rr := httptest.NewRecorder()
	var out *http.Request
	mw := middleware.NewAuth(subjectStub{user.Id}, userStoreStub{user}).NeedAuth()
	mw(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		out = req
	})).ServeHTTP(rr, withBearer(r))
	if out == nil {
		panic("auth middleware rejected the stub request")
	}
	return out
}

func withBearer(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer stub")
	return r
}

type subjectStub struct{ id domain.UserId }

func (s subjectStub) Subject(string) (domain.UserId, error) { return s.id, nil }

type userStoreStub struct{ user *domain.User }

func (s userStoreStub) UserById(id domain.UserId) (domain.User, error) {
	if s.user != nil && s.user.Id == id {
		return *s.user, nil
	}
	return domain.User{}, internal_errors.NotFound("User not found")
}
