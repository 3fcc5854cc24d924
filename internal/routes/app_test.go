package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alumni-portal/config"
	"alumni-portal/dto"
	"alumni-portal/internal/kv"
	"alumni-portal/internal/metrics"
	"alumni-portal/internal/models"
	"alumni-portal/internal/repository"
)

const prefix = "/make-server-9b4de1de"

type testServer struct {
	app   *fiber.App
	store kv.Store
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	store := kv.NewMemoryStore()
	app := NewApp(Deps{
		Store: store,
		Config: config.Config{
			RoutePrefix:      prefix,
			JWTSecret:        "test-secret",
			JWTExpiryHours:   1,
			CORSOrigins:      "*",
			AllowAdminSignup: true,
		},
	})
	return &testServer{app: app, store: store}
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, prefix+path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

// signup registers and logs in a user, returning the token and user id.
func (s *testServer) signup(t *testing.T, email string, role models.Role) (string, string) {
	t.Helper()
	status, raw := s.do(t, http.MethodPost, "/auth/signup", "", dto.SignupRequest{
		Email:    email,
		Password: "password123",
		UserData: dto.SignupUserData{Name: email, Role: string(role)},
	})
	require.Equal(t, http.StatusOK, status, string(raw))

	status, raw = s.do(t, http.MethodPost, "/auth/login", "", dto.LoginRequest{Email: email, Password: "password123"})
	require.Equal(t, http.StatusOK, status, string(raw))
	login := decode[dto.LoginResponse](t, raw)
	require.NotEmpty(t, login.AccessToken)
	assert.Equal(t, role, login.User.Role)
	return login.AccessToken, login.User.ID
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	status, raw := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestProtectedRoutesRejectMissingToken(t *testing.T) {
	s := newTestServer(t)
	for _, path := range []string{"/user-profile", "/analytics"} {
		status, raw := s.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, status, path)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, string(raw))
	}
	status, _ := s.do(t, http.MethodPost, "/forum-posts", "not-a-token", dto.CreateForumPostRequest{Title: "t", Content: "c"})
	assert.Equal(t, http.StatusUnauthorized, status)

	posts, _ := repository.New[models.ForumPost](s.store, models.KindForumPost).Count(context.Background())
	assert.Zero(t, posts)
}

func TestProblemStatementPagination(t *testing.T) {
	s := newTestServer(t)
	repo := repository.New[models.ProblemStatement](s.store, models.KindProblem)
	for i := 0; i < 23; i++ {
		id := fmt.Sprintf("p%02d", i)
		require.NoError(t, repo.Put(context.Background(), id, &models.ProblemStatement{ID: id, Title: "Problem " + id, Category: "Software"}))
	}

	type problemPage = dto.ProblemPage[models.ProblemStatement]
	for _, limit := range []int{1, 5, 10, 23, 50} {
		for page := 1; page <= 4; page++ {
			status, raw := s.do(t, http.MethodGet, fmt.Sprintf("/problem-statements?page=%d&limit=%d", page, limit), "", nil)
			require.Equal(t, http.StatusOK, status)
			pg := decode[problemPage](t, raw)
			assert.LessOrEqual(t, len(pg.Problems), limit)
			assert.Equal(t, pg.Items, pg.Problems)
			assert.Equal(t, (23+limit-1)/limit, pg.Pagination.TotalPages)
			assert.Equal(t, 23, pg.Pagination.Total)
		}
	}

	status, raw := s.do(t, http.MethodGet, "/problem-statements", "", nil)
	require.Equal(t, http.StatusOK, status)
	pg := decode[problemPage](t, raw)
	assert.Len(t, pg.Problems, 10)
	assert.Equal(t, 3, pg.Pagination.TotalPages)
}

func TestProblemStatementCategoryFilter(t *testing.T) {
	s := newTestServer(t)
	repo := repository.New[models.ProblemStatement](s.store, models.KindProblem)
	require.NoError(t, repo.Put(context.Background(), "sw", &models.ProblemStatement{ID: "sw", Title: "A", Category: "Software"}))
	require.NoError(t, repo.Put(context.Background(), "hw", &models.ProblemStatement{ID: "hw", Title: "B", Category: "Hardware"}))

	status, raw := s.do(t, http.MethodGet, "/problem-statements?category=Software", "", nil)
	require.Equal(t, http.StatusOK, status)
	pg := decode[dto.ProblemPage[models.ProblemStatement]](t, raw)
	require.Len(t, pg.Problems, 1)
	assert.Equal(t, "sw", pg.Problems[0].ID)

	status, raw = s.do(t, http.MethodGet, "/problem-statements?category=software", "", nil)
	require.Equal(t, http.StatusOK, status)
	pg = decode[dto.ProblemPage[models.ProblemStatement]](t, raw)
	assert.Empty(t, pg.Problems)
}

func TestProblemCreateRoleGate(t *testing.T) {
	s := newTestServer(t)
	studentToken, _ := s.signup(t, "student@example.com", models.RoleStudent)
	adminToken, adminID := s.signup(t, "admin@example.com", models.RoleAdmin)
	body := dto.CreateProblemRequest{Title: "Water", Organization: "City", Category: "Hardware"}

	status, raw := s.do(t, http.MethodPost, "/problem-statements", studentToken, body)
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"error":"Access denied"}`, string(raw))

	n, err := repository.New[models.ProblemStatement](s.store, models.KindProblem).Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)

	status, raw = s.do(t, http.MethodPost, "/problem-statements", adminToken, body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	created := decode[models.ProblemStatement](t, raw)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, adminID, created.CreatedBy)

	status, _ = s.do(t, http.MethodPost, "/problem-statements", adminToken, dto.CreateProblemRequest{Title: "missing org"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestSubmitIdeaCounter(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "solver@example.com", models.RoleStudent)
	repo := repository.New[models.ProblemStatement](s.store, models.KindProblem)
	require.NoError(t, repo.Put(context.Background(), "p1", &models.ProblemStatement{ID: "p1", Title: "P"}))

	const n = 5
	ids := map[string]bool{}
	for i := 0; i < n; i++ {
		status, raw := s.do(t, http.MethodPost, "/submit-idea", token, dto.SubmitIdeaRequest{
			ProblemID: "p1",
			IdeaData:  dto.IdeaData{IdeaTitle: fmt.Sprintf("idea %d", i), Description: "d"},
		})
		require.Equal(t, http.StatusCreated, status, string(raw))
		sub := decode[models.Submission](t, raw)
		assert.Equal(t, models.SubmissionStatusSubmitted, sub.Status)
		ids[sub.ID] = true
	}
	assert.Len(t, ids, n)

	status, raw := s.do(t, http.MethodGet, "/problem-statements/p1", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, n, decode[models.ProblemStatement](t, raw).SubmittedIdeasCount)

	status, _ = s.do(t, http.MethodPost, "/submit-idea", token, dto.SubmitIdeaRequest{
		ProblemID: "missing",
		IdeaData:  dto.IdeaData{IdeaTitle: "x", Description: "d"},
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = s.do(t, http.MethodGet, "/problem-statements/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestMentorshipWorkflow(t *testing.T) {
	s := newTestServer(t)
	menteeToken, menteeID := s.signup(t, "mentee@example.com", models.RoleStudent)
	mentorToken, mentorID := s.signup(t, "mentor@example.com", models.RoleAlumni)

	status, raw := s.do(t, http.MethodPost, "/mentorship-requests", menteeToken, dto.CreateMentorshipRequest{MentorID: mentorID, Message: "Please"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	req := decode[models.MentorshipRequest](t, raw)
	assert.Equal(t, menteeID, req.MenteeID)
	assert.Equal(t, models.RequestPending, req.Status)

	status, raw = s.do(t, http.MethodPatch, "/mentorship-requests/"+req.ID, mentorToken, dto.UpdateMentorshipRequest{Status: "accepted"})
	require.Equal(t, http.StatusOK, status, string(raw))
	assert.JSONEq(t, `{"message":"Request accepted"}`, string(raw))

	status, raw = s.do(t, http.MethodGet, "/mentorship-pairs/"+menteeID, "", nil)
	require.Equal(t, http.StatusOK, status)
	pairs := decode[dto.Page[models.MentorshipPair]](t, raw)
	require.Len(t, pairs.Items, 1)
	assert.Equal(t, mentorID, pairs.Items[0].MentorID)
	assert.Equal(t, menteeID, pairs.Items[0].MenteeID)

	status, raw = s.do(t, http.MethodGet, "/mentorship-requests/"+mentorID, "", nil)
	require.Equal(t, http.StatusOK, status)
	reqs := decode[dto.Page[models.MentorshipRequest]](t, raw)
	require.Len(t, reqs.Items, 1)
	assert.Equal(t, models.RequestAccepted, reqs.Items[0].Status)

	status, _ = s.do(t, http.MethodPatch, "/mentorship-requests/"+req.ID, mentorToken, dto.UpdateMentorshipRequest{Status: "maybe"})
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = s.do(t, http.MethodPatch, "/mentorship-requests/nope", mentorToken, dto.UpdateMentorshipRequest{Status: "declined"})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInitSampleDataTwice(t *testing.T) {
	s := newTestServer(t)

	status, raw := s.do(t, http.MethodPost, "/init-sample-data", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Sample data initialized successfully"}`, string(raw))

	_, raw = s.do(t, http.MethodGet, "/alumni", "", nil)
	first := decode[dto.Page[models.Alumni]](t, raw).Pagination.Total

	status, raw = s.do(t, http.MethodPost, "/init-sample-data", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Sample data already exists"}`, string(raw))

	_, raw = s.do(t, http.MethodGet, "/alumni", "", nil)
	assert.Equal(t, first, decode[dto.Page[models.Alumni]](t, raw).Pagination.Total)

	_, raw = s.do(t, http.MethodGet, "/alumni?search=python", "", nil)
	found := decode[dto.Page[models.Alumni]](t, raw)
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Sarah Johnson", found.Items[0].Name)

	_, raw = s.do(t, http.MethodGet, "/campaigns?active=true", "", nil)
	assert.Len(t, decode[dto.Page[models.Campaign]](t, raw).Items, 2)
}

func TestEventCapacity(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "host@example.com", models.RoleAlumni)

	status, raw := s.do(t, http.MethodPost, "/events", token, dto.CreateEventRequest{Title: "Dinner", Date: "2024-09-01", Capacity: 2, Type: "social"})
	require.Equal(t, http.StatusCreated, status, string(raw))
	ev := decode[models.Event](t, raw)
	assert.True(t, ev.IsActive)

	for i := 0; i < 2; i++ {
		status, raw = s.do(t, http.MethodPost, "/events/"+ev.ID+"/register", token, nil)
		require.Equal(t, http.StatusOK, status, string(raw))
		assert.JSONEq(t, `{"message":"Registration successful"}`, string(raw))
	}
	status, _ = s.do(t, http.MethodPost, "/events/"+ev.ID+"/register", token, nil)
	assert.Equal(t, http.StatusConflict, status)

	_, raw = s.do(t, http.MethodGet, "/events/"+ev.ID, "", nil)
	assert.Equal(t, 2, decode[models.Event](t, raw).RegisteredCount)

	status, _ = s.do(t, http.MethodPost, "/events", token, dto.CreateEventRequest{Title: "Bad", Date: "2024-09-01", Type: "party"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestDonationsAndStats(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "donor@example.com", models.RoleAlumni)
	s.do(t, http.MethodPost, "/init-sample-data", "", nil)

	status, raw := s.do(t, http.MethodPost, "/donations", token, dto.DonationRequest{CampaignID: "1", Amount: 100})
	require.Equal(t, http.StatusCreated, status, string(raw))

	status, _ = s.do(t, http.MethodPost, "/donations", token, dto.DonationRequest{CampaignID: "1", Amount: -5})
	assert.Equal(t, http.StatusBadRequest, status)

	_, raw = s.do(t, http.MethodGet, "/campaigns", "", nil)
	for _, c := range decode[dto.Page[models.Campaign]](t, raw).Items {
		if c.ID == "1" {
			assert.InDelta(t, 32600.0, c.Raised, 0.001)
			assert.Equal(t, 46, c.DonorCount)
		}
	}

	_, raw = s.do(t, http.MethodGet, "/donation-stats", token, nil)
	stats := decode[dto.DonationStats](t, raw)
	assert.Equal(t, 1, stats.MyDonations)
	assert.InDelta(t, 100.0, stats.TotalRaised, 0.001)

	_, raw = s.do(t, http.MethodGet, "/donation-stats", "", nil)
	assert.Zero(t, decode[dto.DonationStats](t, raw).MyDonations)
}

func TestForumLikeAndContact(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "poster@example.com", models.RoleStudent)

	status, raw := s.do(t, http.MethodPost, "/forum-posts", token, dto.CreateForumPostRequest{Title: "Hello", Content: "World", Tags: []string{"intro"}})
	require.Equal(t, http.StatusCreated, status, string(raw))
	post := decode[models.ForumPost](t, raw)

	for i := 1; i <= 3; i++ {
		status, raw = s.do(t, http.MethodPost, "/forum-posts/"+post.ID+"/like", token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, i, decode[dto.LikeResponse](t, raw).Likes)
	}

	status, raw = s.do(t, http.MethodPost, "/contact", "", dto.ContactRequest{Name: "Visitor", Email: "v@example.com", Message: "Hi"})
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Contact form submitted successfully"}`, string(raw))

	status, _ = s.do(t, http.MethodPost, "/contact", "", dto.ContactRequest{Name: "Visitor"})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestAnalyticsAndProfile(t *testing.T) {
	s := newTestServer(t)
	adminToken, _ := s.signup(t, "root@example.com", models.RoleAdmin)
	studentToken, _ := s.signup(t, "kid@example.com", models.RoleStudent)
	s.do(t, http.MethodPost, "/init-sample-data", "", nil)

	status, _ := s.do(t, http.MethodGet, "/analytics", studentToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, raw := s.do(t, http.MethodGet, "/analytics", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	out := decode[dto.Analytics](t, raw)
	assert.Equal(t, 2, out.TotalUsers)
	assert.Equal(t, 2, out.TotalAlumni)
	assert.Equal(t, 1, out.AlumniByIndustry["Consulting"])

	status, raw = s.do(t, http.MethodGet, "/user-profile", studentToken, nil)
	require.Equal(t, http.StatusOK, status)
	profile := decode[models.User](t, raw)
	assert.Equal(t, models.RoleStudent, profile.Role)
	assert.Equal(t, "kid@example.com", profile.Email)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	s.do(t, http.MethodGet, "/health", "", nil)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "portal_http_requests_total")
}

func TestPanicsAreCountedAsServerErrors(t *testing.T) {
	s := newTestServer(t)
	s.app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	counter := metrics.HTTPRequests.WithLabelValues(http.MethodGet, "/boom", "500")
	before := testutil.ToFloat64(counter)

	resp, err := s.app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.JSONEq(t, `{"error":"Internal server error"}`, string(body))
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMenteeCannotAcceptOwnRequest(t *testing.T) {
	s := newTestServer(t)
	menteeToken, _ := s.signup(t, "eager@example.com", models.RoleStudent)
	_, mentorID := s.signup(t, "busy@example.com", models.RoleAlumni)

	status, raw := s.do(t, http.MethodPost, "/mentorship-requests", menteeToken, dto.CreateMentorshipRequest{MentorID: mentorID})
	require.Equal(t, http.StatusCreated, status, string(raw))
	req := decode[models.MentorshipRequest](t, raw)

	status, raw = s.do(t, http.MethodPatch, "/mentorship-requests/"+req.ID, menteeToken, dto.UpdateMentorshipRequest{Status: "accepted"})
	assert.Equal(t, http.StatusForbidden, status)
	assert.JSONEq(t, `{"error":"Access denied"}`, string(raw))

	_, raw = s.do(t, http.MethodGet, "/mentorship-pairs/"+mentorID, "", nil)
	assert.Empty(t, decode[dto.Page[models.MentorshipPair]](t, raw).Items)

	status, raw = s.do(t, http.MethodPatch, "/mentorship-requests/"+req.ID, menteeToken, dto.UpdateMentorshipRequest{Status: "declined"})
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"message":"Request declined"}`, string(raw))
}
