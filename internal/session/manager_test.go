// internal/session/manager_test.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntboard/internal/api"
	"huntboard/internal/common/errors"
	"huntboard/internal/common/logger"
	"huntboard/internal/models"
	"huntboard/internal/store"
	"huntboard/internal/token"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func mintToken(t *testing.T, email string, candidateID int64, exp time.Time) string {
	t.Helper()
	claims := token.Claims{
		CandidateID: candidateID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: email,
		},
	}
	if !exp.IsZero() {
		claims.ExpiresAt = jwt.NewNumericDate(exp)
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *store.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	st, err := store.Open(afero.NewMemMapFs(), "/state.json")
	require.NoError(t, err)

	client := api.NewClient(srv.URL, 5*time.Second, st.Token, logger.NewTestLogger(t))
	m := NewManager(client, st, logger.NewTestLogger(t))
	m.SetClock(func() time.Time { return testNow })
	return m, st
}

func writeEnvelope(w http.ResponseWriter, status int, success bool, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"success": success,
		"message": message,
		"data":    data,
	})
}

func candidateJSON(id int64, email string) map[string]interface{} {
	return map[string]interface{}{
		"id":        id,
		"firstName": "Jane",
		"lastName":  "Doe",
		"email":     email,
	}
}

func TestRestoreEmptyStore(t *testing.T) {
	m, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}))

	require.NoError(t, m.Restore(context.Background()))
	assert.Equal(t, StateUnauthenticated, m.State())
}

func TestRestoreExpiredTokenClearsEverything(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}))
	require.NoError(t, st.Set(store.KeyToken, mintToken(t, "jane@example.com", 0, testNow.Add(-time.Hour))))
	require.NoError(t, st.Set(store.KeyUser, `{"email":"jane@example.com"}`))
	require.NoError(t, st.SetCandidateID(7))

	require.NoError(t, m.Restore(context.Background()))

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, st.Get(store.KeyToken))
	assert.Empty(t, st.Get(store.KeyUser))
	_, ok := st.CandidateID()
	assert.False(t, ok)
}

func TestRestoreMalformedTokenClearsEverything(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}))
	require.NoError(t, st.Set(store.KeyToken, "not-a-jwt"))

	require.NoError(t, m.Restore(context.Background()))

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, st.Get(store.KeyToken))
}

func TestRestoreResolvesProfileFromTokenID(t *testing.T) {
	listCalls := 0
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/candidate-profile/get-candidate/42":
			writeEnvelope(w, http.StatusOK, true, "", candidateJSON(42, "jane@example.com"))
		case "/api/candidate-profile/get-all-candidates":
			listCalls++
			writeEnvelope(w, http.StatusOK, true, "", nil)
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))
	require.NoError(t, st.Set(store.KeyToken, mintToken(t, "jane@example.com", 42, testNow.Add(time.Hour))))

	require.NoError(t, m.Restore(context.Background()))

	assert.Equal(t, StateProfileResolved, m.State())
	assert.Equal(t, int64(42), m.CandidateID())
	assert.Equal(t, "jane@example.com", m.Email())
	assert.Zero(t, listCalls, "an embedded candidate id must skip the list scan")

	id, ok := st.CandidateID()
	require.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestRestoreStaleCachedIDFallsBackToEmailScan(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/candidate-profile/get-candidate/99":
			writeEnvelope(w, http.StatusNotFound, false, "no such candidate", nil)
		case "/api/candidate-profile/get-all-candidates":
			writeEnvelope(w, http.StatusOK, true, "", []map[string]interface{}{
				candidateJSON(3, "other@example.com"),
				candidateJSON(8, "JANE@Example.COM"), // matched case-insensitively
			})
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))
	require.NoError(t, st.Set(store.KeyToken, mintToken(t, "jane@example.com", 0, testNow.Add(time.Hour))))
	require.NoError(t, st.SetCandidateID(99))

	require.NoError(t, m.Restore(context.Background()))

	assert.Equal(t, StateProfileResolved, m.State())
	assert.Equal(t, int64(8), m.CandidateID())

	id, ok := st.CandidateID()
	require.True(t, ok)
	assert.Equal(t, int64(8), id, "stale cached id must be replaced by the scan result")
}

func TestRestoreNoProfileAnywhereLeavesOnboarding(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/candidate-profile/get-all-candidates":
			writeEnvelope(w, http.StatusOK, true, "", []map[string]interface{}{
				candidateJSON(3, "other@example.com"),
			})
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))
	require.NoError(t, st.Set(store.KeyToken, mintToken(t, "jane@example.com", 0, testNow.Add(time.Hour))))

	require.NoError(t, m.Restore(context.Background()))

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Zero(t, m.CandidateID())
	assert.Nil(t, m.Profile())
}

func TestRestoreScanFailureReturnsError(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	require.NoError(t, st.Set(store.KeyToken, mintToken(t, "jane@example.com", 0, testNow.Add(time.Hour))))

	err := m.Restore(context.Background())

	require.Error(t, err)
	assert.Equal(t, StateAuthenticated, m.State(), "a transport failure must not log the user out")
}

func TestLoginWithCandidateInEnvelope(t *testing.T) {
	tok := mintToken(t, "jane@example.com", 0, testNow.Add(time.Hour))
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"success":true,"token":%q,"data":{"id":5,"email":"jane@example.com"}}`, tok)
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))

	require.NoError(t, m.Login(context.Background(), "jane@example.com", "pw"))

	assert.Equal(t, StateProfileResolved, m.State())
	assert.Equal(t, int64(5), m.CandidateID())
	assert.Equal(t, tok, st.Token())
	id, ok := st.CandidateID()
	require.True(t, ok)
	assert.Equal(t, int64(5), id)
}

func TestLoginWithTokenEmbeddedIDSkipsListScan(t *testing.T) {
	tok := mintToken(t, "jane@example.com", 42, testNow.Add(time.Hour))
	listCalls := 0
	m, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"success":true,"token":%q,"data":null}`, tok)
		case "/api/candidate-profile/get-candidate/42":
			writeEnvelope(w, http.StatusOK, true, "", candidateJSON(42, "jane@example.com"))
		case "/api/candidate-profile/get-all-candidates":
			listCalls++
			writeEnvelope(w, http.StatusOK, true, "", nil)
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))

	require.NoError(t, m.Login(context.Background(), "jane@example.com", "pw"))

	assert.Equal(t, StateProfileResolved, m.State())
	assert.Equal(t, int64(42), m.CandidateID())
	assert.Zero(t, listCalls, "an embedded candidate id must skip the list scan")
}

func TestLoginWithoutProfileRequiresOnboarding(t *testing.T) {
	tok := mintToken(t, "jane@example.com", 0, testNow.Add(time.Hour))
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"success":true,"token":%q,"data":null}`, tok)
		case "/api/candidate-profile/get-all-candidates":
			writeEnvelope(w, http.StatusOK, true, "", []map[string]interface{}{
				candidateJSON(3, "other@example.com"),
			})
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))

	require.NoError(t, m.Login(context.Background(), "jane@example.com", "pw"))

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Zero(t, m.CandidateID())
	assert.Equal(t, tok, st.Token(), "an unmatched email keeps the session; only onboarding is pending")
}

func TestLoginResolutionFailureRollsBack(t *testing.T) {
	tok := mintToken(t, "jane@example.com", 0, testNow.Add(time.Hour))
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"success":true,"token":%q,"data":null}`, tok)
		case "/api/candidate-profile/get-all-candidates":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))

	err := m.Login(context.Background(), "jane@example.com", "pw")

	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, st.Get(store.KeyToken))
	assert.Empty(t, st.Get(store.KeyUser))
}

func TestLoginMalformedTokenRollsBack(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"success":true,"token":"not-a-jwt","data":null}`)
	}))

	err := m.Login(context.Background(), "jane@example.com", "pw")

	require.Error(t, err)
	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, st.Get(store.KeyToken))
}

func TestCreateProfileCompletesOnboarding(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/candidate-profile/create-candidate-profile":
			writeEnvelope(w, http.StatusOK, true, "", candidateJSON(11, "jane@example.com"))
		default:
			t.Fatalf("unexpected request to %s", r.URL.Path)
		}
	}))

	profile, err := m.CreateProfile(context.Background(), models.CandidateProfileInput{
		FirstName:        "Jane",
		LastName:         "Doe",
		Email:            "jane@example.com",
		PreferredRole:    "Backend Engineer",
		PhoneNumber:      "5551234",
		CountryPhoneCode: "+49",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), profile.ID)
	assert.Equal(t, StateProfileResolved, m.State())

	id, ok := st.CandidateID()
	require.True(t, ok)
	assert.Equal(t, int64(11), id)
}

func TestCreateProfileRejectsInvalidInput(t *testing.T) {
	m, _ := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("invalid input must not reach the API, got %s", r.URL.Path)
	}))

	_, err := m.CreateProfile(context.Background(), models.CandidateProfileInput{
		FirstName: "Jane",
	})

	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeValidationFailed, errors.CodeOf(err))
}

func TestLogoutClearsEverything(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("unexpected request to %s", r.URL.Path)
	}))
	require.NoError(t, st.Set(store.KeyToken, "tok"))
	require.NoError(t, st.Set(store.KeyUser, `{"email":"jane@example.com"}`))
	require.NoError(t, st.SetCandidateID(7))

	m.Logout()

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, st.Get(store.KeyToken))
	assert.Empty(t, st.Get(store.KeyUser))
	_, ok := st.CandidateID()
	assert.False(t, ok)
}

func TestUnauthorizedKeepsCachedCandidateID(t *testing.T) {
	m, st := newTestManager(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusUnauthorized, false, "token rejected", nil)
	}))
	require.NoError(t, st.Set(store.KeyToken, mintToken(t, "jane@example.com", 42, testNow.Add(time.Hour))))
	require.NoError(t, st.Set(store.KeyUser, `{"email":"jane@example.com"}`))
	require.NoError(t, st.SetCandidateID(42))

	// The 401 hook fires during resolution: credentials are dropped and
	// the session resets, so the email scan never runs and Restore lands
	// cleanly in the unauthenticated state.
	require.NoError(t, m.Restore(context.Background()))

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, st.Get(store.KeyToken))
	assert.Empty(t, st.Get(store.KeyUser))
	id, ok := st.CandidateID()
	require.True(t, ok, "a 401 must not drop the cached candidate id")
	assert.Equal(t, int64(42), id)
}
