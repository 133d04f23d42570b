package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpctx "github.com/dtroode/stellar-wallet-server/internal/api/http/context"
	"github.com/dtroode/stellar-wallet-server/internal/mocks"
	"github.com/dtroode/stellar-wallet-server/internal/model"
	"github.com/dtroode/stellar-wallet-server/internal/testutil"
)

const testKey = "GDQNY3PBOJOKYZSRMK2S7LHHGWZIUISD4QORETLMXEWXBI7KFZZMKTL3"

func authEngine(svc AuthService, p *httpctx.Principal) *gin.Engine {
	h := NewAuth(svc, testutil.MakeNoopLogger())
	engine := gin.New()
	if p != nil {
		engine.Use(withPrincipal(*p))
	}
	engine.POST("/connect", h.Connect)
	engine.POST("/verify", h.Verify)
	engine.GET("/wallet", h.Wallet)
	engine.POST("/logout", h.Logout)
	return engine
}

func TestAuth_Connect(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	expires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.On("IssueChallenge", mock.Anything, testKey).Return(model.ChallengeResult{
		PublicKey:    testKey,
		Challenge:    "Sign this message to authenticate with Stellar App: tok",
		SessionToken: "session",
		ExpiresAt:    expires,
	}, nil).Once()

	rec := serve(authEngine(svc, nil), http.MethodPost, "/connect", map[string]string{"public_key": testKey})

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "Sign this message to authenticate with Stellar App: tok", body["challenge"])
	assert.Equal(t, "session", body["session_key"])
	assert.Equal(t, testKey, body["public_key"])
	assert.Equal(t, "2026-01-02T03:04:05Z", body["expires_at"])
}

func TestAuth_Connect_Errors(t *testing.T) {
	t.Parallel()

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewAuthService(t)

		rec := serve(authEngine(svc, nil), http.MethodPost, "/connect", `{"public_key":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request", decode(t, rec)["error"])
	})

	t.Run("missing key", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewAuthService(t)

		rec := serve(authEngine(svc, nil), http.MethodPost, "/connect", map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid key", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewAuthService(t)
		svc.On("IssueChallenge", mock.Anything, "nope").Return(model.ChallengeResult{}, model.ErrInvalidKeyFormat).Once()

		rec := serve(authEngine(svc, nil), http.MethodPost, "/connect", map[string]string{"public_key": "nope"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, model.ErrInvalidKeyFormat.Error(), decode(t, rec)["error"])
	})
}

func TestAuth_Verify(t *testing.T) {
	t.Parallel()

	identity := model.Identity{ID: uuid.New(), PublicKey: testKey, OwnerRef: uuid.New(), CreatedAt: time.Now().UTC()}
	req := map[string]string{"public_key": testKey, "challenge": "c", "signature": "s"}

	tests := []struct {
		name       string
		result     model.VerifyResult
		err        error
		wantStatus int
	}{
		{name: "success", result: model.VerifyResult{Identity: identity, SessionToken: "session", AccessToken: "access"}, wantStatus: http.StatusOK},
		{name: "unknown wallet", err: model.ErrIdentityNotFound, wantStatus: http.StatusNotFound},
		{name: "expired session", err: model.ErrSessionNotFoundOrExpired, wantStatus: http.StatusBadRequest},
		{name: "bad signature", err: model.ErrInvalidSignature, wantStatus: http.StatusUnauthorized},
		{name: "store failure", err: assert.AnError, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewAuthService(t)
			svc.On("VerifySignature", mock.Anything, testKey, "c", "s").Return(tt.result, tt.err).Once()

			rec := serve(authEngine(svc, nil), http.MethodPost, "/verify", req)
			assert.Equal(t, tt.wantStatus, rec.Code)

			body := decode(t, rec)
			if tt.err != nil {
				assert.NotEmpty(t, body["error"])
				assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
				return
			}
			assert.Equal(t, true, body["success"])
			assert.Equal(t, "access", body["access_token"])
			assert.Equal(t, "Bearer", body["token_type"])
			assert.Equal(t, "session", body["session_key"])
			wallet := body["wallet"].(map[string]any)
			assert.Equal(t, testKey, wallet["public_key"])
			assert.Equal(t, identity.ID.String(), wallet["id"])
		})
	}
}

func TestAuth_Wallet(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	identity := model.Identity{ID: uuid.New(), PublicKey: testKey, LastAuthenticatedAt: &now}

	t.Run("authenticated", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewAuthService(t)
		svc.On("Wallet", mock.Anything, testKey).Return(identity, nil).Once()

		p := &httpctx.Principal{Claims: model.AccessClaims{PublicKey: testKey}, AccessToken: "access"}
		rec := serve(authEngine(svc, p), http.MethodGet, "/wallet", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, testKey, body["public_key"])
		assert.NotNil(t, body["last_authenticated_at"])
	})

	t.Run("anonymous", func(t *testing.T) {
		t.Parallel()
		svc := mocks.NewAuthService(t)

		rec := serve(authEngine(svc, nil), http.MethodGet, "/wallet", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuth_Logout(t *testing.T) {
	t.Parallel()

	svc := mocks.NewAuthService(t)
	svc.On("Logout", mock.Anything, "access").Return(nil).Once()

	p := &httpctx.Principal{Claims: model.AccessClaims{PublicKey: testKey}, AccessToken: "access"}
	rec := serve(authEngine(svc, p), http.MethodPost, "/logout", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decode(t, rec)["message"])
}
