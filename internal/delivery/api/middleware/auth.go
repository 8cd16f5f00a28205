package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"kampuskart/internal/delivery/api/response"
	deliverycontext "kampuskart/internal/delivery/context"
	"kampuskart/internal/domain/entity"
	domainerrors "kampuskart/internal/domain/errors"
	"kampuskart/internal/errors"
	"kampuskart/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const sessionKey = "session"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthMiddleware authenticates bearer tokens and enforces area access.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Authenticate resolves the bearer token into a session. The account is
// re-read on every request so role and seller status changes apply at once.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Denied(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authorization header is missing", entity.AreaLogin.String())
		}

		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			return response.Denied(c, http.StatusUnauthorized, "INVALID_TOKEN", "Invalid token format, must be Bearer token", entity.AreaLogin.String())
		}

		session, err := m.authUC.ResolveSession(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
				return response.Denied(c, http.StatusUnauthorized, appErr.ErrorCode(), appErr.Message(), entity.AreaLogin.String())
			}

			return errors.Wrap(err, "failed to resolve session")
		}

		SetSession(c, session)

		logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			With(slog.String("user_id", session.UserID.String()))
		c.SetRequest(c.Request().WithContext(deliverycontext.WithLogger(c.Request().Context(), logger)))

		return next(c)
	}
}

// RequireArea admits the request only when the session may enter area.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireArea(area entity.Area) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, _ := GetSession(c)

			decision := entity.Decide(session, area)
			if decision.Allowed {
				return next(c)
			}

			if decision.Redirect == entity.AreaLogin {
				denied := domainerrors.ErrUnauthorized

				return response.Denied(c, denied.HTTPCode(), denied.ErrorCode(), denied.Message(), decision.Redirect.String())
			}

			denied := domainerrors.ErrForbidden

			return response.Denied(c, denied.HTTPCode(), denied.ErrorCode(), denied.Message()+": requires "+area.String()+" access", decision.Redirect.String())
		}
	}
}

// GetSession returns the session stored by Authenticate.
func GetSession(c echo.Context) (*entity.Session, bool) {
	session, ok := c.Get(sessionKey).(*entity.Session)

	return session, ok && session != nil
}

// SetSession attaches session to the request.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(sessionKey, session)
}
