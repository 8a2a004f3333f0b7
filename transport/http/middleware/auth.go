package middleware

import (
	"crypto/subtle"
	"net/http"
	"slotbook/config"
	"slotbook/infras/otel"
	"slotbook/shared/constant"
	"slotbook/shared/failure"
	"slotbook/transport/http/response"
)

// Auth guards the API for the front-ends that call it.
type Auth interface {
	APIKey(http.Handler) http.Handler
}

type authImpl struct {
	otel otel.Otel
	cfg  *config.Config
}

func NewAuthMiddleware(otel otel.Otel, cfg *config.Config) Auth {
	return &authImpl{
		otel: otel,
		cfg:  cfg,
	}
}

// APIKey requires the X-API-Key header to match APP_API_KEY. An empty APP_API_KEY disables the check.
func (m *authImpl) APIKey(next http.Handler) http.Handler {
	if m.cfg.App.APIKey == constant.Empty {
		return next
	}

	expected := []byte(m.cfg.App.APIKey)

	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		_, scope := m.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, "api_key.middleware")

		apiKey := request.Header.Get(constant.RequestHeaderAPIKey)

		if subtle.ConstantTimeCompare([]byte(apiKey), expected) != 1 {
			response.WithError(writer, failure.InvalidAPIKey)

			scope.TraceError(failure.InvalidAPIKey)
			scope.End()

			return
		}

		scope.End()
		next.ServeHTTP(writer, request)
	})
}
